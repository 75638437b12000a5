package controller

import (
	"net/http"
	"strconv"
	"strings"

	"home-connect-api/internal/entity"
	"home-connect-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type jobRoutesHandler struct {
	jobService service.Job
	validate   *validator.Validate
}

func newJobRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *jobRoutesHandler {
	h := &jobRoutesHandler{jobService: services.Job, validate: v}

	outer.GET("/jobs", h.GetJobs)
	outer.POST("/jobs/new", h.PostJob)
	outer.GET("/jobs/my", h.GetUserJobs)
	outer.GET("/jobs/:jobId", h.GetJob)
	outer.POST("/jobs/:jobId/bids/new", h.PostBid)
	outer.PUT("/jobs/:jobId/bids/:bidIndex/accept", h.AcceptBid)
	outer.PUT("/jobs/:jobId/complete", h.CompleteJob)

	return h
}

type getJobsInput struct {
	Limit     int32  `query:"limit" validate:"gte=0,lte=50"`
	Offset    int32  `query:"offset" validate:"gte=0"`
	Community string `query:"community" validate:"max=100"`
	Status    string `query:"status" validate:"omitempty,oneof=Open Hired Completed"`
}

func newGetJobsInput() getJobsInput {
	return getJobsInput{Limit: defaultLimit, Offset: defaultOffset}
}

// /jobs
func (h *jobRoutesHandler) GetJobs(c echo.Context) error {
	var input = newGetJobsInput()
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	pg := entity.NewPaginationInput(int(input.Limit), int(input.Offset))
	filter := &entity.JobFilter{Community: input.Community, Status: input.Status}
	jobs, err := h.jobService.GetJobs(c.Request().Context(), filter, pg)
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{err.Error()}); e != nil {
			return e
		}

		return err
	}
	if e := c.JSON(http.StatusOK, jobs); e != nil {
		return e
	}

	return nil
}

type postJobInput struct {
	Title       string `json:"title" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
	Pay         int    `json:"pay" validate:"required"`
	Community   string `json:"community" validate:"required,max=100"`
	Schedule    string `json:"schedule" validate:"max=100"`
	EmployerId  string `json:"employerId" validate:"required,max=100"`
}

// /jobs/new
func (h *jobRoutesHandler) PostJob(c echo.Context) error {
	var input postJobInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	model := &entity.CreateJobInput{
		Title: input.Title, Description: input.Description, Pay: input.Pay,
		Community: input.Community, Schedule: input.Schedule, EmployerId: input.EmployerId,
	}

	job, err := h.jobService.CreateJob(c.Request().Context(), model)
	if err == nil {
		if e := c.JSON(http.StatusOK, job); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrUserNotFound:
		if e := c.JSON(http.StatusUnauthorized, errorResponse{"There is no user with given id"}); e != nil {
			return e
		}
	case service.ErrNotAnEmployer:
		if e := c.JSON(http.StatusForbidden, errorResponse{"Only employers can post jobs"}); e != nil {
			return e
		}
	case service.ErrInvalidPay:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Pay must be a positive amount"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type getUserJobsInput struct {
	Limit  int32  `query:"limit" validate:"gte=0,lte=50"`
	Offset int32  `query:"offset" validate:"gte=0"`
	UserId string `query:"userId" validate:"required,max=100"`
}

func newGetUserJobsInput() getUserJobsInput {
	return getUserJobsInput{Limit: defaultLimit, Offset: defaultOffset}
}

// /jobs/my
func (h *jobRoutesHandler) GetUserJobs(c echo.Context) error {
	var input = newGetUserJobsInput()
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	pg := entity.NewPaginationInput(int(input.Limit), int(input.Offset))
	jobs, err := h.jobService.GetUserJobs(c.Request().Context(), input.UserId, pg)
	if err == nil {
		if e := c.JSON(http.StatusOK, jobs); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrUserNotFound:
		if e := c.JSON(http.StatusUnauthorized, errorResponse{"There is no user with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{err.Error()}); e != nil {
			return e
		}
	}

	return err
}

// /jobs/:jobId
func (h *jobRoutesHandler) GetJob(c echo.Context) error {
	job, err := h.jobService.GetJobById(c.Request().Context(), c.Param("jobId"))
	if err == nil {
		if e := c.JSON(http.StatusOK, job); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrJobNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no job with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type postBidInput struct {
	JobId    string `param:"jobId" validate:"required,max=100"`
	BidderId string `json:"bidderId" validate:"required,max=100"`
	Price    int    `json:"price" validate:"required"`
	Message  string `json:"message" validate:"max=500"`
}

// /jobs/:jobId/bids/new
func (h *jobRoutesHandler) PostBid(c echo.Context) error {
	var input postBidInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	input.JobId = c.Param("jobId")
	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	model := &entity.PlaceBidInput{
		JobId: input.JobId, BidderId: input.BidderId, Price: input.Price, Message: input.Message,
	}

	bid, err := h.jobService.PlaceBid(c.Request().Context(), model)
	if err == nil {
		if e := c.JSON(http.StatusOK, bid); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrJobNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no job with given id"}); e != nil {
			return e
		}
	case service.ErrUserNotFound:
		if e := c.JSON(http.StatusUnauthorized, errorResponse{"There is no user with given id"}); e != nil {
			return e
		}
	case service.ErrNotAMaid:
		if e := c.JSON(http.StatusForbidden, errorResponse{"Only maids can place bids"}); e != nil {
			return e
		}
	case service.ErrJobNotOpen:
		if e := c.JSON(http.StatusConflict, errorResponse{"Job is no longer open for bids"}); e != nil {
			return e
		}
	case service.ErrDuplicateBid:
		if e := c.JSON(http.StatusConflict, errorResponse{"You have already placed a bid on this job"}); e != nil {
			return e
		}
	case service.ErrInvalidPrice:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Price must be a positive amount"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type acceptBidInput struct {
	JobId       string `param:"jobId" validate:"required,max=100"`
	BidIndex    int    `param:"bidIndex" validate:"gte=0"`
	RequesterId string `query:"requesterId" validate:"required,max=100"`
}

// /jobs/:jobId/bids/:bidIndex/accept
func (h *jobRoutesHandler) AcceptBid(c echo.Context) error {
	var input acceptBidInput
	if err := c.Bind(&input); err != nil {
		msg := err.Error()
		if !strings.Contains(msg, "Request body can't be empty") {
			if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
				return e
			}

			return err
		}
	}

	idx, err := strconv.Atoi(c.Param("bidIndex"))
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Bid index must be an integer"}); e != nil {
			return e
		}

		return err
	}

	input.JobId, input.BidIndex, input.RequesterId = c.Param("jobId"), idx, c.QueryParam("requesterId")
	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	job, err := h.jobService.AcceptBid(c.Request().Context(), input.JobId, input.BidIndex, input.RequesterId)
	if err == nil {
		if e := c.JSON(http.StatusOK, job); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrJobNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no job with given id"}); e != nil {
			return e
		}
	case service.ErrBidNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no bid at given index"}); e != nil {
			return e
		}
	case service.ErrNotJobOwner:
		if e := c.JSON(http.StatusForbidden, errorResponse{"Only the job's employer can accept a bid"}); e != nil {
			return e
		}
	case service.ErrJobNotOpen:
		if e := c.JSON(http.StatusConflict, errorResponse{"Job is no longer open"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type completeJobInput struct {
	JobId       string `param:"jobId" validate:"required,max=100"`
	RequesterId string `query:"requesterId" validate:"required,max=100"`
}

// /jobs/:jobId/complete
func (h *jobRoutesHandler) CompleteJob(c echo.Context) error {
	var input completeJobInput
	if err := c.Bind(&input); err != nil {
		msg := err.Error()
		if !strings.Contains(msg, "Request body can't be empty") {
			if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
				return e
			}

			return err
		}
	}

	input.JobId, input.RequesterId = c.Param("jobId"), c.QueryParam("requesterId")
	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	job, err := h.jobService.CompleteJob(c.Request().Context(), input.JobId, input.RequesterId)
	if err == nil {
		if e := c.JSON(http.StatusOK, job); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrJobNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no job with given id"}); e != nil {
			return e
		}
	case service.ErrJobNotHired:
		if e := c.JSON(http.StatusConflict, errorResponse{"Job has no hired bidder yet"}); e != nil {
			return e
		}
	case service.ErrNotHiredBidder:
		if e := c.JSON(http.StatusForbidden, errorResponse{"Only the hired bidder can complete the job"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}
