package controller

import (
	"net/http"

	"home-connect-api/internal/entity"
	"home-connect-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type reviewRoutesHandler struct {
	reviewService service.Review
	validate      *validator.Validate
}

func newReviewRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *reviewRoutesHandler {
	h := &reviewRoutesHandler{reviewService: services.Review, validate: v}

	outer.POST("/reviews/new", h.PostReview)
	outer.GET("/users/:userId/reviews", h.GetUserReviews)

	return h
}

type postReviewInput struct {
	JobId      string `json:"jobId" validate:"required,max=100"`
	ReviewerId string `json:"reviewerId" validate:"required,max=100"`
	RevieweeId string `json:"revieweeId" validate:"required,max=100"`
	Rating     int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment    string `json:"comment" validate:"max=1000"`
}

// /reviews/new
func (h *reviewRoutesHandler) PostReview(c echo.Context) error {
	var input postReviewInput
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

	model := &entity.CreateReviewInput{
		JobId: input.JobId, ReviewerId: input.ReviewerId, RevieweeId: input.RevieweeId,
		Rating: input.Rating, Comment: input.Comment,
	}

	review, err := h.reviewService.CreateReview(c.Request().Context(), model)
	if err == nil {
		if e := c.JSON(http.StatusOK, review); e != nil {
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
	case service.ErrJobNotCompleted:
		if e := c.JSON(http.StatusConflict, errorResponse{"Reviews can only be left on completed jobs"}); e != nil {
			return e
		}
	case service.ErrNotJobParticipant:
		if e := c.JSON(http.StatusForbidden, errorResponse{"Only the job's participants can review each other"}); e != nil {
			return e
		}
	case service.ErrAlreadyReviewed:
		if e := c.JSON(http.StatusConflict, errorResponse{"You have already reviewed this job"}); e != nil {
			return e
		}
	case service.ErrInvalidRating:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Rating should be between 1 and 5"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type getUserReviewsInput struct {
	Limit  int32  `query:"limit" validate:"gte=0,lte=50"`
	Offset int32  `query:"offset" validate:"gte=0"`
	UserId string `param:"userId" validate:"required,max=100"`
}

func newGetUserReviewsInput() getUserReviewsInput {
	return getUserReviewsInput{Limit: defaultLimit, Offset: defaultOffset}
}

// /users/:userId/reviews
func (h *reviewRoutesHandler) GetUserReviews(c echo.Context) error {
	var input = newGetUserReviewsInput()
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	input.UserId = c.Param("userId")
	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	pg := entity.NewPaginationInput(int(input.Limit), int(input.Offset))
	reviews, err := h.reviewService.GetUserReviews(c.Request().Context(), input.UserId, pg)
	if err == nil {
		if e := c.JSON(http.StatusOK, reviews); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrUserNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no user with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}
