package controller

import (
	"net/http"
	"strings"

	"home-connect-api/internal/entity"
	"home-connect-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type moderationRoutesHandler struct {
	moderationService service.Moderation
	validate          *validator.Validate
}

func newModerationRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *moderationRoutesHandler {
	h := &moderationRoutesHandler{moderationService: services.Moderation, validate: v}

	outer.GET("/moderation/logs", h.GetLogs)
	outer.POST("/moderation/actions", h.PostAction)
	outer.GET("/moderation/disputes", h.GetDisputes)
	outer.POST("/moderation/disputes/new", h.PostDispute)
	outer.PUT("/moderation/disputes/:disputeId/resolve", h.ResolveDispute)

	return h
}

type getLogsInput struct {
	Limit  int32 `query:"limit" validate:"gte=0,lte=50"`
	Offset int32 `query:"offset" validate:"gte=0"`
}

func newGetLogsInput() getLogsInput {
	return getLogsInput{Limit: defaultLimit, Offset: defaultOffset}
}

// /moderation/logs
func (h *moderationRoutesHandler) GetLogs(c echo.Context) error {
	var input = newGetLogsInput()
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
	logs, err := h.moderationService.GetLogs(c.Request().Context(), pg)
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}
	if e := c.JSON(http.StatusOK, logs); e != nil {
		return e
	}

	return nil
}

type postActionInput struct {
	ModeratorId  string `json:"moderatorId" validate:"required,max=100"`
	TargetUserId string `json:"targetUserId" validate:"required,max=100"`
	ActionType   string `json:"actionType" validate:"required,oneof=warning suspension ban verification dispute"`
	Reason       string `json:"reason" validate:"required,max=500"`
}

// /moderation/actions
func (h *moderationRoutesHandler) PostAction(c echo.Context) error {
	var input postActionInput
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

	model := &entity.ModerationActionInput{
		ModeratorId: input.ModeratorId, TargetUserId: input.TargetUserId,
		ActionType: input.ActionType, Reason: input.Reason,
	}

	log, err := h.moderationService.TakeAction(c.Request().Context(), model)
	if err == nil {
		if e := c.JSON(http.StatusOK, log); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrUserNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no user with given id"}); e != nil {
			return e
		}
	case service.ErrNotAModerator:
		if e := c.JSON(http.StatusForbidden, errorResponse{"Only moderators can take moderation actions"}); e != nil {
			return e
		}
	case service.ErrUnknownAction:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Unknown action type"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

// /moderation/disputes
func (h *moderationRoutesHandler) GetDisputes(c echo.Context) error {
	var input = newGetLogsInput()
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
	disputes, err := h.moderationService.GetDisputes(c.Request().Context(), pg)
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}
	if e := c.JSON(http.StatusOK, disputes); e != nil {
		return e
	}

	return nil
}

type postDisputeInput struct {
	JobId       string `json:"jobId" validate:"required,max=100"`
	RaisedById  string `json:"raisedById" validate:"required,max=100"`
	Description string `json:"description" validate:"required,max=1000"`
}

// /moderation/disputes/new
func (h *moderationRoutesHandler) PostDispute(c echo.Context) error {
	var input postDisputeInput
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

	dispute, err := h.moderationService.CreateDispute(c.Request().Context(), input.JobId, input.RaisedById, input.Description)
	if err == nil {
		if e := c.JSON(http.StatusOK, dispute); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrJobNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no job with given id"}); e != nil {
			return e
		}
	case service.ErrNotJobParticipant:
		if e := c.JSON(http.StatusForbidden, errorResponse{"Only the job's participants can raise a dispute"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type resolveDisputeInput struct {
	DisputeId   string `param:"disputeId" validate:"required,max=100"`
	ModeratorId string `query:"moderatorId" validate:"required,max=100"`
	Resolution  string `json:"resolution" validate:"required,max=1000"`
}

// /moderation/disputes/:disputeId/resolve
func (h *moderationRoutesHandler) ResolveDispute(c echo.Context) error {
	var input resolveDisputeInput
	if err := c.Bind(&input); err != nil {
		msg := err.Error()
		if !strings.Contains(msg, "Request body can't be empty") {
			if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
				return e
			}

			return err
		}
	}

	input.DisputeId, input.ModeratorId = c.Param("disputeId"), c.QueryParam("moderatorId")
	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	dispute, err := h.moderationService.ResolveDispute(c.Request().Context(), input.DisputeId, input.ModeratorId, input.Resolution)
	if err == nil {
		if e := c.JSON(http.StatusOK, dispute); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrDisputeNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no dispute with given id"}); e != nil {
			return e
		}
	case service.ErrUserNotFound:
		if e := c.JSON(http.StatusUnauthorized, errorResponse{"There is no user with given id"}); e != nil {
			return e
		}
	case service.ErrNotAModerator:
		if e := c.JSON(http.StatusForbidden, errorResponse{"Only moderators can resolve disputes"}); e != nil {
			return e
		}
	case service.ErrDisputeAlreadyResolved:
		if e := c.JSON(http.StatusConflict, errorResponse{"Dispute has already been resolved"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}
