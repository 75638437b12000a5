package controller

import (
	"net/http"

	"home-connect-api/internal/entity"
	"home-connect-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type notificationRoutesHandler struct {
	notificationService service.Notification
	validate            *validator.Validate
}

func newNotificationRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *notificationRoutesHandler {
	h := &notificationRoutesHandler{notificationService: services.Notification, validate: v}

	outer.GET("/notifications", h.GetNotifications)
	outer.PUT("/notifications/:notificationId/read", h.MarkRead)
	outer.PUT("/notifications/read-all", h.MarkAllRead)

	return h
}

type getNotificationsInput struct {
	Limit  int32  `query:"limit" validate:"gte=0,lte=100"`
	Offset int32  `query:"offset" validate:"gte=0"`
	UserId string `query:"userId" validate:"required,max=100"`
}

func newGetNotificationsInput() getNotificationsInput {
	return getNotificationsInput{Limit: defaultLimit, Offset: defaultOffset}
}

// /notifications
func (h *notificationRoutesHandler) GetNotifications(c echo.Context) error {
	var input = newGetNotificationsInput()
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
	notifications, err := h.notificationService.GetUserNotifications(c.Request().Context(), input.UserId, pg)
	if err == nil {
		if e := c.JSON(http.StatusOK, notifications); e != nil {
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

// /notifications/:notificationId/read
func (h *notificationRoutesHandler) MarkRead(c echo.Context) error {
	userId := c.QueryParam("userId")
	if userId == "" {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"'UserId': this field is required"}); e != nil {
			return e
		}

		return nil
	}

	err := h.notificationService.MarkRead(c.Request().Context(), c.Param("notificationId"), userId)
	if err == nil {
		if e := c.NoContent(http.StatusNoContent); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrNotificationNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no notification with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

// /notifications/read-all
func (h *notificationRoutesHandler) MarkAllRead(c echo.Context) error {
	userId := c.QueryParam("userId")
	if userId == "" {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"'UserId': this field is required"}); e != nil {
			return e
		}

		return nil
	}

	err := h.notificationService.MarkAllRead(c.Request().Context(), userId)
	if err == nil {
		if e := c.NoContent(http.StatusNoContent); e != nil {
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
