package controller

import (
	"net/http"
	"strings"

	"home-connect-api/internal/entity"
	"home-connect-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type userRoutesHandler struct {
	userService service.User
	validate    *validator.Validate
}

func newUserRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *userRoutesHandler {
	h := &userRoutesHandler{userService: services.User, validate: v}

	outer.GET("/users", h.GetUsers)
	outer.GET("/users/:userId", h.GetUser)
	outer.PUT("/users/:userId/preferences", h.UpdatePreferences)

	return h
}

// /users
func (h *userRoutesHandler) GetUsers(c echo.Context) error {
	users, err := h.userService.GetUsers(c.Request().Context())
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}
	if e := c.JSON(http.StatusOK, users); e != nil {
		return e
	}

	return nil
}

// /users/:userId
func (h *userRoutesHandler) GetUser(c echo.Context) error {
	user, err := h.userService.GetUserById(c.Request().Context(), c.Param("userId"))
	if err == nil {
		if e := c.JSON(http.StatusOK, user); e != nil {
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

type updatePreferencesInput struct {
	UserId string `param:"userId" validate:"required,max=100"`
	Email  bool   `json:"email"`
	SMS    bool   `json:"sms"`
}

// /users/:userId/preferences
func (h *userRoutesHandler) UpdatePreferences(c echo.Context) error {
	var input updatePreferencesInput
	if err := c.Bind(&input); err != nil {
		msg := err.Error()
		if !strings.Contains(msg, "Request body can't be empty") {
			if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
				return e
			}

			return err
		}
	}

	input.UserId = c.Param("userId")
	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	prefs := entity.NotificationPreferences{Email: input.Email, SMS: input.SMS}
	user, err := h.userService.UpdatePreferences(c.Request().Context(), input.UserId, prefs)
	if err == nil {
		if e := c.JSON(http.StatusOK, user); e != nil {
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
