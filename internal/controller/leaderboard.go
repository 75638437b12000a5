package controller

import (
	"net/http"

	"home-connect-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type leaderboardRoutesHandler struct {
	leaderboardService service.Leaderboard
	validate           *validator.Validate
}

func newLeaderboardRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *leaderboardRoutesHandler {
	h := &leaderboardRoutesHandler{leaderboardService: services.Leaderboard, validate: v}

	outer.GET("/leaderboard", h.GetLeaderboard)
	outer.POST("/offers/new", h.PostOffer)
	outer.GET("/offers/:offerId", h.GetOffer)

	return h
}

// /leaderboard
func (h *leaderboardRoutesHandler) GetLeaderboard(c echo.Context) error {
	board, err := h.leaderboardService.GetLeaderboard(c.Request().Context(), c.QueryParam("community"))
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}
	if e := c.JSON(http.StatusOK, board); e != nil {
		return e
	}

	return nil
}

type postOfferInput struct {
	EmployerId string `json:"employerId" validate:"required,max=100"`
	MaidId     string `json:"maidId" validate:"required,max=100"`
}

// /offers/new
func (h *leaderboardRoutesHandler) PostOffer(c echo.Context) error {
	var input postOfferInput
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

	offer, err := h.leaderboardService.SendOffer(c.Request().Context(), input.EmployerId, input.MaidId)
	if err == nil {
		if e := c.JSON(http.StatusOK, offer); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrUserNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no user with given id"}); e != nil {
			return e
		}
	case service.ErrNotAnEmployer:
		if e := c.JSON(http.StatusForbidden, errorResponse{"Only employers can send offers"}); e != nil {
			return e
		}
	case service.ErrNotAMaid:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Offers can only be sent to maids"}); e != nil {
			return e
		}
	case service.ErrOfferAlreadyPending:
		if e := c.JSON(http.StatusConflict, errorResponse{"There is already a pending offer for this maid"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

// /offers/:offerId
func (h *leaderboardRoutesHandler) GetOffer(c echo.Context) error {
	offer, err := h.leaderboardService.GetOfferById(c.Request().Context(), c.Param("offerId"))
	if err == nil {
		if e := c.JSON(http.StatusOK, offer); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrOfferNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no offer with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}
