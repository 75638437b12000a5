package controller

import (
	"home-connect-api/internal/metrics"
	"home-connect-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

func SetupRoutesHandlers(handler *echo.Echo, services *service.Services, m *metrics.Collector) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	api := handler.Group("/api")
	newDiagnosticRoutesHandler(api, services)
	newJobRoutesHandler(api, services, validate)
	newUserRoutesHandler(api, services, validate)
	newNotificationRoutesHandler(api, services, validate)
	newLeaderboardRoutesHandler(api, services, validate)
	newForumRoutesHandler(api, services, validate)
	newReviewRoutesHandler(api, services, validate)
	newModerationRoutesHandler(api, services, validate)

	if m != nil {
		handler.GET("/metrics", echo.WrapHandler(m.Handler()))
	}
}
