package router

import (
	"github.com/labstack/echo/v4"

	"github.com/matchday/matchday/internal/handler"
	"github.com/matchday/matchday/internal/middleware"
	"github.com/matchday/matchday/internal/model"
)

// RegisterCustomer registers customer endpoints under /v1. All routes
// require a valid JWT carrying the customer role. Customers book seats at a
// screening, review their bookings and cancel the ones they no longer need.
func RegisterCustomer(e *echo.Echo, h *handler.CustomerHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleCustomer),
	)

	g.POST("/venue-matches/:id/reservations", h.CreateReservation)
	g.GET("/reservations/my", h.MyReservations)
	g.GET("/reservations/upcoming", h.UpcomingReservations)
	g.POST("/reservations/:id/cancel", h.CancelReservation)
}
