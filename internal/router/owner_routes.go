package router

import (
	"github.com/labstack/echo/v4"

	"github.com/matchday/matchday/internal/handler"
	"github.com/matchday/matchday/internal/middleware"
	"github.com/matchday/matchday/internal/model"
)

// RegisterOwner registers venue-owner endpoints under /v1. All routes
// require a valid JWT carrying the venue_owner role.
func RegisterOwner(e *echo.Echo, o *handler.OwnerHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleVenueOwner),
	)

	// ---- Venues ----
	g.POST("/venues", o.CreateVenue)
	g.GET("/venues/mine", o.ListVenues)
	g.PATCH("/venues/:id", o.UpdateVenue)
	g.DELETE("/venues/:id", o.DeleteVenue)

	// ---- Broadcast schedule ----
	g.POST("/venues/:id/matches", o.ScheduleMatch)
	g.PATCH("/venue-matches/:id", o.UpdateSchedule)
	g.DELETE("/venue-matches/:id", o.DeleteSchedule)

	// ---- Reservations ----
	g.GET("/venues/:id/reservations", o.ListVenueReservations)
	g.PATCH("/reservations/:id/status", o.DecideReservation)
}
