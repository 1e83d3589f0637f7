// Package router wires the HTTP surface: public browsing, authentication and
// the role-scoped owner and customer APIs.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/matchday/matchday/internal/handler"
	"github.com/matchday/matchday/internal/middleware"
	"github.com/matchday/matchday/internal/model"
)

// RegisterRoutes registers routes that need neither authentication nor
// extra middleware. Currently that is only the health check used by load
// balancers.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterPublic registers the unauthenticated browse endpoints. The extra
// middlewares (response cache, rate limiting) apply to this group only;
// authenticated traffic always hits the store directly.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, mw ...echo.MiddlewareFunc) {
	g := e.Group("/v1", mw...)

	// ---- Catalog ----
	g.GET("/sports", p.GetSports)
	g.GET("/leagues", p.GetLeagues)
	g.GET("/teams", p.GetTeams)

	// ---- Fixtures ----
	g.GET("/matches", p.GetMatches)
	g.GET("/matches/:id", p.GetMatch)
	g.GET("/matches/:id/screenings", p.GetMatchScreenings)

	// ---- Venues ----
	g.GET("/venues", p.GetVenues)
	g.GET("/venues/:id", p.GetVenue)
	g.GET("/venues/:id/schedule", p.GetVenueSchedule)
}

// RegisterAuth registers authentication endpoints. Register, login and the
// session lookup live under /v1/auth and need no token; the account endpoints
// under /v1 require a valid JWT of either role.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/logout", a.Logout)
	g.GET("/session", a.SessionInfo)

	auth := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleCustomer, model.RoleVenueOwner),
	)
	auth.GET("/me", a.Me)
	auth.PATCH("/me/profile", a.UpdateProfile)
}

// RegisterNotifications registers the notification feed. Both roles receive
// notifications, so the group accepts either.
func RegisterNotifications(e *echo.Echo, n *handler.NotificationHandler, jwtSecret string) {
	g := e.Group(
		"/v1/notifications",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleCustomer, model.RoleVenueOwner),
	)
	g.GET("", n.List)
	g.POST("/:id/read", n.MarkRead)
	g.POST("/read-all", n.MarkAllRead)
}
