// Public browsing endpoints. These routes require no authentication: guests
// can explore the catalog, upcoming fixtures, venues and where a match is
// being screened before deciding to register.
package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/matchday/matchday/internal/store"
)

// PublicHandler serves the unauthenticated browse API.
type PublicHandler struct {
	Store *store.Store
}

func NewPublicHandler(st *store.Store) *PublicHandler {
	if st == nil {
		panic("nil store passed to NewPublicHandler")
	}
	return &PublicHandler{Store: st}
}

// GetSports lists all sports alphabetically.
func (h *PublicHandler) GetSports(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Store.Sports(c.Request().Context())})
}

// GetLeagues lists leagues, optionally filtered with ?sport_id=.
func (h *PublicHandler) GetLeagues(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Store.Leagues(c.Request().Context(), c.QueryParam("sport_id"))})
}

// GetTeams lists teams, optionally filtered with ?sport_id=.
func (h *PublicHandler) GetTeams(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Store.Teams(c.Request().Context(), c.QueryParam("sport_id"))})
}

// GetMatches lists fixtures ascending by date. Supports ?sport_id=,
// ?league_id=, ?team_id= and ?status= filters.
func (h *PublicHandler) GetMatches(c echo.Context) error {
	f := store.MatchFilter{
		SportID:  c.QueryParam("sport_id"),
		LeagueID: c.QueryParam("league_id"),
		TeamID:   c.QueryParam("team_id"),
		Status:   c.QueryParam("status"),
	}
	return c.JSON(http.StatusOK, echo.Map{"items": h.Store.Matches(c.Request().Context(), f)})
}

// GetMatch returns a single fixture enriched with its sport, league and
// teams.
func (h *PublicHandler) GetMatch(c echo.Context) error {
	em, err := h.Store.MatchDetails(c.Request().Context(), c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "match not found"})
	}
	return c.JSON(http.StatusOK, em)
}

// GetMatchScreenings lists every venue screening a given match.
func (h *PublicHandler) GetMatchScreenings(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")
	if _, err := h.Store.MatchByID(ctx, id); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "match not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": h.Store.ScreeningsForMatch(ctx, id)})
}

// GetVenues lists active venues alphabetically.
func (h *PublicHandler) GetVenues(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Store.ActiveVenues(c.Request().Context())})
}

// GetVenue returns a single venue.
func (h *PublicHandler) GetVenue(c echo.Context) error {
	v, err := h.Store.VenueByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrVenueNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "lookup failed"})
	}
	return c.JSON(http.StatusOK, v)
}

// GetVenueSchedule returns a venue together with its broadcast schedule,
// each entry enriched with the full match context.
func (h *PublicHandler) GetVenueSchedule(c echo.Context) error {
	vw, err := h.Store.VenueWithMatches(c.Request().Context(), c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
	}
	return c.JSON(http.StatusOK, vw)
}
