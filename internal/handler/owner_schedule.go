package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/matchday/matchday/internal/model"
	"github.com/matchday/matchday/internal/store"
)

// ScheduleMatch handles POST /v1/venues/:id/matches: the owner puts a fixture
// on the venue's broadcast schedule with a seat allotment and price.
func (h *OwnerHandler) ScheduleMatch(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	v, ok := h.ownVenue(c, c.Param("id"), ownerID)
	if !ok {
		return nil
	}
	var body struct {
		MatchID           string `json:"match_id"`
		AvailableSeats    int    `json:"available_seats"`
		PricePerSeatCents int64  `json:"price_per_seat_cents"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	ctx := c.Request().Context()
	if _, err := h.Store.MatchByID(ctx, body.MatchID); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "match not found"})
	}
	if body.AvailableSeats < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "available_seats cannot be negative"})
	}
	if body.PricePerSeatCents < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "price_per_seat_cents cannot be negative"})
	}
	vm, err := h.Store.CreateVenueMatch(ctx, model.VenueMatch{
		VenueID:           v.ID,
		MatchID:           body.MatchID,
		AvailableSeats:    body.AvailableSeats,
		PricePerSeatCents: body.PricePerSeatCents,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not schedule match"})
	}
	return c.JSON(http.StatusCreated, vm)
}

// ownVenueMatch loads a schedule entry and checks the owner behind its venue.
func (h *OwnerHandler) ownVenueMatch(c echo.Context, vmID, ownerID string) (model.VenueMatch, bool) {
	vm, err := h.Store.VenueMatchByID(c.Request().Context(), vmID)
	if err != nil {
		_ = c.JSON(http.StatusNotFound, echo.Map{"error": "schedule entry not found"})
		return model.VenueMatch{}, false
	}
	if _, ok := h.ownVenue(c, vm.VenueID, ownerID); !ok {
		return model.VenueMatch{}, false
	}
	return vm, true
}

// UpdateSchedule handles PATCH /v1/venue-matches/:id.
func (h *OwnerHandler) UpdateSchedule(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	if _, ok := h.ownVenueMatch(c, c.Param("id"), ownerID); !ok {
		return nil
	}
	var body struct {
		AvailableSeats    *int   `json:"available_seats"`
		PricePerSeatCents *int64 `json:"price_per_seat_cents"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.AvailableSeats != nil && *body.AvailableSeats < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "available_seats cannot be negative"})
	}
	if body.PricePerSeatCents != nil && *body.PricePerSeatCents < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "price_per_seat_cents cannot be negative"})
	}
	vm, err := h.Store.UpdateVenueMatch(c.Request().Context(), c.Param("id"), store.VenueMatchUpdate{
		AvailableSeats:    body.AvailableSeats,
		PricePerSeatCents: body.PricePerSeatCents,
	})
	if err != nil {
		if errors.Is(err, store.ErrVenueMatchNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "schedule entry not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, vm)
}

// DeleteSchedule handles DELETE /v1/venue-matches/:id. Reservations made
// against the entry are removed with it.
func (h *OwnerHandler) DeleteSchedule(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	if _, ok := h.ownVenueMatch(c, c.Param("id"), ownerID); !ok {
		return nil
	}
	h.Store.DeleteVenueMatch(c.Request().Context(), c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}
