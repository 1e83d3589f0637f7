package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/matchday/matchday/internal/model"
	"github.com/matchday/matchday/internal/store"
)

// ListVenueReservations handles GET /v1/venues/:id/reservations: every
// reservation across the venue's schedule, newest first, enriched with the
// full screening context.
func (h *OwnerHandler) ListVenueReservations(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	v, ok := h.ownVenue(c, c.Param("id"), ownerID)
	if !ok {
		return nil
	}
	items := h.Store.VenueReservations(c.Request().Context(), v.ID)
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// DecideReservation handles PATCH /v1/reservations/:id/status: the owner
// confirms or declines a pending reservation. Confirming takes the party out
// of the screening's seat pool.
func (h *OwnerHandler) DecideReservation(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		Status string `json:"status"` // confirmed | declined
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Status != model.ReservationConfirmed && body.Status != model.ReservationDeclined {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be confirmed or declined"})
	}

	ctx := c.Request().Context()
	r, err := h.Store.ReservationByID(ctx, c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
	}
	vm, ok := h.ownVenueMatch(c, r.VenueMatchID, ownerID)
	if !ok {
		return nil
	}
	if r.Status != model.ReservationPending {
		return c.JSON(http.StatusConflict, echo.Map{"error": "reservation already decided"})
	}

	updated, err := h.Store.UpdateReservation(ctx, r.ID, store.ReservationUpdate{Status: &body.Status})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}

	eventType := model.NotificationReservationDeclined
	if body.Status == model.ReservationConfirmed {
		eventType = model.NotificationReservationConfirmed
		// Always deduct the full party, even past zero: an overcommitted
		// pool goes negative, and cancelling later restores exactly what
		// was taken. Clamping here would let cancellations mint seats.
		remaining := vm.AvailableSeats - r.PartySize
		_, _ = h.Store.UpdateVenueMatch(ctx, vm.ID, store.VenueMatchUpdate{AvailableSeats: &remaining})
	}
	emitReservationEvent(ctx, h.Store, h.Pub, eventType, updated)

	return c.JSON(http.StatusOK, updated)
}
