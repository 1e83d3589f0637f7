package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/matchday/matchday/internal/model"
	"github.com/matchday/matchday/internal/service"
	"github.com/matchday/matchday/internal/store"
)

// CustomerHandler serves the booking endpoints used by signed-in customers.
type CustomerHandler struct {
	Store *store.Store
	Pub   service.Publisher
}

func NewCustomerHandler(st *store.Store, pub service.Publisher) *CustomerHandler {
	if st == nil {
		panic("nil store passed to NewCustomerHandler")
	}
	return &CustomerHandler{Store: st, Pub: pub}
}

// CreateReservation handles POST /v1/venue-matches/:id/reservations. The
// request is rejected when the party does not fit the screening's remaining
// seats; contact details default to the customer's profile.
func (h *CustomerHandler) CreateReservation(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		PartySize     int    `json:"party_size"`
		CustomerName  string `json:"customer_name"`
		CustomerEmail string `json:"customer_email"`
		CustomerPhone string `json:"customer_phone"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.PartySize < 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "party_size must be at least 1"})
	}

	ctx := c.Request().Context()
	vm, err := h.Store.VenueMatchByID(ctx, c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "screening not found"})
	}
	if body.PartySize > vm.AvailableSeats {
		return c.JSON(http.StatusConflict, echo.Map{"error": "not enough seats available"})
	}

	name := strings.TrimSpace(body.CustomerName)
	email := strings.TrimSpace(body.CustomerEmail)
	phone := strings.TrimSpace(body.CustomerPhone)
	if name == "" || email == "" || phone == "" {
		if p, err := h.Store.ProfileByID(ctx, uid); err == nil {
			if name == "" {
				name = p.FullName
			}
			if phone == "" {
				phone = p.Phone
			}
		}
		if email == "" {
			if u, err := h.Store.UserByID(ctx, uid); err == nil {
				email = u.Email
			}
		}
	}

	r, err := h.Store.CreateReservation(ctx, model.Reservation{
		VenueMatchID:  vm.ID,
		CustomerID:    uid,
		CustomerName:  name,
		CustomerEmail: email,
		CustomerPhone: phone,
		PartySize:     body.PartySize,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create reservation"})
	}
	emitReservationEvent(ctx, h.Store, h.Pub, model.NotificationReservationCreated, r)

	return c.JSON(http.StatusCreated, r)
}

// MyReservations handles GET /v1/reservations/my: the customer's bookings,
// newest first.
func (h *CustomerHandler) MyReservations(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	items := h.Store.MyReservations(c.Request().Context(), uid)
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// UpcomingReservations handles GET /v1/reservations/upcoming: pending and
// confirmed bookings for fixtures that have not kicked off yet, soonest first.
func (h *CustomerHandler) UpcomingReservations(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	items := h.Store.UpcomingReservations(c.Request().Context(), uid, store.NowStamp())
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// CancelReservation handles POST /v1/reservations/:id/cancel. Only the
// customer who booked may cancel, and only while the reservation is pending
// or confirmed. Seats held by a confirmed booking go back to the pool.
func (h *CustomerHandler) CancelReservation(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx := c.Request().Context()
	r, err := h.Store.ReservationByID(ctx, c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
	}
	if r.CustomerID != uid {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	if r.Status != model.ReservationPending && r.Status != model.ReservationConfirmed {
		return c.JSON(http.StatusConflict, echo.Map{"error": "reservation can no longer be cancelled"})
	}

	wasConfirmed := r.Status == model.ReservationConfirmed
	status := model.ReservationCancelled
	updated, err := h.Store.UpdateReservation(ctx, r.ID, store.ReservationUpdate{Status: &status})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "cancel failed"})
	}
	if wasConfirmed {
		if vm, err := h.Store.VenueMatchByID(ctx, r.VenueMatchID); err == nil {
			restored := vm.AvailableSeats + r.PartySize
			_, _ = h.Store.UpdateVenueMatch(ctx, vm.ID, store.VenueMatchUpdate{AvailableSeats: &restored})
		}
	}
	emitReservationEvent(ctx, h.Store, h.Pub, model.NotificationReservationCancelled, updated)

	return c.JSON(http.StatusOK, updated)
}
