package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/matchday/matchday/internal/model"
	"github.com/matchday/matchday/internal/service"
	"github.com/matchday/matchday/internal/store"
)

// OwnerHandler groups the endpoints a venue owner uses to manage
// establishments, their broadcast schedule and incoming reservations. Role
// middleware guarantees the caller carries the venue_owner role.
type OwnerHandler struct {
	Store *store.Store
	Pub   service.Publisher
}

func NewOwnerHandler(st *store.Store, pub service.Publisher) *OwnerHandler {
	if st == nil {
		panic("nil store passed to NewOwnerHandler")
	}
	return &OwnerHandler{Store: st, Pub: pub}
}

// ownVenue loads a venue and enforces ownership: 404 when absent, 403 when
// owned by someone else. The bool reports whether the caller may proceed.
func (h *OwnerHandler) ownVenue(c echo.Context, venueID, ownerID string) (model.Venue, bool) {
	v, err := h.Store.VenueByID(c.Request().Context(), venueID)
	if err != nil {
		_ = c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		return model.Venue{}, false
	}
	if v.OwnerID != ownerID {
		_ = c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		return model.Venue{}, false
	}
	return v, true
}

// CreateVenue handles POST /v1/venues.
func (h *OwnerHandler) CreateVenue(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Address     string `json:"address"`
		City        string `json:"city"`
		PostalCode  string `json:"postal_code"`
		Capacity    int    `json:"capacity"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	v, err := h.Store.CreateVenue(c.Request().Context(), model.Venue{
		OwnerID:     ownerID,
		Name:        name,
		Description: body.Description,
		Address:     body.Address,
		City:        body.City,
		PostalCode:  body.PostalCode,
		Capacity:    body.Capacity,
		IsActive:    true,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create venue"})
	}
	return c.JSON(http.StatusCreated, v)
}

// ListVenues handles GET /v1/venues/mine: the caller's venues, most recent
// first.
func (h *OwnerHandler) ListVenues(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	items := h.Store.VenuesByOwner(c.Request().Context(), ownerID)
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// UpdateVenue handles PATCH /v1/venues/:id.
func (h *OwnerHandler) UpdateVenue(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	if _, ok := h.ownVenue(c, c.Param("id"), ownerID); !ok {
		return nil
	}
	var body struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Address     *string `json:"address"`
		City        *string `json:"city"`
		PostalCode  *string `json:"postal_code"`
		Capacity    *int    `json:"capacity"`
		IsActive    *bool   `json:"is_active"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Name != nil && strings.TrimSpace(*body.Name) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name cannot be empty"})
	}
	v, err := h.Store.UpdateVenue(c.Request().Context(), c.Param("id"), store.VenueUpdate{
		Name:        body.Name,
		Description: body.Description,
		Address:     body.Address,
		City:        body.City,
		PostalCode:  body.PostalCode,
		Capacity:    body.Capacity,
		IsActive:    body.IsActive,
	})
	if err != nil {
		if errors.Is(err, store.ErrVenueNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, v)
}

// DeleteVenue handles DELETE /v1/venues/:id. The delete cascades to the
// venue's schedule entries and their reservations.
func (h *OwnerHandler) DeleteVenue(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	if _, ok := h.ownVenue(c, c.Param("id"), ownerID); !ok {
		return nil
	}
	h.Store.DeleteVenue(c.Request().Context(), c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}
