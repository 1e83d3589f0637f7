package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchday/matchday/internal/model"
)

func TestCreateVenue(t *testing.T) {
	env := newTestEnv(t)
	f := env.seedBookingFixture(t, 10)
	h := NewOwnerHandler(env.store, env.pub)

	c, rec := env.request(http.MethodPost, "/v1/venues",
		`{"name":"Courtside","city":"Utrecht","capacity":50}`, f.owner.User.ID)
	require.NoError(t, h.CreateVenue(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var v model.Venue
	decodeBody(t, rec, &v)
	assert.Equal(t, "Courtside", v.Name)
	assert.Equal(t, f.owner.User.ID, v.OwnerID)
	assert.True(t, v.IsActive, "new venues start active")

	// Name is required.
	c, rec = env.request(http.MethodPost, "/v1/venues", `{"name":"  "}`, f.owner.User.ID)
	require.NoError(t, h.CreateVenue(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateVenueOwnership(t *testing.T) {
	env := newTestEnv(t)
	f := env.seedBookingFixture(t, 10)
	h := NewOwnerHandler(env.store, env.pub)

	// The owner can update.
	c, rec := env.request(http.MethodPatch, "/", `{"is_active":false}`, f.owner.User.ID)
	c.SetParamNames("id")
	c.SetParamValues(f.venue.ID)
	require.NoError(t, h.UpdateVenue(c))
	require.Equal(t, http.StatusOK, rec.Code)
	var v model.Venue
	decodeBody(t, rec, &v)
	assert.False(t, v.IsActive)
	assert.Equal(t, f.venue.Name, v.Name, "unset field must survive")

	// Somebody else's venue is forbidden.
	other, err := env.store.SignUp(context.Background(), "other@example.com", "pw", model.RoleVenueOwner, "Other", "")
	require.NoError(t, err)
	c, rec = env.request(http.MethodPatch, "/", `{"name":"Hijacked"}`, other.User.ID)
	c.SetParamNames("id")
	c.SetParamValues(f.venue.ID)
	require.NoError(t, h.UpdateVenue(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// A missing venue is a 404, not a 403.
	c, rec = env.request(http.MethodPatch, "/", `{"name":"X"}`, f.owner.User.ID)
	c.SetParamNames("id")
	c.SetParamValues("missing")
	require.NoError(t, h.UpdateVenue(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteVenueCascadesOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	f := env.seedBookingFixture(t, 10)
	h := NewOwnerHandler(env.store, env.pub)
	r := createPendingReservation(t, env, f, 2)

	c, rec := env.request(http.MethodDelete, "/", "", f.owner.User.ID)
	c.SetParamNames("id")
	c.SetParamValues(f.venue.ID)
	require.NoError(t, h.DeleteVenue(c))
	require.Equal(t, http.StatusNoContent, rec.Code)

	ctx := context.Background()
	_, err := env.store.VenueByID(ctx, f.venue.ID)
	assert.Error(t, err)
	_, err = env.store.VenueMatchByID(ctx, f.vm.ID)
	assert.Error(t, err)
	_, err = env.store.ReservationByID(ctx, r.ID)
	assert.Error(t, err)
}

func TestListVenuesMine(t *testing.T) {
	env := newTestEnv(t)
	f := env.seedBookingFixture(t, 10)
	h := NewOwnerHandler(env.store, env.pub)

	second, err := env.store.CreateVenue(context.Background(), model.Venue{
		OwnerID: f.owner.User.ID, Name: "Second Venue", IsActive: true,
	})
	require.NoError(t, err)

	c, rec := env.request(http.MethodGet, "/v1/venues/mine", "", f.owner.User.ID)
	require.NoError(t, h.ListVenues(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Items []model.Venue `json:"items"`
	}
	decodeBody(t, rec, &body)
	require.Len(t, body.Items, 2)
	assert.Equal(t, second.ID, body.Items[0].ID, "newest first")
}

func TestScheduleMatch(t *testing.T) {
	env := newTestEnv(t)
	f := env.seedBookingFixture(t, 10)
	h := NewOwnerHandler(env.store, env.pub)

	c, rec := env.request(http.MethodPost, "/",
		`{"match_id":"`+f.match.ID+`","available_seats":25,"price_per_seat_cents":500}`, f.owner.User.ID)
	c.SetParamNames("id")
	c.SetParamValues(f.venue.ID)
	require.NoError(t, h.ScheduleMatch(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var vm model.VenueMatch
	decodeBody(t, rec, &vm)
	assert.Equal(t, 25, vm.AvailableSeats)
	assert.Equal(t, int64(500), vm.PricePerSeatCents)

	// Unknown match id.
	c, rec = env.request(http.MethodPost, "/", `{"match_id":"missing","available_seats":5}`, f.owner.User.ID)
	c.SetParamNames("id")
	c.SetParamValues(f.venue.ID)
	require.NoError(t, h.ScheduleMatch(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Negative inventory is rejected.
	c, rec = env.request(http.MethodPost, "/",
		`{"match_id":"`+f.match.ID+`","available_seats":-1}`, f.owner.User.ID)
	c.SetParamNames("id")
	c.SetParamValues(f.venue.ID)
	require.NoError(t, h.ScheduleMatch(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateScheduleOwnership(t *testing.T) {
	env := newTestEnv(t)
	f := env.seedBookingFixture(t, 10)
	h := NewOwnerHandler(env.store, env.pub)

	c, rec := env.request(http.MethodPatch, "/", `{"price_per_seat_cents":900}`, f.owner.User.ID)
	c.SetParamNames("id")
	c.SetParamValues(f.vm.ID)
	require.NoError(t, h.UpdateSchedule(c))
	require.Equal(t, http.StatusOK, rec.Code)
	var vm model.VenueMatch
	decodeBody(t, rec, &vm)
	assert.Equal(t, int64(900), vm.PricePerSeatCents)
	assert.Equal(t, 10, vm.AvailableSeats, "unset field must survive")

	other, err := env.store.SignUp(context.Background(), "other@example.com", "pw", model.RoleVenueOwner, "Other", "")
	require.NoError(t, err)
	c, rec = env.request(http.MethodPatch, "/", `{"available_seats":0}`, other.User.ID)
	c.SetParamNames("id")
	c.SetParamValues(f.vm.ID)
	require.NoError(t, h.UpdateSchedule(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
