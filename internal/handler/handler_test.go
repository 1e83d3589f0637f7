package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/matchday/matchday/internal/model"
	"github.com/matchday/matchday/internal/service"
	"github.com/matchday/matchday/internal/store"
)

// testEnv bundles the pieces every handler test needs: a fresh store, a
// disabled publisher (events fall back to synchronous notifications) and an
// echo instance for building contexts.
type testEnv struct {
	store *store.Store
	pub   service.Publisher
	echo  *echo.Echo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &testEnv{
		store: store.New(logger, nil),
		pub:   service.Publisher{Log: logger},
		echo:  echo.New(),
	}
}

// request builds an echo context for a JSON request. uid is injected the way
// the JWT middleware would; pass "" for anonymous calls.
func (env *testEnv) request(method, path, body, uid string) (echo.Context, *httptest.ResponseRecorder) {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := env.echo.NewContext(req, rec)
	if uid != "" {
		c.Set("user_id", uid)
	}
	return c, rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

// fixture seeds one owner with a venue screening one match, plus a customer,
// and returns everything a booking flow test needs.
type fixture struct {
	owner    model.Session
	customer model.Session
	venue    model.Venue
	match    model.Match
	vm       model.VenueMatch
}

func (env *testEnv) seedBookingFixture(t *testing.T, seats int) fixture {
	t.Helper()
	ctx := context.Background()

	owner, err := env.store.SignUp(ctx, "owner@example.com", "pw", model.RoleVenueOwner, "Olivia Owner", "+31 6 0001")
	require.NoError(t, err)
	customer, err := env.store.SignUp(ctx, "fan@example.com", "pw", model.RoleCustomer, "Frank Fan", "+31 6 0002")
	require.NoError(t, err)

	venue, err := env.store.CreateVenue(ctx, model.Venue{
		OwnerID: owner.User.ID, Name: "The Corner Flag", City: "Amsterdam",
		Capacity: 80, IsActive: true,
	})
	require.NoError(t, err)

	match, err := env.store.CreateMatch(ctx, model.Match{MatchDate: "2026-12-01T18:00:00.000000Z"})
	require.NoError(t, err)

	vm, err := env.store.CreateVenueMatch(ctx, model.VenueMatch{
		VenueID: venue.ID, MatchID: match.ID,
		AvailableSeats: seats, PricePerSeatCents: 750,
	})
	require.NoError(t, err)

	return fixture{owner: owner, customer: customer, venue: venue, match: match, vm: vm}
}
