package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchday/matchday/internal/model"
)

func TestGetSportsAndFilters(t *testing.T) {
	env := newTestEnv(t)
	h := NewPublicHandler(env.store)
	ctx := context.Background()

	football, _ := env.store.CreateSport(ctx, model.Sport{Name: "Football"})
	basketball, _ := env.store.CreateSport(ctx, model.Sport{Name: "Basketball"})
	_, err := env.store.CreateLeague(ctx, model.League{SportID: football.ID, Name: "Premier League"})
	require.NoError(t, err)
	_, err = env.store.CreateLeague(ctx, model.League{SportID: basketball.ID, Name: "NBA"})
	require.NoError(t, err)

	c, rec := env.request(http.MethodGet, "/v1/sports", "", "")
	require.NoError(t, h.GetSports(c))
	require.Equal(t, http.StatusOK, rec.Code)
	var sports struct {
		Items []model.Sport `json:"items"`
	}
	decodeBody(t, rec, &sports)
	require.Len(t, sports.Items, 2)
	assert.Equal(t, "Basketball", sports.Items[0].Name, "alphabetical")

	c, rec = env.request(http.MethodGet, "/v1/leagues?sport_id="+football.ID, "", "")
	require.NoError(t, h.GetLeagues(c))
	var leagues struct {
		Items []model.League `json:"items"`
	}
	decodeBody(t, rec, &leagues)
	require.Len(t, leagues.Items, 1)
	assert.Equal(t, "Premier League", leagues.Items[0].Name)
}

func TestGetMatchEnriched(t *testing.T) {
	env := newTestEnv(t)
	h := NewPublicHandler(env.store)
	ctx := context.Background()

	sp, _ := env.store.CreateSport(ctx, model.Sport{Name: "Football"})
	home, _ := env.store.CreateTeam(ctx, model.Team{SportID: sp.ID, Name: "Arsenal"})
	away, _ := env.store.CreateTeam(ctx, model.Team{SportID: sp.ID, Name: "Chelsea"})
	m, _ := env.store.CreateMatch(ctx, model.Match{
		SportID: sp.ID, HomeTeamID: home.ID, AwayTeamID: away.ID,
		MatchDate: "2026-12-01T18:00:00.000000Z",
	})

	c, rec := env.request(http.MethodGet, "/", "", "")
	c.SetParamNames("id")
	c.SetParamValues(m.ID)
	require.NoError(t, h.GetMatch(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var em model.EnrichedMatch
	decodeBody(t, rec, &em)
	require.NotNil(t, em.HomeTeam)
	assert.Equal(t, "Arsenal", em.HomeTeam.Name)
	assert.Nil(t, em.League, "dangling league reference stays null")

	c, rec = env.request(http.MethodGet, "/", "", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")
	require.NoError(t, h.GetMatch(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetVenuesOnlyActive(t *testing.T) {
	env := newTestEnv(t)
	f := env.seedBookingFixture(t, 10)
	h := NewPublicHandler(env.store)

	_, err := env.store.CreateVenue(context.Background(), model.Venue{
		OwnerID: f.owner.User.ID, Name: "Hidden", IsActive: false,
	})
	require.NoError(t, err)

	c, rec := env.request(http.MethodGet, "/v1/venues", "", "")
	require.NoError(t, h.GetVenues(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Items []model.Venue `json:"items"`
	}
	decodeBody(t, rec, &body)
	require.Len(t, body.Items, 1)
	assert.Equal(t, f.venue.ID, body.Items[0].ID)
}

func TestGetVenueScheduleAndScreenings(t *testing.T) {
	env := newTestEnv(t)
	f := env.seedBookingFixture(t, 10)
	h := NewPublicHandler(env.store)

	c, rec := env.request(http.MethodGet, "/", "", "")
	c.SetParamNames("id")
	c.SetParamValues(f.venue.ID)
	require.NoError(t, h.GetVenueSchedule(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var vw model.VenueWithMatches
	decodeBody(t, rec, &vw)
	assert.Equal(t, f.venue.ID, vw.ID)
	require.Len(t, vw.Matches, 1)
	assert.Equal(t, f.vm.ID, vw.Matches[0].ID)

	c, rec = env.request(http.MethodGet, "/", "", "")
	c.SetParamNames("id")
	c.SetParamValues(f.match.ID)
	require.NoError(t, h.GetMatchScreenings(c))
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Items []model.EnrichedVenueMatch `json:"items"`
	}
	decodeBody(t, rec, &body)
	require.Len(t, body.Items, 1)
	require.NotNil(t, body.Items[0].Venue)
	assert.Equal(t, f.venue.Name, body.Items[0].Venue.Name)
}
