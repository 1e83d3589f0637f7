package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchday/matchday/internal/model"
)

func TestCreateMatchDefaultsToScheduled(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	m, err := s.CreateMatch(ctx, model.Match{MatchDate: "2026-09-01T18:00:00.000000Z"})
	require.NoError(t, err)
	assert.Equal(t, model.MatchScheduled, m.Status)

	live, err := s.CreateMatch(ctx, model.Match{Status: model.MatchLive})
	require.NoError(t, err)
	assert.Equal(t, model.MatchLive, live.Status)
}

func TestMatchesFilterAndOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	later, err := s.CreateMatch(ctx, model.Match{
		SportID: "football", LeagueID: "premier",
		HomeTeamID: "arsenal", AwayTeamID: "chelsea",
		MatchDate: "2026-09-03T18:00:00.000000Z",
	})
	require.NoError(t, err)
	sooner, err := s.CreateMatch(ctx, model.Match{
		SportID: "football", LeagueID: "laliga",
		HomeTeamID: "madrid", AwayTeamID: "barca",
		MatchDate: "2026-09-01T18:00:00.000000Z",
	})
	require.NoError(t, err)
	_, err = s.CreateMatch(ctx, model.Match{
		SportID: "basketball", LeagueID: "nba",
		HomeTeamID: "celtics", AwayTeamID: "lakers",
		MatchDate: "2026-09-02T18:00:00.000000Z",
	})
	require.NoError(t, err)

	all := s.Matches(ctx, MatchFilter{})
	require.Len(t, all, 3)
	assert.Equal(t, sooner.ID, all[0].ID, "ascending by match date")

	football := s.Matches(ctx, MatchFilter{SportID: "football"})
	require.Len(t, football, 2)
	assert.Equal(t, sooner.ID, football[0].ID)
	assert.Equal(t, later.ID, football[1].ID)

	byLeague := s.Matches(ctx, MatchFilter{LeagueID: "nba"})
	assert.Len(t, byLeague, 1)

	// Team filter matches home or away.
	assert.Len(t, s.Matches(ctx, MatchFilter{TeamID: "chelsea"}), 1)
	assert.Len(t, s.Matches(ctx, MatchFilter{TeamID: "madrid"}), 1)
	assert.Empty(t, s.Matches(ctx, MatchFilter{TeamID: "ajax"}))
}

func TestUpdateMatchScores(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	m, err := s.CreateMatch(ctx, model.Match{MatchDate: "2026-09-01T18:00:00.000000Z"})
	require.NoError(t, err)
	require.Nil(t, m.HomeScore)

	home, away := 2, 1
	status := model.MatchFinished
	got, err := s.UpdateMatch(ctx, m.ID, MatchUpdate{Status: &status, HomeScore: &home, AwayScore: &away})
	require.NoError(t, err)
	require.NotNil(t, got.HomeScore)
	assert.Equal(t, 2, *got.HomeScore)
	assert.Equal(t, 1, *got.AwayScore)
	assert.Equal(t, model.MatchFinished, got.Status)
	assert.Equal(t, m.MatchDate, got.MatchDate, "unset field must survive")
}

func TestMatchDetailsEnrichment(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	sp, _ := s.CreateSport(ctx, model.Sport{Name: "Football"})
	lg, _ := s.CreateLeague(ctx, model.League{SportID: sp.ID, Name: "Premier League"})
	home, _ := s.CreateTeam(ctx, model.Team{SportID: sp.ID, Name: "Arsenal"})
	away, _ := s.CreateTeam(ctx, model.Team{SportID: sp.ID, Name: "Chelsea"})

	m, err := s.CreateMatch(ctx, model.Match{
		SportID: sp.ID, LeagueID: lg.ID,
		HomeTeamID: home.ID, AwayTeamID: away.ID,
		MatchDate: "2026-09-01T18:00:00.000000Z",
	})
	require.NoError(t, err)

	em, err := s.MatchDetails(ctx, m.ID)
	require.NoError(t, err)
	require.NotNil(t, em.Sport)
	require.NotNil(t, em.League)
	require.NotNil(t, em.HomeTeam)
	require.NotNil(t, em.AwayTeam)
	assert.Equal(t, "Arsenal", em.HomeTeam.Name)
	assert.Equal(t, "Chelsea", em.AwayTeam.Name)
}

func TestMatchDetailsToleratesDanglingReferences(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	m, err := s.CreateMatch(ctx, model.Match{
		SportID: "gone", LeagueID: "gone",
		HomeTeamID: "gone", AwayTeamID: "gone",
	})
	require.NoError(t, err)

	em, err := s.MatchDetails(ctx, m.ID)
	require.NoError(t, err)
	assert.Nil(t, em.Sport)
	assert.Nil(t, em.League)
	assert.Nil(t, em.HomeTeam)
	assert.Nil(t, em.AwayTeam)

	_, err = s.MatchDetails(ctx, "missing")
	assert.ErrorIs(t, err, ErrMatchNotFound)
}

func TestDeleteMatchCascades(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	m, _ := s.CreateMatch(ctx, model.Match{MatchDate: "2026-09-01T18:00:00.000000Z"})
	v, _ := s.CreateVenue(ctx, model.Venue{OwnerID: "owner", Name: "Bar", IsActive: true})
	vm, _ := s.CreateVenueMatch(ctx, model.VenueMatch{VenueID: v.ID, MatchID: m.ID, AvailableSeats: 10})
	r, _ := s.CreateReservation(ctx, model.Reservation{VenueMatchID: vm.ID, CustomerID: "cust", PartySize: 2})

	s.DeleteMatch(ctx, m.ID)

	_, err := s.MatchByID(ctx, m.ID)
	assert.ErrorIs(t, err, ErrMatchNotFound)
	_, err = s.VenueMatchByID(ctx, vm.ID)
	assert.ErrorIs(t, err, ErrVenueMatchNotFound)
	_, err = s.ReservationByID(ctx, r.ID)
	assert.ErrorIs(t, err, ErrReservationNotFound)

	// The venue itself is untouched.
	_, err = s.VenueByID(ctx, v.ID)
	assert.NoError(t, err)
}
