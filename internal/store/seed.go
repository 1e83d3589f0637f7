package store

import (
	"context"
	"time"

	"github.com/matchday/matchday/internal/model"
)

// Seed loads the demonstration data set through the store's own create path,
// so every record gets a real id and timestamps. It is the second phase of
// startup: construct with New, then Seed, then serve. Calling Seed twice is
// a no-op, and seeding leaves nobody signed in.
func (s *Store) Seed(ctx context.Context) error {
	s.mu.Lock()
	if s.seeded {
		s.mu.Unlock()
		return nil
	}
	s.seeded = true
	s.mu.Unlock()

	football, _ := s.CreateSport(ctx, model.Sport{Name: "Football", Slug: "football"})
	basketball, _ := s.CreateSport(ctx, model.Sport{Name: "Basketball", Slug: "basketball"})
	if _, err := s.CreateSport(ctx, model.Sport{Name: "Tennis", Slug: "tennis"}); err != nil {
		return err
	}

	premier, _ := s.CreateLeague(ctx, model.League{SportID: football.ID, Name: "Premier League", Slug: "premier-league"})
	laliga, _ := s.CreateLeague(ctx, model.League{SportID: football.ID, Name: "La Liga", Slug: "la-liga"})
	nba, _ := s.CreateLeague(ctx, model.League{SportID: basketball.ID, Name: "NBA", Slug: "nba"})

	arsenal, _ := s.CreateTeam(ctx, model.Team{SportID: football.ID, Name: "Arsenal", Slug: "arsenal"})
	chelsea, _ := s.CreateTeam(ctx, model.Team{SportID: football.ID, Name: "Chelsea", Slug: "chelsea"})
	barca, _ := s.CreateTeam(ctx, model.Team{SportID: football.ID, Name: "FC Barcelona", Slug: "fc-barcelona"})
	madrid, _ := s.CreateTeam(ctx, model.Team{SportID: football.ID, Name: "Real Madrid", Slug: "real-madrid"})
	lakers, _ := s.CreateTeam(ctx, model.Team{SportID: basketball.ID, Name: "LA Lakers", Slug: "la-lakers"})
	celtics, _ := s.CreateTeam(ctx, model.Team{SportID: basketball.ID, Name: "Boston Celtics", Slug: "boston-celtics"})

	in := func(d time.Duration) string { return time.Now().UTC().Add(d).Format(stampLayout) }
	derby, _ := s.CreateMatch(ctx, model.Match{
		SportID: football.ID, LeagueID: premier.ID,
		HomeTeamID: arsenal.ID, AwayTeamID: chelsea.ID,
		MatchDate: in(48 * time.Hour),
	})
	clasico, _ := s.CreateMatch(ctx, model.Match{
		SportID: football.ID, LeagueID: laliga.ID,
		HomeTeamID: madrid.ID, AwayTeamID: barca.ID,
		MatchDate: in(72 * time.Hour),
	})
	finals, _ := s.CreateMatch(ctx, model.Match{
		SportID: basketball.ID, LeagueID: nba.ID,
		HomeTeamID: celtics.ID, AwayTeamID: lakers.ID,
		MatchDate: in(96 * time.Hour),
	})

	owner, err := s.SignUp(ctx, "owner@matchday.test", "owner-demo", model.RoleVenueOwner, "Olivia Owner", "+31 6 1234 5678")
	if err != nil {
		return err
	}
	customer, err := s.SignUp(ctx, "fan@matchday.test", "fan-demo", model.RoleCustomer, "Frank Fan", "+31 6 8765 4321")
	if err != nil {
		return err
	}

	corner, _ := s.CreateVenue(ctx, model.Venue{
		OwnerID: owner.User.ID, Name: "The Corner Flag",
		Description: "Football pub with three big screens",
		Address:     "Kerkstraat 12", City: "Amsterdam", PostalCode: "1017 GL",
		Capacity: 80, IsActive: true,
	})
	arena, _ := s.CreateVenue(ctx, model.Venue{
		OwnerID: owner.User.ID, Name: "Courtside Bar & Kitchen",
		Description: "Basketball-first sports bar",
		Address:     "Marktplein 3", City: "Utrecht", PostalCode: "3511 AB",
		Capacity: 50, IsActive: true,
	})

	vmDerby, _ := s.CreateVenueMatch(ctx, model.VenueMatch{
		VenueID: corner.ID, MatchID: derby.ID, AvailableSeats: 60, PricePerSeatCents: 750,
	})
	if _, err := s.CreateVenueMatch(ctx, model.VenueMatch{
		VenueID: corner.ID, MatchID: clasico.ID, AvailableSeats: 80, PricePerSeatCents: 500,
	}); err != nil {
		return err
	}
	if _, err := s.CreateVenueMatch(ctx, model.VenueMatch{
		VenueID: arena.ID, MatchID: finals.ID, AvailableSeats: 40, PricePerSeatCents: 1000,
	}); err != nil {
		return err
	}

	res, err := s.CreateReservation(ctx, model.Reservation{
		VenueMatchID:  vmDerby.ID,
		CustomerID:    customer.User.ID,
		CustomerName:  customer.Profile.FullName,
		CustomerEmail: customer.User.Email,
		PartySize:     4,
	})
	if err != nil {
		return err
	}
	if _, err := s.CreateNotification(ctx, model.Notification{
		UserID:  owner.User.ID,
		Type:    model.NotificationReservationCreated,
		Title:   "New reservation",
		Message: "Frank Fan requested 4 seats for Arsenal vs Chelsea",
	}); err != nil {
		return err
	}

	s.SignOut(ctx)
	s.mu.RLock()
	s.log.Info("seed data loaded",
		"sports", len(s.sports), "matches", len(s.matches),
		"venues", len(s.venues), "reservations", len(s.reservations),
		"demo_reservation", res.ID)
	s.mu.RUnlock()
	return nil
}
