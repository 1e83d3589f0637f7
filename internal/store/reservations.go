package store

import (
	"context"
	"sort"

	"github.com/matchday/matchday/internal/model"
)

// CreateReservation inserts a booking request. An empty status defaults to
// pending. The store accepts the record as given; seat availability checks
// belong to the caller.
func (s *Store) CreateReservation(ctx context.Context, in model.Reservation) (model.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	in.ID = ensureID(in.ID)
	if in.Status == "" {
		in.Status = model.ReservationPending
	}
	now := s.stamp()
	in.CreatedAt, in.UpdatedAt = now, now
	s.reservations[in.ID] = in
	return in, nil
}

// ReservationByID fetches a reservation by id.
func (s *Store) ReservationByID(ctx context.Context, id string) (model.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.reservations[id]
	if !ok {
		return model.Reservation{}, ErrReservationNotFound
	}
	return r, nil
}

// ReservationUpdate lists the mutable reservation fields.
type ReservationUpdate struct {
	Status        *string
	PartySize     *int
	CustomerName  *string
	CustomerEmail *string
	CustomerPhone *string
}

// UpdateReservation shallow-merges the set fields and bumps UpdatedAt.
func (s *Store) UpdateReservation(ctx context.Context, id string, upd ReservationUpdate) (model.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reservations[id]
	if !ok {
		return model.Reservation{}, ErrReservationNotFound
	}
	if upd.Status != nil {
		r.Status = *upd.Status
	}
	if upd.PartySize != nil {
		r.PartySize = *upd.PartySize
	}
	if upd.CustomerName != nil {
		r.CustomerName = *upd.CustomerName
	}
	if upd.CustomerEmail != nil {
		r.CustomerEmail = *upd.CustomerEmail
	}
	if upd.CustomerPhone != nil {
		r.CustomerPhone = *upd.CustomerPhone
	}
	r.UpdatedAt = s.stamp()
	s.reservations[id] = r
	return r, nil
}

// DeleteReservation removes a reservation; no-op when absent.
func (s *Store) DeleteReservation(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.reservations, id)
}

// dropReservationsFor removes every reservation targeting the given schedule
// entry. Caller holds the write lock; used by the cascade deletes.
func (s *Store) dropReservationsFor(venueMatchID string) {
	for id, r := range s.reservations {
		if r.VenueMatchID == venueMatchID {
			delete(s.reservations, id)
		}
	}
}

// MyReservations lists a customer's reservations, newest first, each
// enriched with its screening. A dangling venue_match_id leaves the branch
// nil rather than failing the whole listing.
func (s *Store) MyReservations(ctx context.Context, customerID string) []model.EnrichedReservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.EnrichedReservation, 0, 4)
	for _, r := range s.reservations {
		if r.CustomerID == customerID {
			out = append(out, s.enrichReservation(r))
		}
	}
	sortNewestFirst(out)
	return out
}

// VenueReservations lists every reservation across a venue's schedule,
// newest first, enriched.
func (s *Store) VenueReservations(ctx context.Context, venueID string) []model.EnrichedReservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.EnrichedReservation, 0, 4)
	for _, r := range s.reservations {
		vm, ok := s.venueMatches[r.VenueMatchID]
		if !ok || vm.VenueID != venueID {
			continue
		}
		out = append(out, s.enrichReservation(r))
	}
	sortNewestFirst(out)
	return out
}

// UpcomingReservations lists a customer's pending and confirmed reservations
// whose match has not started yet, soonest first. notBefore is the cutoff
// stamp, normally the current time rendered by the caller.
func (s *Store) UpcomingReservations(ctx context.Context, customerID, notBefore string) []model.EnrichedReservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.EnrichedReservation, 0, 4)
	for _, r := range s.reservations {
		if r.CustomerID != customerID {
			continue
		}
		if r.Status != model.ReservationPending && r.Status != model.ReservationConfirmed {
			continue
		}
		er := s.enrichReservation(r)
		if er.VenueMatch == nil || er.VenueMatch.Match == nil {
			continue
		}
		if er.VenueMatch.Match.MatchDate < notBefore {
			continue
		}
		out = append(out, er)
	}
	sort.Slice(out, func(i, j int) bool {
		di, dj := out[i].VenueMatch.Match.MatchDate, out[j].VenueMatch.Match.MatchDate
		if di != dj {
			return di < dj
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func sortNewestFirst(rs []model.EnrichedReservation) {
	sort.Slice(rs, func(i, j int) bool {
		if rs[i].CreatedAt != rs[j].CreatedAt {
			return rs[i].CreatedAt > rs[j].CreatedAt
		}
		return rs[i].ID < rs[j].ID
	})
}

// enrichMatch assembles a match with its catalog references. Missing
// references stay nil. Caller holds at least the read lock.
func (s *Store) enrichMatch(m model.Match) model.EnrichedMatch {
	em := model.EnrichedMatch{Match: m}
	if sp, ok := s.sports[m.SportID]; ok {
		em.Sport = &sp
	}
	if l, ok := s.leagues[m.LeagueID]; ok {
		em.League = &l
	}
	if t, ok := s.teams[m.HomeTeamID]; ok {
		em.HomeTeam = &t
	}
	if t, ok := s.teams[m.AwayTeamID]; ok {
		em.AwayTeam = &t
	}
	return em
}

// enrichVenueMatch assembles a schedule entry with its venue and match.
func (s *Store) enrichVenueMatch(vm model.VenueMatch) model.EnrichedVenueMatch {
	evm := model.EnrichedVenueMatch{VenueMatch: vm}
	if v, ok := s.venues[vm.VenueID]; ok {
		evm.Venue = &v
	}
	if m, ok := s.matches[vm.MatchID]; ok {
		em := s.enrichMatch(m)
		evm.Match = &em
	}
	return evm
}

// enrichReservation assembles a reservation with its screening branch, or a
// nil branch when the venue_match_id dangles.
func (s *Store) enrichReservation(r model.Reservation) model.EnrichedReservation {
	er := model.EnrichedReservation{Reservation: r}
	if vm, ok := s.venueMatches[r.VenueMatchID]; ok {
		evm := s.enrichVenueMatch(vm)
		er.VenueMatch = &evm
	}
	return er
}
