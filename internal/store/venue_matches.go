package store

import (
	"context"
	"sort"

	"github.com/matchday/matchday/internal/model"
)

// CreateVenueMatch schedules a match at a venue with its own seat inventory
// and pricing.
func (s *Store) CreateVenueMatch(ctx context.Context, in model.VenueMatch) (model.VenueMatch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	in.ID = ensureID(in.ID)
	now := s.stamp()
	in.CreatedAt, in.UpdatedAt = now, now
	s.venueMatches[in.ID] = in
	return in, nil
}

// VenueMatchByID fetches a schedule entry by id.
func (s *Store) VenueMatchByID(ctx context.Context, id string) (model.VenueMatch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	vm, ok := s.venueMatches[id]
	if !ok {
		return model.VenueMatch{}, ErrVenueMatchNotFound
	}
	return vm, nil
}

// VenueMatchesByVenue lists a venue's schedule, ascending by match date.
// Entries whose match no longer exists sort last.
func (s *Store) VenueMatchesByVenue(ctx context.Context, venueID string) []model.VenueMatch {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.VenueMatch, 0, 4)
	for _, vm := range s.venueMatches {
		if vm.VenueID == venueID {
			out = append(out, vm)
		}
	}
	s.sortByMatchDate(out)
	return out
}

// VenueMatchesByMatch lists every venue screening a given match.
func (s *Store) VenueMatchesByMatch(ctx context.Context, matchID string) []model.VenueMatch {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.VenueMatch, 0, 4)
	for _, vm := range s.venueMatches {
		if vm.MatchID == matchID {
			out = append(out, vm)
		}
	}
	s.sortByMatchDate(out)
	return out
}

// ScreeningsForMatch lists every venue screening a match, enriched, so
// customers can pick where to watch.
func (s *Store) ScreeningsForMatch(ctx context.Context, matchID string) []model.EnrichedVenueMatch {
	s.mu.RLock()
	defer s.mu.RUnlock()
	vms := make([]model.VenueMatch, 0, 4)
	for _, vm := range s.venueMatches {
		if vm.MatchID == matchID {
			vms = append(vms, vm)
		}
	}
	s.sortByMatchDate(vms)
	out := make([]model.EnrichedVenueMatch, 0, len(vms))
	for _, vm := range vms {
		out = append(out, s.enrichVenueMatch(vm))
	}
	return out
}

// sortByMatchDate orders schedule entries by the date of the match they
// reference. Caller holds at least the read lock.
func (s *Store) sortByMatchDate(vms []model.VenueMatch) {
	date := func(vm model.VenueMatch) string {
		if m, ok := s.matches[vm.MatchID]; ok {
			return m.MatchDate
		}
		return "\xff" // dangling reference, sort after everything real
	}
	sort.Slice(vms, func(i, j int) bool {
		di, dj := date(vms[i]), date(vms[j])
		if di != dj {
			return di < dj
		}
		return vms[i].ID < vms[j].ID
	})
}

// VenueMatchUpdate lists the mutable schedule fields.
type VenueMatchUpdate struct {
	AvailableSeats    *int
	PricePerSeatCents *int64
}

// UpdateVenueMatch shallow-merges the set fields and bumps UpdatedAt.
func (s *Store) UpdateVenueMatch(ctx context.Context, id string, upd VenueMatchUpdate) (model.VenueMatch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	vm, ok := s.venueMatches[id]
	if !ok {
		return model.VenueMatch{}, ErrVenueMatchNotFound
	}
	if upd.AvailableSeats != nil {
		vm.AvailableSeats = *upd.AvailableSeats
	}
	if upd.PricePerSeatCents != nil {
		vm.PricePerSeatCents = *upd.PricePerSeatCents
	}
	vm.UpdatedAt = s.stamp()
	s.venueMatches[id] = vm
	return vm, nil
}

// DeleteVenueMatch removes a schedule entry and cascades to its
// reservations. No-op when absent.
func (s *Store) DeleteVenueMatch(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.venueMatches[id]; !ok {
		return
	}
	s.dropReservationsFor(id)
	delete(s.venueMatches, id)
}

// VenueWithMatches assembles a venue and its enriched schedule in one call.
func (s *Store) VenueWithMatches(ctx context.Context, venueID string) (model.VenueWithMatches, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.venues[venueID]
	if !ok {
		return model.VenueWithMatches{}, ErrVenueNotFound
	}
	vms := make([]model.VenueMatch, 0, 4)
	for _, vm := range s.venueMatches {
		if vm.VenueID == venueID {
			vms = append(vms, vm)
		}
	}
	s.sortByMatchDate(vms)
	out := model.VenueWithMatches{Venue: v, Matches: make([]model.EnrichedVenueMatch, 0, len(vms))}
	for _, vm := range vms {
		out.Matches = append(out.Matches, s.enrichVenueMatch(vm))
	}
	return out, nil
}
