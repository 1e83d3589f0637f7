package store

import (
	"context"
	"sort"

	"github.com/matchday/matchday/internal/model"
)

// CreateMatch inserts a fixture. An empty status defaults to scheduled.
func (s *Store) CreateMatch(ctx context.Context, in model.Match) (model.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	in.ID = ensureID(in.ID)
	if in.Status == "" {
		in.Status = model.MatchScheduled
	}
	now := s.stamp()
	in.CreatedAt, in.UpdatedAt = now, now
	s.matches[in.ID] = in
	return in, nil
}

// MatchByID fetches a match by id.
func (s *Store) MatchByID(ctx context.Context, id string) (model.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.matches[id]
	if !ok {
		return model.Match{}, ErrMatchNotFound
	}
	return m, nil
}

// MatchDetails fetches a match enriched with its sport, league and teams.
func (s *Store) MatchDetails(ctx context.Context, id string) (model.EnrichedMatch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.matches[id]
	if !ok {
		return model.EnrichedMatch{}, ErrMatchNotFound
	}
	return s.enrichMatch(m), nil
}

// MatchFilter narrows a match listing. Empty fields match everything.
type MatchFilter struct {
	SportID  string
	LeagueID string
	Status   string
	TeamID   string // matches where the team plays home or away
}

// Matches lists fixtures matching the filter, ascending by match date.
func (s *Store) Matches(ctx context.Context, f MatchFilter) []model.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Match, 0, len(s.matches))
	for _, m := range s.matches {
		if f.SportID != "" && m.SportID != f.SportID {
			continue
		}
		if f.LeagueID != "" && m.LeagueID != f.LeagueID {
			continue
		}
		if f.Status != "" && m.Status != f.Status {
			continue
		}
		if f.TeamID != "" && m.HomeTeamID != f.TeamID && m.AwayTeamID != f.TeamID {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MatchDate != out[j].MatchDate {
			return out[i].MatchDate < out[j].MatchDate
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// MatchUpdate lists the mutable match fields; nil leaves a field unchanged.
type MatchUpdate struct {
	MatchDate *string
	Status    *string
	HomeScore *int
	AwayScore *int
}

// UpdateMatch shallow-merges the set fields and bumps UpdatedAt.
func (s *Store) UpdateMatch(ctx context.Context, id string, upd MatchUpdate) (model.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.matches[id]
	if !ok {
		return model.Match{}, ErrMatchNotFound
	}
	if upd.MatchDate != nil {
		m.MatchDate = *upd.MatchDate
	}
	if upd.Status != nil {
		m.Status = *upd.Status
	}
	if upd.HomeScore != nil {
		m.HomeScore = upd.HomeScore
	}
	if upd.AwayScore != nil {
		m.AwayScore = upd.AwayScore
	}
	m.UpdatedAt = s.stamp()
	s.matches[id] = m
	return m, nil
}

// DeleteMatch removes a fixture and cascades to its venue schedule entries
// and their reservations, so no dangling screenings survive. No-op when the
// id is absent.
func (s *Store) DeleteMatch(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.matches[id]; !ok {
		return
	}
	for vmID, vm := range s.venueMatches {
		if vm.MatchID != id {
			continue
		}
		s.dropReservationsFor(vmID)
		delete(s.venueMatches, vmID)
	}
	delete(s.matches, id)
}
