// Catalog entities: sports, leagues and teams. These are reference data the
// seed loads once and owners rarely touch, but the full CRUD surface exists
// for all of them. All list operations sort case-insensitively by name.
package store

import (
	"context"
	"sort"

	"github.com/matchday/matchday/internal/model"
)

// CreateSport inserts a sport, generating the id when absent and stamping
// timestamps. Missing business fields are accepted as-is.
func (s *Store) CreateSport(ctx context.Context, in model.Sport) (model.Sport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	in.ID = ensureID(in.ID)
	now := s.stamp()
	in.CreatedAt, in.UpdatedAt = now, now
	s.sports[in.ID] = in
	return in, nil
}

// SportByID fetches a sport by id.
func (s *Store) SportByID(ctx context.Context, id string) (model.Sport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sp, ok := s.sports[id]
	if !ok {
		return model.Sport{}, ErrSportNotFound
	}
	return sp, nil
}

// Sports lists all sports in case-insensitive alphabetical order.
func (s *Store) Sports(ctx context.Context) []model.Sport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Sport, 0, len(s.sports))
	for _, sp := range s.sports {
		out = append(out, sp)
	}
	sort.Slice(out, func(i, j int) bool { return lessNameFold(out[i].Name, out[j].Name) })
	return out
}

// SportUpdate lists the mutable sport fields; nil leaves a field unchanged.
type SportUpdate struct {
	Name *string
	Slug *string
}

// UpdateSport shallow-merges the set fields and bumps UpdatedAt.
func (s *Store) UpdateSport(ctx context.Context, id string, upd SportUpdate) (model.Sport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sp, ok := s.sports[id]
	if !ok {
		return model.Sport{}, ErrSportNotFound
	}
	if upd.Name != nil {
		sp.Name = *upd.Name
	}
	if upd.Slug != nil {
		sp.Slug = *upd.Slug
	}
	sp.UpdatedAt = s.stamp()
	s.sports[id] = sp
	return sp, nil
}

// DeleteSport removes a sport. Absent ids are a no-op; dependent leagues and
// teams are left in place (catalog rows are reference data, not user data).
func (s *Store) DeleteSport(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sports, id)
}

// CreateLeague inserts a league.
func (s *Store) CreateLeague(ctx context.Context, in model.League) (model.League, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	in.ID = ensureID(in.ID)
	now := s.stamp()
	in.CreatedAt, in.UpdatedAt = now, now
	s.leagues[in.ID] = in
	return in, nil
}

// LeagueByID fetches a league by id.
func (s *Store) LeagueByID(ctx context.Context, id string) (model.League, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.leagues[id]
	if !ok {
		return model.League{}, ErrLeagueNotFound
	}
	return l, nil
}

// Leagues lists leagues, optionally filtered by sport, alphabetically.
func (s *Store) Leagues(ctx context.Context, sportID string) []model.League {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.League, 0, len(s.leagues))
	for _, l := range s.leagues {
		if sportID != "" && l.SportID != sportID {
			continue
		}
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return lessNameFold(out[i].Name, out[j].Name) })
	return out
}

// LeagueUpdate lists the mutable league fields.
type LeagueUpdate struct {
	Name    *string
	Slug    *string
	LogoURL *string
}

// UpdateLeague shallow-merges the set fields and bumps UpdatedAt.
func (s *Store) UpdateLeague(ctx context.Context, id string, upd LeagueUpdate) (model.League, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.leagues[id]
	if !ok {
		return model.League{}, ErrLeagueNotFound
	}
	if upd.Name != nil {
		l.Name = *upd.Name
	}
	if upd.Slug != nil {
		l.Slug = *upd.Slug
	}
	if upd.LogoURL != nil {
		l.LogoURL = *upd.LogoURL
	}
	l.UpdatedAt = s.stamp()
	s.leagues[id] = l
	return l, nil
}

// DeleteLeague removes a league; no-op when absent.
func (s *Store) DeleteLeague(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.leagues, id)
}

// CreateTeam inserts a team.
func (s *Store) CreateTeam(ctx context.Context, in model.Team) (model.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	in.ID = ensureID(in.ID)
	now := s.stamp()
	in.CreatedAt, in.UpdatedAt = now, now
	s.teams[in.ID] = in
	return in, nil
}

// TeamByID fetches a team by id.
func (s *Store) TeamByID(ctx context.Context, id string) (model.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.teams[id]
	if !ok {
		return model.Team{}, ErrTeamNotFound
	}
	return t, nil
}

// Teams lists teams, optionally filtered by sport, alphabetically.
func (s *Store) Teams(ctx context.Context, sportID string) []model.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Team, 0, len(s.teams))
	for _, t := range s.teams {
		if sportID != "" && t.SportID != sportID {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return lessNameFold(out[i].Name, out[j].Name) })
	return out
}

// TeamUpdate lists the mutable team fields.
type TeamUpdate struct {
	Name    *string
	Slug    *string
	LogoURL *string
}

// UpdateTeam shallow-merges the set fields and bumps UpdatedAt.
func (s *Store) UpdateTeam(ctx context.Context, id string, upd TeamUpdate) (model.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.teams[id]
	if !ok {
		return model.Team{}, ErrTeamNotFound
	}
	if upd.Name != nil {
		t.Name = *upd.Name
	}
	if upd.Slug != nil {
		t.Slug = *upd.Slug
	}
	if upd.LogoURL != nil {
		t.LogoURL = *upd.LogoURL
	}
	t.UpdatedAt = s.stamp()
	s.teams[id] = t
	return t, nil
}

// DeleteTeam removes a team; no-op when absent.
func (s *Store) DeleteTeam(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.teams, id)
}
