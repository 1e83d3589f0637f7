package store

import (
	"context"
	"sort"

	"github.com/matchday/matchday/internal/model"
)

// CreateVenue inserts a venue. New venues are active unless the caller says
// otherwise via the input record.
func (s *Store) CreateVenue(ctx context.Context, in model.Venue) (model.Venue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	in.ID = ensureID(in.ID)
	now := s.stamp()
	in.CreatedAt, in.UpdatedAt = now, now
	s.venues[in.ID] = in
	return in, nil
}

// VenueByID fetches a venue by id.
func (s *Store) VenueByID(ctx context.Context, id string) (model.Venue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.venues[id]
	if !ok {
		return model.Venue{}, ErrVenueNotFound
	}
	return v, nil
}

// VenuesByOwner lists a user's venues, most recently created first.
func (s *Store) VenuesByOwner(ctx context.Context, ownerID string) []model.Venue {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Venue, 0, 4)
	for _, v := range s.venues {
		if v.OwnerID == ownerID {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt != out[j].CreatedAt {
			return out[i].CreatedAt > out[j].CreatedAt
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// ActiveVenues lists every active venue alphabetically for public browsing.
func (s *Store) ActiveVenues(ctx context.Context) []model.Venue {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Venue, 0, len(s.venues))
	for _, v := range s.venues {
		if v.IsActive {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return lessNameFold(out[i].Name, out[j].Name) })
	return out
}

// VenueUpdate lists the mutable venue fields; nil leaves a field unchanged.
type VenueUpdate struct {
	Name        *string
	Description *string
	Address     *string
	City        *string
	PostalCode  *string
	Capacity    *int
	IsActive    *bool
}

// UpdateVenue shallow-merges the set fields and bumps UpdatedAt.
func (s *Store) UpdateVenue(ctx context.Context, id string, upd VenueUpdate) (model.Venue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.venues[id]
	if !ok {
		return model.Venue{}, ErrVenueNotFound
	}
	if upd.Name != nil {
		v.Name = *upd.Name
	}
	if upd.Description != nil {
		v.Description = *upd.Description
	}
	if upd.Address != nil {
		v.Address = *upd.Address
	}
	if upd.City != nil {
		v.City = *upd.City
	}
	if upd.PostalCode != nil {
		v.PostalCode = *upd.PostalCode
	}
	if upd.Capacity != nil {
		v.Capacity = *upd.Capacity
	}
	if upd.IsActive != nil {
		v.IsActive = *upd.IsActive
	}
	v.UpdatedAt = s.stamp()
	s.venues[id] = v
	return v, nil
}

// DeleteVenue removes a venue and cascades to its schedule entries and their
// reservations. Deleting a venue twice is a no-op the second time.
func (s *Store) DeleteVenue(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.venues[id]; !ok {
		return
	}
	for vmID, vm := range s.venueMatches {
		if vm.VenueID != id {
			continue
		}
		s.dropReservationsFor(vmID)
		delete(s.venueMatches, vmID)
	}
	delete(s.venues, id)
	s.log.Info("venue deleted", "venue_id", id)
}
