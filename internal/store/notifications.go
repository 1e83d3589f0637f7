package store

import (
	"context"
	"sort"

	"github.com/matchday/matchday/internal/model"
)

// CreateNotification inserts an in-app notification for a user.
func (s *Store) CreateNotification(ctx context.Context, in model.Notification) (model.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	in.ID = ensureID(in.ID)
	now := s.stamp()
	in.CreatedAt, in.UpdatedAt = now, now
	s.notifications[in.ID] = in
	return in, nil
}

// NotificationByID fetches a notification by id.
func (s *Store) NotificationByID(ctx context.Context, id string) (model.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.notifications[id]
	if !ok {
		return model.Notification{}, ErrNotificationNotFound
	}
	return n, nil
}

// NotificationsForUser lists a user's notifications, newest first. When
// unreadOnly is set, read entries are skipped.
func (s *Store) NotificationsForUser(ctx context.Context, userID string, unreadOnly bool) []model.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Notification, 0, 4)
	for _, n := range s.notifications {
		if n.UserID != userID {
			continue
		}
		if unreadOnly && n.IsRead {
			continue
		}
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt != out[j].CreatedAt {
			return out[i].CreatedAt > out[j].CreatedAt
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// MarkNotificationRead flags a single notification as read.
func (s *Store) MarkNotificationRead(ctx context.Context, id string) (model.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.notifications[id]
	if !ok {
		return model.Notification{}, ErrNotificationNotFound
	}
	n.IsRead = true
	n.UpdatedAt = s.stamp()
	s.notifications[id] = n
	return n, nil
}

// MarkAllNotificationsRead flags every unread notification of a user and
// returns how many were flipped.
func (s *Store) MarkAllNotificationsRead(ctx context.Context, userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for id, n := range s.notifications {
		if n.UserID != userID || n.IsRead {
			continue
		}
		n.IsRead = true
		n.UpdatedAt = s.stamp()
		s.notifications[id] = n
		count++
	}
	return count
}

// DeleteNotification removes a notification; no-op when absent.
func (s *Store) DeleteNotification(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.notifications, id)
}
