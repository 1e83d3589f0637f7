package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchday/matchday/internal/model"
)

func TestNotificationsForUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.CreateNotification(ctx, model.Notification{UserID: "u1", Type: model.NotificationReservationCreated, Title: "New reservation"})
	require.NoError(t, err)
	second, err := s.CreateNotification(ctx, model.Notification{UserID: "u1", Type: model.NotificationReservationCancelled, Title: "Cancelled"})
	require.NoError(t, err)
	_, err = s.CreateNotification(ctx, model.Notification{UserID: "u2", Type: model.NotificationReservationCreated, Title: "Other user"})
	require.NoError(t, err)

	got := s.NotificationsForUser(ctx, "u1", false)
	require.Len(t, got, 2)
	assert.Equal(t, second.ID, got[0].ID, "newest first")
	assert.Equal(t, first.ID, got[1].ID)
}

func TestMarkNotificationRead(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	n, err := s.CreateNotification(ctx, model.Notification{UserID: "u1", Title: "Hello"})
	require.NoError(t, err)
	require.False(t, n.IsRead)

	got, err := s.MarkNotificationRead(ctx, n.ID)
	require.NoError(t, err)
	assert.True(t, got.IsRead)

	// Read entries disappear from the unread view but not the full view.
	assert.Empty(t, s.NotificationsForUser(ctx, "u1", true))
	assert.Len(t, s.NotificationsForUser(ctx, "u1", false), 1)

	_, err = s.MarkNotificationRead(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestMarkAllNotificationsRead(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := s.CreateNotification(ctx, model.Notification{UserID: "u1", Title: "Unread"})
		require.NoError(t, err)
	}
	n, err := s.CreateNotification(ctx, model.Notification{UserID: "u1", Title: "Already read"})
	require.NoError(t, err)
	_, err = s.MarkNotificationRead(ctx, n.ID)
	require.NoError(t, err)
	_, err = s.CreateNotification(ctx, model.Notification{UserID: "u2", Title: "Someone else"})
	require.NoError(t, err)

	assert.Equal(t, 3, s.MarkAllNotificationsRead(ctx, "u1"))
	assert.Empty(t, s.NotificationsForUser(ctx, "u1", true))

	// Nothing left to flip on the second call.
	assert.Equal(t, 0, s.MarkAllNotificationsRead(ctx, "u1"))
}
