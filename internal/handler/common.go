// Package handler exposes the HTTP surface over the entity store: public
// browsing, authentication, owner management and customer booking endpoints.
package handler

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/matchday/matchday/internal/model"
	"github.com/matchday/matchday/internal/queue"
	"github.com/matchday/matchday/internal/service"
	"github.com/matchday/matchday/internal/store"
)

// getUserID extracts the authenticated user id placed in the context by the
// JWT middleware.
func getUserID(c echo.Context) (string, error) {
	if v, ok := c.Get("user_id").(string); ok && v != "" {
		return v, nil
	}
	return "", errors.New("no user_id in context")
}

// reservationEvent assembles the denormalized event payload for a
// reservation lifecycle change. Missing links are left empty; the event is
// still useful with partial context.
func reservationEvent(ctx context.Context, st *store.Store, typ string, r model.Reservation) queue.ReservationEvent {
	ev := queue.ReservationEvent{
		Type:          typ,
		ReservationID: r.ID,
		VenueMatchID:  r.VenueMatchID,
		CustomerID:    r.CustomerID,
		CustomerName:  r.CustomerName,
		PartySize:     r.PartySize,
		OccurredAt:    store.NowStamp(),
	}
	vm, err := st.VenueMatchByID(ctx, r.VenueMatchID)
	if err != nil {
		return ev
	}
	ev.VenueMatchID = vm.ID
	if v, err := st.VenueByID(ctx, vm.VenueID); err == nil {
		ev.VenueID = v.ID
		ev.VenueName = v.Name
		ev.OwnerID = v.OwnerID
	}
	if em, err := st.MatchDetails(ctx, vm.MatchID); err == nil {
		ev.MatchLabel = matchLabel(em)
	}
	return ev
}

// matchLabel renders a human-readable fixture name, falling back to the raw
// id when team branches are missing.
func matchLabel(em model.EnrichedMatch) string {
	if em.HomeTeam != nil && em.AwayTeam != nil {
		return em.HomeTeam.Name + " vs " + em.AwayTeam.Name
	}
	return em.ID
}

// emitReservationEvent publishes the event and, when the broker is absent or
// failing, writes the notification synchronously so the in-app surface never
// goes dark. The request has already succeeded by the time this runs;
// failures here are logged by the publisher and swallowed.
func emitReservationEvent(ctx context.Context, st *store.Store, pub service.Publisher, typ string, r model.Reservation) {
	ev := reservationEvent(ctx, st, typ, r)
	if err := pub.Publish(ctx, ev); err != nil {
		if n, ok := ev.Notification(); ok {
			_, _ = st.CreateNotification(ctx, n)
		}
	}
}
