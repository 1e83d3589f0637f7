// Package queue defines message payloads exchanged over the message broker
// and the consumer that turns them into in-app notifications.
package queue

import (
	"fmt"

	"github.com/matchday/matchday/internal/model"
)

// ReservationQueueName is the durable queue carrying reservation lifecycle
// events.
const ReservationQueueName = "reservation.events"

// ReservationEvent is published whenever a reservation is created or changes
// status. It carries enough denormalized context for consumers to build a
// notification without querying the store.
type ReservationEvent struct {
	Type          string `json:"type"` // a model.Notification* constant
	ReservationID string `json:"reservation_id"`
	VenueMatchID  string `json:"venue_match_id"`
	VenueID       string `json:"venue_id"`
	VenueName     string `json:"venue_name"`
	OwnerID       string `json:"owner_id"`
	CustomerID    string `json:"customer_id"`
	CustomerName  string `json:"customer_name"`
	MatchLabel    string `json:"match_label"`
	PartySize     int    `json:"party_size"`
	OccurredAt    string `json:"occurred_at"`
}

// Notification renders the event as an in-app notification for the
// interested user: the venue owner for created/cancelled bookings, the
// customer for owner decisions. ok is false when there is nobody to notify
// (walk-in reservations have no customer account).
func (ev ReservationEvent) Notification() (model.Notification, bool) {
	who := ev.CustomerName
	if who == "" {
		who = "A guest"
	}
	var n model.Notification
	switch ev.Type {
	case model.NotificationReservationCreated:
		n = model.Notification{
			UserID:  ev.OwnerID,
			Title:   "New reservation",
			Message: fmt.Sprintf("%s requested %d seats for %s at %s", who, ev.PartySize, ev.MatchLabel, ev.VenueName),
		}
	case model.NotificationReservationCancelled:
		n = model.Notification{
			UserID:  ev.OwnerID,
			Title:   "Reservation cancelled",
			Message: fmt.Sprintf("%s cancelled a reservation for %s at %s", who, ev.MatchLabel, ev.VenueName),
		}
	case model.NotificationReservationConfirmed:
		n = model.Notification{
			UserID:  ev.CustomerID,
			Title:   "Reservation confirmed",
			Message: fmt.Sprintf("Your reservation for %s at %s is confirmed", ev.MatchLabel, ev.VenueName),
		}
	case model.NotificationReservationDeclined:
		n = model.Notification{
			UserID:  ev.CustomerID,
			Title:   "Reservation declined",
			Message: fmt.Sprintf("Your reservation for %s at %s was declined", ev.MatchLabel, ev.VenueName),
		}
	default:
		return model.Notification{}, false
	}
	if n.UserID == "" {
		return model.Notification{}, false
	}
	n.Type = ev.Type
	return n, true
}
