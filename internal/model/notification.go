package model

// Notification types written by the reservation event pipeline.
const (
	NotificationReservationCreated   = "reservation_created"
	NotificationReservationConfirmed = "reservation_confirmed"
	NotificationReservationDeclined  = "reservation_declined"
	NotificationReservationCancelled = "reservation_cancelled"
)

// Notification is an in-app message for a single user. Delivery beyond the
// store (push, email) is out of scope; these records are the product surface.
type Notification struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
