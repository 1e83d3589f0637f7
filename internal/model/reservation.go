package model

// Reservation lifecycle states.
const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationDeclined  = "declined"
	ReservationCancelled = "cancelled"
	ReservationCompleted = "completed"
)

// Reservation is a customer's request to attend a VenueMatch. CustomerID is
// empty for walk-in bookings taken at the desk; the contact fields are then
// the only way to reach the guest.
//
// Fields:
//  ID            – opaque identifier assigned by the store.
//  VenueMatchID  – the screening being booked.
//  CustomerID    – booking user's id, empty for walk-ins.
//  CustomerName  – contact name for the party.
//  CustomerEmail – contact email.
//  CustomerPhone – contact phone number.
//  PartySize     – number of seats requested.
//  Status        – one of the Reservation* constants above.
type Reservation struct {
	ID            string `json:"id"`
	VenueMatchID  string `json:"venue_match_id"`
	CustomerID    string `json:"customer_id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
	PartySize     int    `json:"party_size"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}
