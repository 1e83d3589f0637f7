package model

// Venue is a bar or restaurant that screens matches. Each venue belongs to a
// single owner (a user with the venue_owner role).
//
// Fields:
//  ID         – opaque identifier assigned by the store.
//  OwnerID    – id of the owning user profile.
//  Name       – display name of the establishment.
//  Address    – street address.
//  City       – city name.
//  PostalCode – postal code.
//  Capacity   – total seats the venue can hold across all screenings.
//  IsActive   – inactive venues are hidden from public browsing.
type Venue struct {
	ID          string `json:"id"`
	OwnerID     string `json:"owner_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
	City        string `json:"city"`
	PostalCode  string `json:"postal_code"`
	Capacity    int    `json:"capacity"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// VenueMatch schedules a specific Match at a specific Venue. It carries its
// own seat inventory and pricing, independent of the venue capacity.
type VenueMatch struct {
	ID                string `json:"id"`
	VenueID           string `json:"venue_id"`
	MatchID           string `json:"match_id"`
	AvailableSeats    int    `json:"available_seats"`
	PricePerSeatCents int64  `json:"price_per_seat_cents"`
	CreatedAt         string `json:"created_at"`
	UpdatedAt         string `json:"updated_at"`
}
