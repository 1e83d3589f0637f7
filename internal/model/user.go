package model

// Roles a user profile can carry. Venue owners register establishments and
// manage their broadcast schedule; customers browse venues and book seats.
const (
	RoleCustomer   = "customer"
	RoleVenueOwner = "venue_owner"
)

// User is an account record. Passwords are stored in clear text because the
// whole persistence layer is a demo stand-in for a hosted backend; see the
// project non-goals before changing this. Timestamps are RFC-3339 UTC
// strings: CreatedAt is set once, UpdatedAt bumps on every change.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Password  string `json:"-"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// UserProfile carries the public-facing part of an account. It shares its ID
// with the owning User (1–1).
type UserProfile struct {
	ID        string `json:"id"`
	Role      string `json:"role"`
	FullName  string `json:"full_name"`
	Phone     string `json:"phone"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// Session is the store-wide "currently signed in" state. Token is the access
// token issued at sign-in; handlers hand it back to the client.
type Session struct {
	User    User        `json:"user"`
	Profile UserProfile `json:"profile"`
	Token   string      `json:"token"`
}
