// Sentinel errors shared by all store operations. Handlers translate these
// into HTTP statuses: not-found errors become 404, ErrEmailExists 409 and
// ErrInvalidCredentials 401. Update operations are the only CRUD calls that
// can fail with not-found; deletes are idempotent no-ops on absent ids.
package store

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrProfileNotFound      = errors.New("profile not found")
	ErrSportNotFound        = errors.New("sport not found")
	ErrLeagueNotFound       = errors.New("league not found")
	ErrTeamNotFound         = errors.New("team not found")
	ErrMatchNotFound        = errors.New("match not found")
	ErrVenueNotFound        = errors.New("venue not found")
	ErrVenueMatchNotFound   = errors.New("venue match not found")
	ErrReservationNotFound  = errors.New("reservation not found")
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrEmailExists is returned by SignUp when the email is already
	// registered.
	ErrEmailExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned by SignIn on any credential
	// mismatch; it deliberately does not distinguish unknown email from
	// wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
