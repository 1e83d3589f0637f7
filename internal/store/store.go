// Package store holds all application data in process memory and answers
// CRUD plus simple relational queries. It is the single persistence path of
// the service: one instance is constructed at startup, seeded explicitly,
// injected into handlers, and lives for the process lifetime. Records are
// kept in per-entity maps keyed by opaque string ids; list operations are
// linear scans with deterministic sort orders.
package store

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/matchday/matchday/internal/model"
)

// TokenIssuer mints the access token placed on a session at sign-in. The
// server wires a JWT issuer; tests may leave it nil and get opaque tokens.
type TokenIssuer interface {
	Issue(userID, role string) (string, error)
}

// Store is an in-memory entity store. Every exported method takes the lock
// for its whole duration, so each operation is atomic from the caller's
// perspective. There are no transactions across operations.
type Store struct {
	log    *slog.Logger
	issuer TokenIssuer

	mu            sync.RWMutex
	users         map[string]model.User
	profiles      map[string]model.UserProfile
	emailIndex    map[string]string // normalized email -> user id
	sports        map[string]model.Sport
	leagues       map[string]model.League
	teams         map[string]model.Team
	matches       map[string]model.Match
	venues        map[string]model.Venue
	venueMatches  map[string]model.VenueMatch
	reservations  map[string]model.Reservation
	notifications map[string]model.Notification
	session       *model.Session
	seeded        bool
	lastStamp     time.Time
}

// New returns an empty store. It does not seed: callers that want the
// demonstration data set must call Seed before serving, so nothing can
// observe a half-seeded store. logger may be nil; issuer may be nil.
func New(logger *slog.Logger, issuer TokenIssuer) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		log:           logger,
		issuer:        issuer,
		users:         map[string]model.User{},
		profiles:      map[string]model.UserProfile{},
		emailIndex:    map[string]string{},
		sports:        map[string]model.Sport{},
		leagues:       map[string]model.League{},
		teams:         map[string]model.Team{},
		matches:       map[string]model.Match{},
		venues:        map[string]model.Venue{},
		venueMatches:  map[string]model.VenueMatch{},
		reservations:  map[string]model.Reservation{},
		notifications: map[string]model.Notification{},
	}
}

// newID returns a fresh opaque identifier.
func newID() string { return uuid.NewString() }

// stampLayout is fixed-width ISO-8601 with microseconds, so comparing two
// stamps as plain strings equals comparing them as instants.
const stampLayout = "2006-01-02T15:04:05.000000Z"

// NowStamp renders the current UTC time in the record stamp layout. Callers
// use it to build cutoffs comparable with stored match dates.
func NowStamp() string { return time.Now().UTC().Format(stampLayout) }

// stamp returns the current UTC time as the string stored on every record.
// Stamps are strictly increasing: two records created back to back never
// carry the same value, which keeps created_at orderings total. The clock is
// truncated to the stamp resolution before the comparison so that two calls
// inside the same microsecond still advance. Callers hold the write lock.
func (s *Store) stamp() string {
	now := time.Now().UTC().Truncate(time.Microsecond)
	if !now.After(s.lastStamp) {
		now = s.lastStamp.Add(time.Microsecond)
	}
	s.lastStamp = now
	return now.Format(stampLayout)
}

// ensureID fills id when the caller did not provide one.
func ensureID(id string) string {
	if id == "" {
		return newID()
	}
	return id
}

// lessNameFold reports whether a sorts before b, case-insensitively.
func lessNameFold(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la != lb {
		return la < lb
	}
	return a < b
}
