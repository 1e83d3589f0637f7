package store

import (
	"context"
	"strings"

	"github.com/matchday/matchday/internal/model"
)

// normalizeEmail lower-cases and trims an address so the uniqueness check
// and sign-in lookups agree on a single form.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignUp registers a user together with its profile (same id) and signs the
// new user in. It fails with ErrEmailExists when the address is taken. The
// role defaults to customer when it is not one of the known roles.
func (s *Store) SignUp(ctx context.Context, email, password, role, fullName, phone string) (model.Session, error) {
	email = normalizeEmail(email)
	if role != model.RoleVenueOwner && role != model.RoleCustomer {
		role = model.RoleCustomer
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.emailIndex[email]; taken {
		return model.Session{}, ErrEmailExists
	}

	now := s.stamp()
	u := model.User{
		ID:        newID(),
		Email:     email,
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}
	p := model.UserProfile{
		ID:        u.ID,
		Role:      role,
		FullName:  fullName,
		Phone:     phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.users[u.ID] = u
	s.profiles[p.ID] = p
	s.emailIndex[email] = u.ID

	sess, err := s.openSession(u, p)
	if err != nil {
		return model.Session{}, err
	}
	s.log.Info("user signed up", "user_id", u.ID, "role", role)
	return sess, nil
}

// SignIn authenticates by exact match on the stored clear-text password and
// replaces the current session on success.
func (s *Store) SignIn(ctx context.Context, email, password string) (model.Session, error) {
	email = normalizeEmail(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.emailIndex[email]
	if !ok {
		return model.Session{}, ErrInvalidCredentials
	}
	u := s.users[id]
	if u.Password != password {
		return model.Session{}, ErrInvalidCredentials
	}
	sess, err := s.openSession(u, s.profiles[id])
	if err != nil {
		return model.Session{}, err
	}
	s.log.Info("user signed in", "user_id", u.ID)
	return sess, nil
}

// SignOut clears the current session. Signing out twice is harmless.
func (s *Store) SignOut(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
}

// Session returns the current session, or nil when nobody is signed in.
func (s *Store) Session(ctx context.Context) *model.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return nil
	}
	sess := *s.session
	return &sess
}

// openSession mints a token and installs the session. Caller holds the lock.
func (s *Store) openSession(u model.User, p model.UserProfile) (model.Session, error) {
	token := newID()
	if s.issuer != nil {
		t, err := s.issuer.Issue(u.ID, p.Role)
		if err != nil {
			return model.Session{}, err
		}
		token = t
	}
	sess := model.Session{User: u, Profile: p, Token: token}
	s.session = &sess
	return sess, nil
}

// UserByID fetches a user by id.
func (s *Store) UserByID(ctx context.Context, id string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return model.User{}, ErrUserNotFound
	}
	return u, nil
}

// UserByEmail fetches a user by normalized email.
func (s *Store) UserByEmail(ctx context.Context, email string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.emailIndex[normalizeEmail(email)]
	if !ok {
		return model.User{}, ErrUserNotFound
	}
	return s.users[id], nil
}

// ProfileByID fetches a user profile by id (equal to the user id).
func (s *Store) ProfileByID(ctx context.Context, id string) (model.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[id]
	if !ok {
		return model.UserProfile{}, ErrProfileNotFound
	}
	return p, nil
}

// ProfileUpdate names the profile fields that may change. Nil means leave
// unchanged.
type ProfileUpdate struct {
	FullName *string
	Phone    *string
}

// UpdateProfile shallow-merges the set fields and bumps UpdatedAt.
func (s *Store) UpdateProfile(ctx context.Context, id string, upd ProfileUpdate) (model.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[id]
	if !ok {
		return model.UserProfile{}, ErrProfileNotFound
	}
	if upd.FullName != nil {
		p.FullName = *upd.FullName
	}
	if upd.Phone != nil {
		p.Phone = *upd.Phone
	}
	p.UpdatedAt = s.stamp()
	s.profiles[id] = p
	return p, nil
}
