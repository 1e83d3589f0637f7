package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchday/matchday/internal/model"
)

func TestSignUpCreatesUserAndProfile(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	sess, err := s.SignUp(ctx, "Olivia@Example.com", "secret", model.RoleVenueOwner, "Olivia Owner", "+31 6 1234")
	require.NoError(t, err)

	assert.Equal(t, "olivia@example.com", sess.User.Email, "email must be normalized")
	assert.Equal(t, sess.User.ID, sess.Profile.ID, "profile shares the user id")
	assert.Equal(t, model.RoleVenueOwner, sess.Profile.Role)
	assert.NotEmpty(t, sess.Token)

	u, err := s.UserByEmail(ctx, "OLIVIA@example.com")
	require.NoError(t, err)
	assert.Equal(t, sess.User.ID, u.ID)
}

func TestSignUpDuplicateEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.SignUp(ctx, "fan@example.com", "pw", model.RoleCustomer, "Fan", "")
	require.NoError(t, err)

	_, err = s.SignUp(ctx, "FAN@example.com", "other", model.RoleCustomer, "Other", "")
	assert.ErrorIs(t, err, ErrEmailExists, "uniqueness check is case-insensitive")
}

func TestSignUpUnknownRoleDefaultsToCustomer(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	sess, err := s.SignUp(ctx, "a@example.com", "pw", "superadmin", "A", "")
	require.NoError(t, err)
	assert.Equal(t, model.RoleCustomer, sess.Profile.Role)
}

func TestSignInExactPasswordMatch(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.SignUp(ctx, "fan@example.com", "secret", model.RoleCustomer, "Fan", "")
	require.NoError(t, err)
	s.SignOut(ctx)

	_, err = s.SignIn(ctx, "fan@example.com", "Secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials, "password comparison is case-sensitive")

	_, err = s.SignIn(ctx, "nobody@example.com", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	sess, err := s.SignIn(ctx, "fan@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "fan@example.com", sess.User.Email)
}

func TestSessionLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	assert.Nil(t, s.Session(ctx))

	sess, err := s.SignUp(ctx, "fan@example.com", "pw", model.RoleCustomer, "Fan", "")
	require.NoError(t, err)

	cur := s.Session(ctx)
	require.NotNil(t, cur)
	assert.Equal(t, sess.User.ID, cur.User.ID)

	s.SignOut(ctx)
	assert.Nil(t, s.Session(ctx))

	// Signing out twice is harmless.
	s.SignOut(ctx)
	assert.Nil(t, s.Session(ctx))
}

func TestSignInReplacesSession(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.SignUp(ctx, "first@example.com", "pw", model.RoleCustomer, "First", "")
	require.NoError(t, err)
	second, err := s.SignUp(ctx, "second@example.com", "pw", model.RoleCustomer, "Second", "")
	require.NoError(t, err)

	cur := s.Session(ctx)
	require.NotNil(t, cur)
	assert.Equal(t, second.User.ID, cur.User.ID, "last sign-in wins")
}

func TestUpdateProfileMerges(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	sess, err := s.SignUp(ctx, "fan@example.com", "pw", model.RoleCustomer, "Fan", "+31 6 1111")
	require.NoError(t, err)

	name := "Frank Fan"
	p, err := s.UpdateProfile(ctx, sess.User.ID, ProfileUpdate{FullName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Frank Fan", p.FullName)
	assert.Equal(t, "+31 6 1111", p.Phone, "unset field must survive")

	_, err = s.UpdateProfile(ctx, "missing", ProfileUpdate{FullName: &name})
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

type staticIssuer struct{ token string }

func (i staticIssuer) Issue(userID, role string) (string, error) { return i.token, nil }

func TestSignUpUsesConfiguredIssuer(t *testing.T) {
	s := New(nil, staticIssuer{token: "issued-token"})
	ctx := context.Background()

	sess, err := s.SignUp(ctx, "fan@example.com", "pw", model.RoleCustomer, "Fan", "")
	require.NoError(t, err)
	assert.Equal(t, "issued-token", sess.Token)
}
