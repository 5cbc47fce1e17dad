package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"coursehub/errs"
	"coursehub/models"
	"coursehub/testutil"
)

func newStore(t *testing.T) *Store {
	return New(testutil.NewDB(t), bcrypt.MinCost)
}

func TestRegisterAndAuthenticate(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	user, err := s.Register(ctx, " alice ", "alice@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, models.TierFree, user.SubscriptionTier)
	assert.False(t, user.HasUnlimitedAccess)
	assert.NotEqual(t, "s3cret-pass", user.Password)

	got, err := s.Authenticate(ctx, "alice", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = s.Authenticate(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = s.Authenticate(ctx, "nobody", "s3cret-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	_, err := s.Register(ctx, "alice", "a@example.com", "s3cret-pass")
	require.NoError(t, err)
	_, err = s.Register(ctx, "alice", "b@example.com", "s3cret-pass")
	assert.ErrorIs(t, err, ErrUsernameTaken)
	assert.Equal(t, errs.KindConflict, errs.KindOf(err))
}

func TestUpdateProfile(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	alice, err := s.Register(ctx, "alice", "a@example.com", "s3cret-pass")
	require.NoError(t, err)
	_, err = s.Register(ctx, "bob", "b@example.com", "s3cret-pass")
	require.NoError(t, err)

	taken := "bob"
	_, err = s.UpdateProfile(ctx, alice.ID, &taken, nil)
	assert.ErrorIs(t, err, ErrUsernameTaken)

	same := "alice"
	email := "new@example.com"
	updated, err := s.UpdateProfile(ctx, alice.ID, &same, &email)
	require.NoError(t, err)
	assert.Equal(t, "alice", updated.Username)
	assert.Equal(t, "new@example.com", updated.Email)
}

func TestChangePassword(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	alice, err := s.Register(ctx, "alice", "a@example.com", "s3cret-pass")
	require.NoError(t, err)

	assert.ErrorIs(t, s.ChangePassword(ctx, alice.ID, "wrong", "another-pass"), ErrWrongPassword)
	require.NoError(t, s.ChangePassword(ctx, alice.ID, "s3cret-pass", "another-pass"))

	_, err = s.Authenticate(ctx, "alice", "another-pass")
	assert.NoError(t, err)
}

func TestSubscriptionChanges(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	alice, err := s.Register(ctx, "alice", "a@example.com", "s3cret-pass")
	require.NoError(t, err)

	_, err = s.UpdateSubscription(ctx, alice.ID, "gold", false)
	assert.ErrorIs(t, err, ErrInvalidTier)

	updated, err := s.UpdateSubscription(ctx, alice.ID, models.TierPremium, true)
	require.NoError(t, err)
	assert.Equal(t, models.TierPremium, updated.SubscriptionTier)
	assert.True(t, updated.HasUnlimitedAccess)

	updated, err = s.Upgrade(ctx, alice.ID, models.TierStandard)
	require.NoError(t, err)
	assert.Equal(t, models.TierStandard, updated.SubscriptionTier)
	assert.False(t, updated.HasUnlimitedAccess)

	updated, err = s.Upgrade(ctx, alice.ID, models.TierUnlimited)
	require.NoError(t, err)
	assert.True(t, updated.HasUnlimitedAccess)

	_, err = s.Upgrade(ctx, 999, models.TierStandard)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
