package services

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradesim-dev/tradesim/internal/models"
)

type fakeUsers struct {
	byID map[string]models.User
	seq  int
}

func newFakeUsers() *fakeUsers { return &fakeUsers{byID: map[string]models.User{}} }

func (f *fakeUsers) Create(_ context.Context, username, passwordHash string) (models.User, error) {
	for _, u := range f.byID {
		if strings.EqualFold(u.Username, username) {
			return models.User{}, models.ErrUsernameTaken
		}
	}
	f.seq++
	u := models.User{
		ID:           "user-" + strconv.Itoa(f.seq),
		Username:     username,
		PasswordHash: passwordHash,
		Cash:         models.DefaultCash,
	}
	f.byID[u.ID] = u
	return u, nil
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (models.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return models.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (f *fakeUsers) GetByUsername(_ context.Context, username string) (models.User, error) {
	for _, u := range f.byID {
		if strings.EqualFold(u.Username, username) {
			return u, nil
		}
	}
	return models.User{}, pgx.ErrNoRows
}

func (f *fakeUsers) UpdatePassword(_ context.Context, id, passwordHash string) error {
	u, ok := f.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	u.PasswordHash = passwordHash
	f.byID[id] = u
	return nil
}

func TestRegister(t *testing.T) {
	users := newFakeUsers()
	svc := NewUserService(users)
	ctx := context.Background()

	u, err := svc.Register(ctx, "alice", "hunter22", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.True(t, u.Cash.Equal(models.DefaultCash))
	assert.NotEqual(t, "hunter22", u.PasswordHash)
}

func TestRegisterDuplicateUsernameCaseInsensitive(t *testing.T) {
	users := newFakeUsers()
	svc := NewUserService(users)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Alice", "hunter22", "hunter22")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "other-pass", "other-pass")
	assert.ErrorIs(t, err, models.ErrUsernameTaken)
	assert.Len(t, users.byID, 1)
}

func TestRegisterInvalidInput(t *testing.T) {
	users := newFakeUsers()
	svc := NewUserService(users)
	ctx := context.Background()

	_, err := svc.Register(ctx, "bob", "one", "two")
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = svc.Register(ctx, "", "pw", "pw")
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = svc.Register(ctx, "bob", "", "")
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	assert.Empty(t, users.byID, "no user may be created on invalid input")
}

func TestAuthenticate(t *testing.T) {
	users := newFakeUsers()
	svc := NewUserService(users)
	ctx := context.Background()

	_, err := svc.Register(ctx, "carol", "s3cret-pw", "s3cret-pw")
	require.NoError(t, err)

	u, err := svc.Authenticate(ctx, "carol", "s3cret-pw")
	require.NoError(t, err)
	assert.Equal(t, "carol", u.Username)

	// username matching ignores case
	_, err = svc.Authenticate(ctx, "CAROL", "s3cret-pw")
	assert.NoError(t, err)

	_, err = svc.Authenticate(ctx, "carol", "wrong")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody", "s3cret-pw")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestChangePassword(t *testing.T) {
	users := newFakeUsers()
	svc := NewUserService(users)
	ctx := context.Background()

	u, err := svc.Register(ctx, "dave", "old-pass", "old-pass")
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, u.ID, "wrong", "new-pass", "new-pass")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)

	err = svc.ChangePassword(ctx, u.ID, "old-pass", "new-pass", "different")
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	err = svc.ChangePassword(ctx, u.ID, "old-pass", "new-pass", "new-pass")
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, "dave", "new-pass")
	assert.NoError(t, err)
	_, err = svc.Authenticate(ctx, "dave", "old-pass")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}
