package server

import (
	"context"
	"strings"
	"testing"

	"github.com/alexkim/job-recommender/internal/config"
	"github.com/alexkim/job-recommender/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserStore is an in-memory UserStore for unit tests.
type fakeUserStore struct {
	nextID int64
	users  map[string]*db.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{nextID: 1, users: make(map[string]*db.User)}
}

func (f *fakeUserStore) CreateUser(_ context.Context, username, passwordHash string) (int64, error) {
	if _, exists := f.users[username]; exists {
		return 0, &db.ErrUsernameTaken{Username: username}
	}
	id := f.nextID
	f.nextID++
	f.users[username] = &db.User{ID: id, Username: username, PasswordHash: passwordHash}
	return id, nil
}

func (f *fakeUserStore) GetUserByUsername(_ context.Context, username string) (*db.User, error) {
	return f.users[username], nil
}

func testPasswordConfig() *config.PasswordConfig {
	return &config.PasswordConfig{BcryptCost: 10} // minimum cost keeps tests fast
}

func TestUserServiceRegister(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, testPasswordConfig())
	ctx := context.Background()

	id, err := svc.Register(ctx, "alice", "pw123456")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	// Plaintext never reaches the store
	stored := store.users["alice"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "pw123456", stored.PasswordHash)
	assert.True(t, strings.HasPrefix(stored.PasswordHash, "$2a$"))
}

func TestUserServiceRegisterDuplicate(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, testPasswordConfig())
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "pw123456")
	require.NoError(t, err)
	firstHash := store.users["alice"].PasswordHash

	_, err = svc.Register(ctx, "alice", "different")
	require.Error(t, err)
	var taken *db.ErrUsernameTaken
	require.ErrorAs(t, err, &taken)

	// First record unchanged
	assert.Equal(t, firstHash, store.users["alice"].PasswordHash)
}

func TestUserServiceLogin(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, testPasswordConfig())
	ctx := context.Background()

	id, err := svc.Register(ctx, "alice", "pw123456")
	require.NoError(t, err)

	t.Run("correct credentials", func(t *testing.T) {
		user, err := svc.Login(ctx, "alice", "pw123456")
		require.NoError(t, err)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "alice", "wrong")
		var invalid *ErrInvalidCredentials
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody", "pw123456")
		var invalid *ErrInvalidCredentials
		require.ErrorAs(t, err, &invalid)
	})
}
