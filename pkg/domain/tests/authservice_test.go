package tests

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventoryservice/pkg/domain/model"
	"inventoryservice/pkg/domain/service"
)

func setupAuth(t *testing.T) (service.AuthService, *mockUserRepository, *mockEventDispatcher) {
	repo := &mockUserRepository{store: make(map[uuid.UUID]*model.User)}
	dispatcher := &mockEventDispatcher{}
	authService := service.NewAuthService(repo, &mockPasswordManager{}, dispatcher)
	return authService, repo, dispatcher
}

func TestRegister(t *testing.T) {
	authService, repo, dispatcher := setupAuth(t)

	t.Run("Success", func(t *testing.T) {
		user, err := authService.Register("alice", "p4ssword")

		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "alice", user.Username)
		assert.Contains(t, user.HashedPassword, "-hashed")

		saved, err := repo.FindByUsername("alice")
		require.NoError(t, err)
		assert.Equal(t, user.ID, saved.ID)

		require.Len(t, dispatcher.events, 1)
		_, ok := dispatcher.events[0].(model.UserRegistered)
		assert.True(t, ok)
	})

	t.Run("Fail on username taken", func(t *testing.T) {
		dispatcher.Reset()
		_, err := authService.Register("alice", "other")

		assert.ErrorIs(t, err, model.ErrUsernameTaken)
		assert.Len(t, repo.store, 1)
		assert.Empty(t, dispatcher.events)
	})
}

func TestAuthenticate(t *testing.T) {
	authService, _, _ := setupAuth(t)
	registered, _ := authService.Register("alice", "p4ssword")

	t.Run("Success returns the stored user", func(t *testing.T) {
		user, err := authService.Authenticate("alice", "p4ssword")

		require.NoError(t, err)
		assert.Equal(t, registered.ID, user.ID)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("Fail on wrong password", func(t *testing.T) {
		_, err := authService.Authenticate("alice", "wrong")

		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("Fail on unknown user", func(t *testing.T) {
		_, err := authService.Authenticate("bob", "p4ssword")

		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

type mockUserRepository struct {
	store map[uuid.UUID]*model.User
}

func (m *mockUserRepository) NextID() (uuid.UUID, error) { return uuid.New(), nil }

func (m *mockUserRepository) Create(user *model.User) error {
	for _, u := range m.store {
		if u.Username == user.Username {
			return model.ErrUsernameTaken
		}
	}
	copied := *user
	m.store[user.ID] = &copied
	return nil
}

func (m *mockUserRepository) FindByUsername(username string) (*model.User, error) {
	for _, u := range m.store {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, model.ErrUserNotFound
}

type mockPasswordManager struct{}

func (m *mockPasswordManager) Hash(pwd string) (string, error) {
	if pwd == "" {
		return "", errors.New("empty password")
	}
	return fmt.Sprintf("%s-hashed", pwd), nil
}

func (m *mockPasswordManager) Check(hashed, pwd string) (bool, error) {
	return hashed == fmt.Sprintf("%s-hashed", pwd), nil
}
