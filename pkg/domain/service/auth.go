package service

import (
	"errors"
	"time"

	"inventoryservice/pkg/domain/model"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type AuthService interface {
	Register(username, password string) (*model.User, error)
	Authenticate(username, password string) (*model.User, error)
}

func NewAuthService(repo model.UserRepository, passManager model.PasswordManager, dispatcher EventDispatcher) AuthService {
	return &authService{
		repo:        repo,
		passManager: passManager,
		dispatcher:  dispatcher,
	}
}

type authService struct {
	repo        model.UserRepository
	passManager model.PasswordManager
	dispatcher  EventDispatcher
}

func (s *authService) Register(username, password string) (*model.User, error) {
	hashedPassword, err := s.passManager.Hash(password)
	if err != nil {
		return nil, err
	}

	userID, err := s.repo.NextID()
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:             userID,
		Username:       username,
		HashedPassword: hashedPassword,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.Create(user); err != nil {
		return nil, err
	}

	_ = s.dispatcher.Dispatch(model.UserRegistered{UserID: userID, Username: username})
	return user, nil
}

// Authenticate resolves the credentials to a stored user. An unknown username
// and a wrong password are indistinguishable to the caller.
func (s *authService) Authenticate(username, password string) (*model.User, error) {
	user, err := s.repo.FindByUsername(username)
	if errors.Is(err, model.ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	ok, err := s.passManager.Check(user.HashedPassword, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
