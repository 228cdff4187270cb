package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username is already taken")
)

type User struct {
	ID             uuid.UUID
	Username       string
	HashedPassword string
	CreatedAt      time.Time
}

// UserRepository persists users. Username uniqueness is enforced by the
// storage layer: Create returns ErrUsernameTaken on a conflict.
type UserRepository interface {
	NextID() (uuid.UUID, error)
	Create(user *User) error
	FindByUsername(username string) (*User, error)
}

type PasswordManager interface {
	Hash(plainTextPassword string) (string, error)
	Check(hashedPassword, plainTextPassword string) (bool, error)
}
