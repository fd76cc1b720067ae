package users

import (
	"context"
	"errors"
)

var (
	// ErrNotFound lo devuelven los adapters cuando el username no existe.
	ErrNotFound = errors.New("user not found")
)

type Repository interface {
	// Create inserta el usuario. Username duplicado => ErrUsernameTaken.
	Create(ctx context.Context, u User) error

	GetByUsername(ctx context.Context, username string) (User, error)
}
