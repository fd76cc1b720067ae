package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput = errors.New("invalid input")

	// ErrUsernameTaken es el conflicto de signup, recuperable y con
	// mensaje específico para el usuario.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidCredentials cubre tanto username inexistente como
	// password incorrecta. Política única: el caller nunca puede
	// distinguir los dos casos (no enumeración de usuarios).
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Signup crea la cuenta con rol user y el password hasheado con bcrypt
// (salt incluida en el hash). Username duplicado => ErrUsernameTaken.
func (s *Service) Signup(ctx context.Context, username, password string) (User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return User{}, ErrInvalidInput
	}

	_, err := s.repo.GetByUsername(ctx, username)
	if err == nil {
		return User{}, ErrUsernameTaken
	}
	if !errors.Is(err, ErrNotFound) {
		// storage caído: se propaga, no se degrada
		return User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	u := User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		Role:         RoleUser,
		CreatedAt:    s.now(),
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

// Login verifica credenciales y devuelve la sesión efímera.
// Falla siempre con ErrInvalidCredentials, exista o no el username.
func (s *Service) Login(ctx context.Context, username, password string) (Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return Session{}, ErrInvalidCredentials
	}

	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, err
	}

	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)); err != nil {
		return Session{}, ErrInvalidCredentials
	}

	return Session{
		LoggedIn: true,
		Username: u.Username,
		Role:     u.Role,
	}, nil
}

// Role resuelve el rol guardado; usuario inexistente degrada a user.
func (s *Service) Role(ctx context.Context, username string) (Role, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return RoleUser, nil
		}
		return RoleUser, err
	}
	return u.Role, nil
}
