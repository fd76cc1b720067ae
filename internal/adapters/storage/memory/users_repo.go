package memory

import (
	"context"
	"strings"
	"sync"

	"animal-collection/internal/domain/users"
)

type usersRepo struct {
	mu         sync.RWMutex
	byUsername map[string]users.User
}

func NewUsersRepo() users.Repository {
	return &usersRepo{
		byUsername: make(map[string]users.User),
	}
}

func (r *usersRepo) Create(ctx context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.TrimSpace(u.Username)
	if key == "" {
		return users.ErrInvalidInput
	}
	if _, exists := r.byUsername[key]; exists {
		return users.ErrUsernameTaken
	}
	r.byUsername[key] = u
	return nil
}

func (r *usersRepo) GetByUsername(ctx context.Context, username string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byUsername[strings.TrimSpace(username)]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return u, nil
}
