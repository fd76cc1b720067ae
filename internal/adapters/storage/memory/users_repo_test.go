package memory

import (
	"context"
	"errors"
	"testing"

	"animal-collection/internal/domain/users"
)

func TestUsersRepo_CreateAndGet(t *testing.T) {
	repo := NewUsersRepo()
	ctx := context.Background()

	u := users.User{ID: "u-1", Username: "aacuser", PasswordHash: []byte("hash"), Role: users.RoleUser}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	got, err := repo.GetByUsername(ctx, "aacuser")
	if err != nil {
		t.Fatalf("GetByUsername error: %v", err)
	}
	if got.ID != u.ID || got.Username != u.Username || got.Role != u.Role {
		t.Fatalf("stored user mismatch: %#v", got)
	}
}

func TestUsersRepo_DuplicateUsername(t *testing.T) {
	repo := NewUsersRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, users.User{ID: "u-1", Username: "aacuser"}); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	err := repo.Create(ctx, users.User{ID: "u-2", Username: "aacuser"})
	if !errors.Is(err, users.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestUsersRepo_UnknownUsername(t *testing.T) {
	repo := NewUsersRepo()

	_, err := repo.GetByUsername(context.Background(), "nobody")
	if !errors.Is(err, users.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
