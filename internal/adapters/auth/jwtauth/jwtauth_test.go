package jwtauth

import (
	"context"
	"errors"
	"testing"
	"time"

	"animal-collection/internal/ports/auth"
)

func TestIssueAndVerify(t *testing.T) {
	svc := New("test-secret", time.Hour)
	ctx := context.Background()

	token, err := svc.Issue(ctx, auth.Claims{Username: "aacuser", Role: "admin"})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := svc.Verify(ctx, token)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.Username != "aacuser" || claims.Role != "admin" {
		t.Fatalf("unexpected claims: %#v", claims)
	}
}

func TestVerifyEmptyToken(t *testing.T) {
	svc := New("test-secret", time.Hour)

	_, err := svc.Verify(context.Background(), "   ")
	if !errors.Is(err, ErrTokenEmpty) {
		t.Fatalf("expected ErrTokenEmpty, got %v", err)
	}
}

func TestVerifyGarbageToken(t *testing.T) {
	svc := New("test-secret", time.Hour)

	_, err := svc.Verify(context.Background(), "not.a.token")
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	issuer := New("secret-a", time.Hour)
	verifier := New("secret-b", time.Hour)

	token, err := issuer.Issue(context.Background(), auth.Claims{Username: "aacuser", Role: "user"})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := verifier.Verify(context.Background(), token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	svc := New("test-secret", time.Hour)
	issued := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	token, err := svc.Issue(context.Background(), auth.Claims{Username: "aacuser", Role: "user"})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	// Dentro del TTL sigue siendo válido.
	svc.now = func() time.Time { return issued.Add(30 * time.Minute) }
	if _, err := svc.Verify(context.Background(), token); err != nil {
		t.Fatalf("token should still be valid, got %v", err)
	}

	svc.now = func() time.Time { return issued.Add(2 * time.Hour) }
	if _, err := svc.Verify(context.Background(), token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for expired token, got %v", err)
	}
}

func TestNewAppliesDefaultTTL(t *testing.T) {
	svc := New("test-secret", 0)
	if svc.ttl != DefaultTTL {
		t.Fatalf("expected default ttl %v, got %v", DefaultTTL, svc.ttl)
	}
}
