// Package jwtauth implementa los ports de auth con tokens JWT firmados
// (HS256). El token es la sesión completa: el server no guarda nada.
package jwtauth

import (
	"context"
	"errors"
	"strings"
	"time"

	"animal-collection/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenEmpty   = errors.New("token is empty")
	ErrTokenInvalid = errors.New("invalid token")
)

const DefaultTTL = 8 * time.Hour

type sessionClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Service firma y verifica tokens de sesión. Implementa tanto
// auth.TokenIssuer como auth.AuthVerifier.
type Service struct {
	signingKey []byte
	issuer     string
	ttl        time.Duration
	now        func() time.Time
}

func New(signingKey string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		signingKey: []byte(signingKey),
		issuer:     "animal-collection",
		ttl:        ttl,
		now:        time.Now,
	}
}

func (s *Service) Issue(ctx context.Context, claims auth.Claims) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		Username: claims.Username,
		Role:     claims.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			ID:        uuid.NewString(),
		},
	})
	return token.SignedString(s.signingKey)
}

func (s *Service) Verify(ctx context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil || !parsed.Valid {
		return auth.Claims{}, ErrTokenInvalid
	}

	sc, ok := parsed.Claims.(*sessionClaims)
	if !ok || strings.TrimSpace(sc.Username) == "" {
		return auth.Claims{}, ErrTokenInvalid
	}

	return auth.Claims{
		Username: strings.TrimSpace(sc.Username),
		Role:     strings.TrimSpace(sc.Role),
	}, nil
}
