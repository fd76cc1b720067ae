package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"time"

	"animal-collection/internal/adapters/auth/jwtauth"
	pg "animal-collection/internal/adapters/storage/postgres"
	"animal-collection/internal/platform/logger"
	"animal-collection/internal/ports/auth"
	"animal-collection/internal/router"
)

func main() {
	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	// Storage: con DB_DSN la conexión tiene que estar viva en el
	// arranque; operar degradado sería peor que no arrancar.
	var db *sql.DB
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		opened, err := pg.Open(dsn)
		if err != nil {
			log.Fatal().Err(err).Msg("postgres unreachable")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := pg.EnsureSchema(ctx, opened); err != nil {
			cancel()
			log.Fatal().Err(err).Msg("schema setup failed")
		}
		cancel()

		db = opened
		defer func() { _ = db.Close() }()
		log.Info().Msg("using postgres storage")
	} else {
		log.Warn().Msg("DB_DSN not set, using in-memory storage (dev only)")
	}

	// Sesiones: con AUTH_SECRET los logins devuelven un JWT firmado.
	// Sin secret queda el modo dev con headers X-Debug-*.
	var verifier auth.AuthVerifier
	var issuer auth.TokenIssuer
	if secret := os.Getenv("AUTH_SECRET"); secret != "" {
		svc := jwtauth.New(secret, jwtauth.DefaultTTL)
		verifier = svc
		issuer = svc
	} else {
		log.Warn().Msg("AUTH_SECRET not set, running in dev auth mode")
	}

	r := router.NewRouter(router.Options{
		AuthVerifier: verifier,
		TokenIssuer:  issuer,
		DB:           db,
		Logger:       log,
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info().Str("addr", addr).Msg("starting server")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server error")
	}
}
