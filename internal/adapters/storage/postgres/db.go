package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var (
	ErrNotFound = errors.New("not found")
)

// Open abre una conexión pool a Postgres usando pgx (database/sql).
// Si el storage no responde al ping, se devuelve el error: el proceso
// debe cortar en el arranque, no operar degradado.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// EnsureSchema crea tablas e índices si no existen. Los documentos de
// animales van en jsonb (schemaless); los índices por type, breed y el
// compuesto (type, breed) sostienen los predicados más frecuentes.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS animals (
			id  text PRIMARY KEY,
			doc jsonb NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS animals_type_idx ON animals ((doc->>'type'))`,
		`CREATE INDEX IF NOT EXISTS animals_breed_idx ON animals ((doc->>'breed'))`,
		`CREATE INDEX IF NOT EXISTS animals_type_breed_idx ON animals ((doc->>'type'), (doc->>'breed'))`,
		`CREATE TABLE IF NOT EXISTS animal_id_counter (
			singleton boolean PRIMARY KEY DEFAULT true CHECK (singleton),
			last_id   text NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id            uuid PRIMARY KEY,
			username      text NOT NULL UNIQUE,
			password_hash bytea NOT NULL,
			role          text NOT NULL DEFAULT 'user',
			created_at    timestamptz NOT NULL
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
