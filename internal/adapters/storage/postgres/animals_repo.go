package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"animal-collection/internal/domain/animals"
)

type AnimalsRepo struct {
	db *sql.DB
}

func NewAnimalsRepo(db *sql.DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

// Create inserta el documento con el siguiente id. El contador vive en
// una fila única lockeada FOR UPDATE dentro de la transacción del
// insert: dos altas concurrentes nunca leen el mismo last_id.
func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) (string, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback() }()

	var last sql.NullString
	err = tx.QueryRowContext(ctx, `
		SELECT last_id FROM animal_id_counter WHERE singleton FOR UPDATE
	`).Scan(&last)
	if err != nil && err != sql.ErrNoRows {
		return "", err
	}
	if err == sql.ErrNoRows {
		// Primera alta tras migrar datos existentes: sembrar desde el
		// máximo id ya guardado (vacío => arranca en A000001; id máximo
		// no parseable => NextID cae al centinela, no falla el alta).
		if err := tx.QueryRowContext(ctx, `SELECT max(id) FROM animals`).Scan(&last); err != nil {
			return "", err
		}
	}

	id := animals.NextID(last.String)
	a.ID = id

	doc, err := json.Marshal(a)
	if err != nil {
		return "", err
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO animals (id, doc) VALUES ($1, $2)
	`, id, doc); err != nil {
		return "", err
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO animal_id_counter (singleton, last_id) VALUES (true, $1)
		ON CONFLICT (singleton) DO UPDATE SET last_id = EXCLUDED.last_id
	`, id); err != nil {
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return id, nil
}

func (r *AnimalsRepo) Find(ctx context.Context, p animals.Predicate) ([]animals.Animal, error) {
	where, args := compilePredicate(p, nil)

	rows, err := r.db.QueryContext(ctx, `
		SELECT doc FROM animals
	`+where+`
		ORDER BY id ASC
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]animals.Animal, 0)
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var a animals.Animal
		if err := json.Unmarshal(doc, &a); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// UpdateMany mergea el set parcial sobre el jsonb de cada documento que
// matchea. El operador || sobrescribe solo las claves presentes en el
// set, que es exactamente la semántica de update parcial.
func (r *AnimalsRepo) UpdateMany(ctx context.Context, p animals.Predicate, f animals.FieldSet) (int64, error) {
	if f.IsEmpty() {
		return 0, nil
	}

	patch, err := json.Marshal(f)
	if err != nil {
		return 0, err
	}

	// El patch va en $1; el predicado arranca en $2.
	where, args := compilePredicate(p, []any{patch})

	res, err := r.db.ExecContext(ctx, `
		UPDATE animals SET doc = doc || $1::jsonb
	`+where, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *AnimalsRepo) DeleteMany(ctx context.Context, p animals.Predicate) (int64, error) {
	where, args := compilePredicate(p, nil)

	res, err := r.db.ExecContext(ctx, `
		DELETE FROM animals
	`+where, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// compilePredicate traduce el predicado a una cláusula WHERE sobre el
// jsonb. Los placeholders continúan después de los args ya reservados
// por el llamador (prefix). Predicado vacío => cláusula vacía.
// El Matches del dominio es la referencia: esto tiene que seleccionar
// exactamente los mismos documentos.
func compilePredicate(p animals.Predicate, prefix []any) (string, []any) {
	conds := make([]string, 0)
	args := append([]any(nil), prefix...)

	add := func(v any) int {
		args = append(args, v)
		return len(args)
	}

	if p.ID != "" {
		conds = append(conds, fmt.Sprintf("id = $%d", add(p.ID)))
	}
	if p.Type != "" {
		conds = append(conds, fmt.Sprintf("doc->>'type' = $%d", add(p.Type)))
	}
	if p.Breed != "" {
		conds = append(conds, fmt.Sprintf("doc->>'breed' = $%d", add(p.Breed)))
	}
	if len(p.Breeds) > 0 {
		ph := make([]string, 0, len(p.Breeds))
		for _, b := range p.Breeds {
			ph = append(ph, fmt.Sprintf("$%d", add(b)))
		}
		conds = append(conds, "doc->>'breed' IN ("+strings.Join(ph, ", ")+")")
	}
	if p.Sex != "" {
		conds = append(conds, fmt.Sprintf("doc->>'sex' = $%d", add(p.Sex)))
	}
	if p.AgeWeeks != nil {
		lo := add(p.AgeWeeks.Min)
		hi := add(p.AgeWeeks.Max)
		conds = append(conds, fmt.Sprintf(
			"(doc->>'ageWeeks') IS NOT NULL AND (doc->>'ageWeeks')::float8 BETWEEN $%d AND $%d", lo, hi))
	}

	if len(conds) == 0 {
		return "", prefix
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
