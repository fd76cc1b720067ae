package memory

import (
	"context"
	"sync"

	"animal-collection/internal/domain/animals"
)

type animalsRepo struct {
	mu     sync.RWMutex
	byID   map[string]animals.Animal
	order  []string // orden de inserción = orden estable del storage
	lastID string
}

func NewAnimalsRepo() animals.Repository {
	return &animalsRepo{
		byID: make(map[string]animals.Animal),
	}
}

// Create asigna el siguiente id bajo el lock del repo: el read-then-
// increment nunca se intercala entre goroutines.
func (r *animalsRepo) Create(ctx context.Context, a animals.Animal) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := animals.NextID(r.lastID)
	a.ID = id

	r.byID[id] = a
	r.order = append(r.order, id)
	r.lastID = id
	return id, nil
}

func (r *animalsRepo) Find(ctx context.Context, p animals.Predicate) ([]animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]animals.Animal, 0)
	for _, id := range r.order {
		a, ok := r.byID[id]
		if !ok {
			continue
		}
		if p.Matches(a) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *animalsRepo) UpdateMany(ctx context.Context, p animals.Predicate, f animals.FieldSet) (int64, error) {
	if f.IsEmpty() {
		return 0, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	for id, a := range r.byID {
		if !p.Matches(a) {
			continue
		}
		f.Apply(&a)
		r.byID[id] = a
		count++
	}
	return count, nil
}

func (r *animalsRepo) DeleteMany(ctx context.Context, p animals.Predicate) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	kept := r.order[:0]
	for _, id := range r.order {
		a, ok := r.byID[id]
		if ok && p.Matches(a) {
			delete(r.byID, id)
			count++
			continue
		}
		kept = append(kept, id)
	}
	r.order = kept
	return count, nil
}
