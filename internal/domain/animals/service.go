package animals

import (
	"context"
	"errors"
	"sort"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoFields indica un update sin ningún campo informado.
	// Se corta acá: el storage no se toca y el conteo es cero.
	ErrNoFields = errors.New("no fields to update")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Type        string
	Name        string
	Breed       string
	Color       string
	Sex         string
	DateOfBirth string

	OutcomeType     string
	OutcomeSubtype  string
	OutcomeDatetime string

	AgeWeeks *float64
	AgeGroup string

	Lat  *float64
	Long *float64
}

// Create valida el discriminador obligatorio, arma el documento y lo
// inserta. El id lo asigna el repositorio (contador atómico del storage).
func (s *Service) Create(ctx context.Context, in CreateInput) (Animal, error) {
	if strings.TrimSpace(in.Type) == "" {
		return Animal{}, ErrInvalidInput
	}

	a := Animal{
		Type:            strings.TrimSpace(in.Type),
		Name:            strings.TrimSpace(in.Name),
		Breed:           strings.TrimSpace(in.Breed),
		Color:           strings.TrimSpace(in.Color),
		Sex:             strings.TrimSpace(in.Sex),
		DateOfBirth:     strings.TrimSpace(in.DateOfBirth),
		OutcomeType:     strings.TrimSpace(in.OutcomeType),
		OutcomeSubtype:  strings.TrimSpace(in.OutcomeSubtype),
		OutcomeDatetime: strings.TrimSpace(in.OutcomeDatetime),
		AgeWeeks:        in.AgeWeeks,
		AgeGroup:        strings.TrimSpace(in.AgeGroup),
		Lat:             in.Lat,
		Long:            in.Long,
	}

	id, err := s.repo.Create(ctx, a)
	if err != nil {
		return Animal{}, err
	}
	a.ID = id
	return a, nil
}

// Find resuelve la selección de la UI a un predicado y lo ejecuta.
func (s *Service) Find(ctx context.Context, sel Selection) ([]Animal, error) {
	return s.FindByPredicate(ctx, BuildPredicate(sel.Filter()))
}

func (s *Service) FindByPredicate(ctx context.Context, p Predicate) ([]Animal, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Find(ctx, p)
}

// UpdateMany aplica el set parcial a todo documento que matchee.
// Set vacío => ErrNoFields sin tocar el storage ("nothing to update").
func (s *Service) UpdateMany(ctx context.Context, p Predicate, f FieldSet) (int64, error) {
	if f.IsEmpty() {
		return 0, ErrNoFields
	}
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return s.repo.UpdateMany(ctx, p, f)
}

// DeleteMany elimina todo documento que matchee y devuelve el conteo.
// Cero matches se reporta como conteo cero, no como error.
func (s *Service) DeleteMany(ctx context.Context, p Predicate) (int64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return s.repo.DeleteMany(ctx, p)
}

// ListBreeds devuelve las razas distintas (opcionalmente acotadas a un
// tipo) ordenadas, para poblar el dropdown de razas de la UI.
func (s *Service) ListBreeds(ctx context.Context, animalType string) ([]string, error) {
	list, err := s.repo.Find(ctx, Predicate{Type: strings.TrimSpace(animalType)})
	if err != nil {
		return nil, err
	}

	seen := map[string]struct{}{}
	out := make([]string, 0)
	for _, a := range list {
		if a.Breed == "" {
			continue
		}
		if _, ok := seen[a.Breed]; ok {
			continue
		}
		seen[a.Breed] = struct{}{}
		out = append(out, a.Breed)
	}
	sort.Strings(out)
	return out, nil
}
