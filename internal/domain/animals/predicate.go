package animals

import "errors"

var (
	// ErrInvalidPredicate indica un predicado mal formado (p.ej. rango invertido).
	ErrInvalidPredicate = errors.New("invalid predicate")
)

// Range es un rango inclusivo de edad en semanas.
type Range struct {
	Min float64
	Max float64
}

// Predicate describe qué documentos selecciona una operación.
// Es una conjunción: todo campo informado debe cumplirse.
// El predicado vacío selecciona la colección completa.
type Predicate struct {
	ID    string
	Type  string
	Breed string

	// Breeds es pertenencia a conjunto (lo usan los presets de rescate).
	Breeds []string

	Sex      string
	AgeWeeks *Range
}

// IsEmpty devuelve true si el predicado no restringe nada.
func (p Predicate) IsEmpty() bool {
	return p.ID == "" &&
		p.Type == "" &&
		p.Breed == "" &&
		len(p.Breeds) == 0 &&
		p.Sex == "" &&
		p.AgeWeeks == nil
}

// Validate rechaza predicados mal formados antes de tocar el storage.
func (p Predicate) Validate() error {
	if p.AgeWeeks != nil && p.AgeWeeks.Min > p.AgeWeeks.Max {
		return ErrInvalidPredicate
	}
	return nil
}

// Matches evalúa el predicado contra un documento.
// Lo usa el adapter in-memory; el adapter postgres compila el
// predicado a una cláusula WHERE equivalente.
func (p Predicate) Matches(a Animal) bool {
	if p.ID != "" && a.ID != p.ID {
		return false
	}
	if p.Type != "" && a.Type != p.Type {
		return false
	}
	if p.Breed != "" && a.Breed != p.Breed {
		return false
	}
	if len(p.Breeds) > 0 {
		found := false
		for _, b := range p.Breeds {
			if a.Breed == b {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if p.Sex != "" && a.Sex != p.Sex {
		return false
	}
	if p.AgeWeeks != nil {
		if a.AgeWeeks == nil {
			return false
		}
		if *a.AgeWeeks < p.AgeWeeks.Min || *a.AgeWeeks > p.AgeWeeks.Max {
			return false
		}
	}
	return true
}
