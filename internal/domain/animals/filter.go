package animals

import "strings"

// Filter es la unión explícita preset | filtro dinámico.
// Antes esto era un if/else sobre valores sueltos de la UI; acá el
// modo elegido queda en el tipo y la precedencia no puede mezclarse.
type Filter interface {
	predicate() Predicate
}

// PresetFilter selecciona uno de los perfiles de rescate fijos.
// Reemplaza por completo cualquier selección dinámica concurrente.
type PresetFilter struct {
	Name string
}

// DynamicFilter arma la conjunción con los campos no vacíos.
// Sin campos informados equivale al predicado vacío (toda la colección).
type DynamicFilter struct {
	ID    string
	Type  string
	Breed string
}

func (f PresetFilter) predicate() Predicate {
	p, ok := presets[f.Name]
	if !ok {
		return Predicate{}
	}
	return p
}

func (f DynamicFilter) predicate() Predicate {
	return Predicate{
		ID:    strings.TrimSpace(f.ID),
		Type:  strings.TrimSpace(f.Type),
		Breed: strings.TrimSpace(f.Breed),
	}
}

// BuildPredicate materializa el filtro elegido.
func BuildPredicate(f Filter) Predicate {
	if f == nil {
		return Predicate{}
	}
	return f.predicate()
}

// Selection es la entrada cruda de la UI (radio de preset + dropdowns).
type Selection struct {
	Preset string
	ID     string
	Type   string
	Breed  string
}

// Filter resuelve la precedencia: un preset reconocido manda; un nombre
// de preset desconocido cae al camino dinámico, igual que el radio
// "Reset" original.
func (s Selection) Filter() Filter {
	if _, ok := presets[s.Preset]; ok {
		return PresetFilter{Name: s.Preset}
	}
	return DynamicFilter{ID: s.ID, Type: s.Type, Breed: s.Breed}
}

// Perfiles de rescate fijos. No son configurables en runtime.
const (
	PresetWater    = "water"
	PresetMountain = "mountain"
	PresetDisaster = "disaster"
)

var presets = map[string]Predicate{
	PresetWater: {
		Breeds:   []string{"Labrador Retriever Mix", "Chesapeake Bay Retriever", "Newfoundland"},
		Sex:      string(SexIntactFemale),
		AgeWeeks: &Range{Min: 26, Max: 156},
	},
	PresetMountain: {
		Breeds:   []string{"German Shepherd", "Alaskan Malamute", "Old English Sheepdog", "Siberian Husky", "Rottweiler"},
		Sex:      string(SexIntactMale),
		AgeWeeks: &Range{Min: 26, Max: 156},
	},
	PresetDisaster: {
		Breeds:   []string{"Doberman Pinscher", "German Shepherd", "Golden Retriever", "Bloodhound", "Rottweiler"},
		Sex:      string(SexIntactMale),
		AgeWeeks: &Range{Min: 20, Max: 300},
	},
}

// Presets devuelve los nombres de preset disponibles (para la UI).
func Presets() []string {
	return []string{PresetWater, PresetMountain, PresetDisaster}
}
