package animals

// Sex define los valores de sexo más comunes en los datos del refugio.
// El campo es texto libre en los documentos; estas constantes existen
// solo para los presets de rescate.
type Sex string

const (
	SexIntactFemale Sex = "Intact Female"
	SexIntactMale   Sex = "Intact Male"
)

// Animal representa un documento de animal adoptable.
// Los campos opcionales vacíos se omiten al persistir (schemaless:
// el documento guardado solo contiene lo que se informó).
type Animal struct {
	ID   string `json:"id"`
	Type string `json:"type"` // discriminador, obligatorio al crear

	Name        string `json:"name,omitempty"`
	Breed       string `json:"breed,omitempty"`
	Color       string `json:"color,omitempty"`
	Sex         string `json:"sex,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`

	OutcomeType     string `json:"outcomeType,omitempty"`
	OutcomeSubtype  string `json:"outcomeSubtype,omitempty"`
	OutcomeDatetime string `json:"outcomeDatetime,omitempty"`

	AgeWeeks *float64 `json:"ageWeeks,omitempty"`
	AgeGroup string   `json:"ageGroup,omitempty"`

	// Ambas o ninguna para uso en mapa.
	Lat  *float64 `json:"lat,omitempty"`
	Long *float64 `json:"long,omitempty"`
}

// HasCoordinates indica si el documento trae lat y long.
func (a Animal) HasCoordinates() bool {
	return a.Lat != nil && a.Long != nil
}

// FieldSet es el conjunto parcial de campos para un update.
// String vacío / puntero nil = campo no informado (no se toca),
// igual que el formulario original de administración.
type FieldSet struct {
	Type        string `json:"type,omitempty"`
	Name        string `json:"name,omitempty"`
	Breed       string `json:"breed,omitempty"`
	Color       string `json:"color,omitempty"`
	Sex         string `json:"sex,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`

	OutcomeType     string `json:"outcomeType,omitempty"`
	OutcomeSubtype  string `json:"outcomeSubtype,omitempty"`
	OutcomeDatetime string `json:"outcomeDatetime,omitempty"`

	AgeWeeks *float64 `json:"ageWeeks,omitempty"`
	AgeGroup string   `json:"ageGroup,omitempty"`

	Lat  *float64 `json:"lat,omitempty"`
	Long *float64 `json:"long,omitempty"`
}

// IsEmpty devuelve true si no hay ningún campo informado.
func (f FieldSet) IsEmpty() bool {
	return f.Type == "" &&
		f.Name == "" &&
		f.Breed == "" &&
		f.Color == "" &&
		f.Sex == "" &&
		f.DateOfBirth == "" &&
		f.OutcomeType == "" &&
		f.OutcomeSubtype == "" &&
		f.OutcomeDatetime == "" &&
		f.AgeWeeks == nil &&
		f.AgeGroup == "" &&
		f.Lat == nil &&
		f.Long == nil
}

// Apply escribe sobre a solo los campos informados.
// Lo usa el adapter in-memory; el adapter postgres hace el merge en jsonb.
func (f FieldSet) Apply(a *Animal) {
	if f.Type != "" {
		a.Type = f.Type
	}
	if f.Name != "" {
		a.Name = f.Name
	}
	if f.Breed != "" {
		a.Breed = f.Breed
	}
	if f.Color != "" {
		a.Color = f.Color
	}
	if f.Sex != "" {
		a.Sex = f.Sex
	}
	if f.DateOfBirth != "" {
		a.DateOfBirth = f.DateOfBirth
	}
	if f.OutcomeType != "" {
		a.OutcomeType = f.OutcomeType
	}
	if f.OutcomeSubtype != "" {
		a.OutcomeSubtype = f.OutcomeSubtype
	}
	if f.OutcomeDatetime != "" {
		a.OutcomeDatetime = f.OutcomeDatetime
	}
	if f.AgeWeeks != nil {
		v := *f.AgeWeeks
		a.AgeWeeks = &v
	}
	if f.AgeGroup != "" {
		a.AgeGroup = f.AgeGroup
	}
	if f.Lat != nil {
		v := *f.Lat
		a.Lat = &v
	}
	if f.Long != nil {
		v := *f.Long
		a.Long = &v
	}
}
