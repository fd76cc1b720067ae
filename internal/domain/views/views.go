// Package views deriva resúmenes de presentación sobre un conjunto de
// registros ya filtrado. Nada de lo que calcula se persiste.
package views

import "animal-collection/internal/domain/animals"

// OtherBucket agrupa las razas que quedan por debajo del umbral del 1%.
const OtherBucket = "Other"

// BreedDistribution cuenta documentos por raza. Toda raza con menos del
// 1% del total se saca de su propia porción y se suma al bucket Other,
// que solo aparece si quedó con conteo positivo.
func BreedDistribution(list []animals.Animal) map[string]int {
	counts := map[string]int{}
	total := 0
	for _, a := range list {
		if a.Breed == "" {
			continue
		}
		counts[a.Breed]++
		total++
	}

	if total == 0 {
		return map[string]int{}
	}

	threshold := float64(total) * 0.01
	out := map[string]int{}
	other := 0
	for breed, n := range counts {
		if float64(n) < threshold {
			other += n
			continue
		}
		out[breed] = n
	}
	if other > 0 {
		out[OtherBucket] = other
	}
	return out
}

// Location es la tupla para ubicar el marcador de un animal en el mapa.
type Location struct {
	Lat   float64 `json:"lat"`
	Long  float64 `json:"long"`
	Name  string  `json:"name"`
	Breed string  `json:"breed"`
}

// LookupCoordinates devuelve la ubicación del registro seleccionado.
// Índice fuera de rango o documento sin coordenadas => ok false
// (vacío, no error): el mapa simplemente no se dibuja.
func LookupCoordinates(list []animals.Animal, index int) (Location, bool) {
	if index < 0 || index >= len(list) {
		return Location{}, false
	}

	a := list[index]
	if !a.HasCoordinates() {
		return Location{}, false
	}

	return Location{
		Lat:   *a.Lat,
		Long:  *a.Long,
		Name:  a.Name,
		Breed: a.Breed,
	}, true
}
