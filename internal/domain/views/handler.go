package views

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"animal-collection/internal/domain/animals"
	"animal-collection/internal/domain/users"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, animalsSvc *animals.Service) {
	// Las vistas derivadas operan sobre el mismo conjunto filtrado que
	// muestra la tabla del dashboard, así que aceptan la misma selección.
	r.Get("/animals/breeds", breedDistributionHandler(animalsSvc))
	r.Get("/animals/location", locationHandler(animalsSvc))
}

func selectionFrom(r *http.Request) animals.Selection {
	q := r.URL.Query()
	return animals.Selection{
		Preset: q.Get("preset"),
		ID:     q.Get("id"),
		Type:   q.Get("type"),
		Breed:  q.Get("breed"),
	}
}

// breedDistributionHandler godoc
// @Summary Distribución de razas
// @Description Conteo por raza del conjunto filtrado, con las razas bajo el 1% del total agrupadas en Other. Listo para renderizar como proporciones.
// @Tags views
// @Produce json
// @Param preset query string false "Perfil de rescate fijo"
// @Param type query string false "Igualdad exacta sobre type"
// @Param breed query string false "Igualdad exacta sobre breed"
// @Success 200 {object} map[string]int
// @Failure 401 {string} string "unauthorized"
// @Router /animals/breeds [get]
func breedDistributionHandler(animalsSvc *animals.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := users.Authorize(r.Context(), users.ViewDashboard); err != nil {
			writeAccessError(w, err)
			return
		}

		list, err := animalsSvc.Find(r.Context(), selectionFrom(r))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, BreedDistribution(list))
	}
}

// locationHandler godoc
// @Summary Coordenadas del animal seleccionado
// @Description Devuelve (lat, long, name, breed) del registro en la posición index del conjunto filtrado, para ubicar el marcador del mapa. Índice fuera de rango o documento sin coordenadas => objeto vacío, no error.
// @Tags views
// @Produce json
// @Param index query int true "Posición seleccionada dentro del conjunto filtrado"
// @Param preset query string false "Perfil de rescate fijo"
// @Param type query string false "Igualdad exacta sobre type"
// @Param breed query string false "Igualdad exacta sobre breed"
// @Success 200 {object} Location
// @Failure 400 {string} string "index must be an integer"
// @Failure 401 {string} string "unauthorized"
// @Router /animals/location [get]
func locationHandler(animalsSvc *animals.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := users.Authorize(r.Context(), users.ViewDashboard); err != nil {
			writeAccessError(w, err)
			return
		}

		index, err := strconv.Atoi(r.URL.Query().Get("index"))
		if err != nil {
			http.Error(w, "index must be an integer", http.StatusBadRequest)
			return
		}

		list, err := animalsSvc.Find(r.Context(), selectionFrom(r))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		loc, ok := LookupCoordinates(list, index)
		if !ok {
			// Sin selección válida el mapa simplemente no se dibuja.
			writeJSON(w, http.StatusOK, struct{}{})
			return
		}

		writeJSON(w, http.StatusOK, loc)
	}
}

func writeAccessError(w http.ResponseWriter, err error) {
	if errors.Is(err, users.ErrForbidden) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}
	http.Error(w, "unauthorized", http.StatusUnauthorized)
}

// writeJSON está duplicado a propósito en los handlers de cada módulo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
