package animals

import (
	"encoding/json"
	"errors"
	"net/http"

	"animal-collection/internal/domain/users"
	"animal-collection/internal/platform/bind"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/animals", func(ar chi.Router) {
		// Dashboard (cualquier sesión)
		ar.Get("/", listAnimalsHandler(svc))
		ar.Get("/breed-options", breedOptionsHandler(svc))

		// Administración (solo admin)
		ar.Post("/", createAnimalHandler(svc))
		ar.Patch("/{animalID}", updateAnimalHandler(svc))
		ar.Delete("/{animalID}", deleteAnimalHandler(svc))
	})
}

type createAnimalRequest struct {
	Type        string `json:"type" validate:"required"`
	Name        string `json:"name"`
	Breed       string `json:"breed"`
	Color       string `json:"color"`
	Sex         string `json:"sex"`
	DateOfBirth string `json:"dateOfBirth"`

	OutcomeType     string `json:"outcomeType"`
	OutcomeSubtype  string `json:"outcomeSubtype"`
	OutcomeDatetime string `json:"outcomeDatetime"`

	AgeWeeks *float64 `json:"ageWeeks"`
	AgeGroup string   `json:"ageGroup"`

	Lat  *float64 `json:"lat"`
	Long *float64 `json:"long"`
}

// updateAnimalRequest replica el formulario de administración: solo los
// campos informados (no vacíos) se escriben.
type updateAnimalRequest struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Breed       string `json:"breed"`
	Color       string `json:"color"`
	Sex         string `json:"sex"`
	DateOfBirth string `json:"dateOfBirth"`

	OutcomeType     string `json:"outcomeType"`
	OutcomeSubtype  string `json:"outcomeSubtype"`
	OutcomeDatetime string `json:"outcomeDatetime"`

	AgeWeeks *float64 `json:"ageWeeks"`
	AgeGroup string   `json:"ageGroup"`

	Lat  *float64 `json:"lat"`
	Long *float64 `json:"long"`
}

type countResponse struct {
	Count int64 `json:"count"`
}

type breedOptionsResponse struct {
	Breeds []string `json:"breeds"`
}

// listAnimalsHandler godoc
// @Summary Listar animales
// @Description Devuelve los animales que cumplen la selección. preset (water|mountain|disaster) tiene precedencia y reemplaza por completo type/breed; un preset desconocido cae al filtro dinámico. Sin filtros devuelve la colección completa.
// @Tags animals
// @Produce json
// @Param preset query string false "Perfil de rescate fijo"
// @Param type query string false "Igualdad exacta sobre type"
// @Param breed query string false "Igualdad exacta sobre breed"
// @Param id query string false "Igualdad exacta sobre id"
// @Success 200 {array} Animal
// @Failure 401 {string} string "unauthorized"
// @Router /animals [get]
func listAnimalsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := users.Authorize(r.Context(), users.ViewDashboard); err != nil {
			writeAccessError(w, err)
			return
		}

		q := r.URL.Query()
		list, err := svc.Find(r.Context(), Selection{
			Preset: q.Get("preset"),
			ID:     q.Get("id"),
			Type:   q.Get("type"),
			Breed:  q.Get("breed"),
		})
		if err != nil {
			if errors.Is(err, ErrInvalidPredicate) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, list)
	}
}

// breedOptionsHandler godoc
// @Summary Razas disponibles
// @Description Lista las razas distintas presentes en la colección, opcionalmente acotadas a un type. Pobla el dropdown de razas del dashboard.
// @Tags animals
// @Produce json
// @Param type query string false "Acotar a un type"
// @Success 200 {object} breedOptionsResponse
// @Failure 401 {string} string "unauthorized"
// @Router /animals/breed-options [get]
func breedOptionsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := users.Authorize(r.Context(), users.ViewDashboard); err != nil {
			writeAccessError(w, err)
			return
		}

		breeds, err := svc.ListBreeds(r.Context(), r.URL.Query().Get("type"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, breedOptionsResponse{Breeds: breeds})
	}
}

// createAnimalHandler godoc
// @Summary Alta de animal (admin)
// @Description Crea un documento nuevo. type es obligatorio; el id se asigna en el storage (A000001 en adelante). Campos vacíos se omiten del documento.
// @Tags animals
// @Accept json
// @Produce json
// @Param payload body createAnimalRequest true "Campos del animal"
// @Success 201 {object} Animal
// @Failure 400 {string} string "invalid json / type is required"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /animals [post]
func createAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := users.Authorize(r.Context(), users.ViewAdmin); err != nil {
			writeAccessError(w, err)
			return
		}

		var req createAnimalRequest
		if err := bind.JSON(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		a, err := svc.Create(r.Context(), CreateInput{
			Type:            req.Type,
			Name:            req.Name,
			Breed:           req.Breed,
			Color:           req.Color,
			Sex:             req.Sex,
			DateOfBirth:     req.DateOfBirth,
			OutcomeType:     req.OutcomeType,
			OutcomeSubtype:  req.OutcomeSubtype,
			OutcomeDatetime: req.OutcomeDatetime,
			AgeWeeks:        req.AgeWeeks,
			AgeGroup:        req.AgeGroup,
			Lat:             req.Lat,
			Long:            req.Long,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "type is required", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, a)
	}
}

// updateAnimalHandler godoc
// @Summary Actualización parcial (admin)
// @Description Escribe solo los campos informados sobre el documento con ese id. Sin campos => 400. Id inexistente => count 0 (no es error).
// @Tags animals
// @Accept json
// @Produce json
// @Param animalID path string true "Id del animal (A######)"
// @Param payload body updateAnimalRequest true "Campos a escribir"
// @Success 200 {object} countResponse
// @Failure 400 {string} string "invalid json / no fields to update"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /animals/{animalID} [patch]
func updateAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := users.Authorize(r.Context(), users.ViewAdmin); err != nil {
			writeAccessError(w, err)
			return
		}

		var req updateAnimalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		count, err := svc.UpdateMany(r.Context(), Predicate{ID: chi.URLParam(r, "animalID")}, FieldSet{
			Type:            req.Type,
			Name:            req.Name,
			Breed:           req.Breed,
			Color:           req.Color,
			Sex:             req.Sex,
			DateOfBirth:     req.DateOfBirth,
			OutcomeType:     req.OutcomeType,
			OutcomeSubtype:  req.OutcomeSubtype,
			OutcomeDatetime: req.OutcomeDatetime,
			AgeWeeks:        req.AgeWeeks,
			AgeGroup:        req.AgeGroup,
			Lat:             req.Lat,
			Long:            req.Long,
		})
		if err != nil {
			if errors.Is(err, ErrNoFields) {
				http.Error(w, ErrNoFields.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, countResponse{Count: count})
	}
}

// deleteAnimalHandler godoc
// @Summary Baja de animal (admin)
// @Description Elimina el documento con ese id y devuelve cuántos borró. Id inexistente => count 0 (no es error). No hay soft-delete.
// @Tags animals
// @Produce json
// @Param animalID path string true "Id del animal (A######)"
// @Success 200 {object} countResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /animals/{animalID} [delete]
func deleteAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := users.Authorize(r.Context(), users.ViewAdmin); err != nil {
			writeAccessError(w, err)
			return
		}

		count, err := svc.DeleteMany(r.Context(), Predicate{ID: chi.URLParam(r, "animalID")})
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, countResponse{Count: count})
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
