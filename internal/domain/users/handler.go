package users

import (
	"encoding/json"
	"errors"
	"net/http"

	"animal-collection/internal/platform/bind"
	"animal-collection/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, issuer auth.TokenIssuer) {
	r.Route("/auth", func(ar chi.Router) {
		ar.Post("/signup", signupHandler(svc))
		ar.Post("/login", loginHandler(svc, issuer))
		ar.Get("/views", viewsHandler())
	})
}

type signupRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Confirm  string `json:"confirm" validate:"required"`
}

type signupResponse struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
	Message  string `json:"message"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Session Session `json:"session"`
	Token   string  `json:"token,omitempty"`
	Views   []View  `json:"views"`
}

type viewsResponse struct {
	State string `json:"state"`
	Views []View `json:"views"`
}

// signupHandler godoc
// @Summary Crear cuenta
// @Description Registra un usuario nuevo con rol user. El password se guarda hasheado con bcrypt. Username duplicado => 409.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body signupRequest true "Credenciales; confirm debe coincidir con password"
// @Success 201 {object} signupResponse
// @Failure 400 {string} string "invalid json / campos faltantes / passwords do not match"
// @Failure 409 {string} string "username already exists."
// @Router /auth/signup [post]
func signupHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req signupRequest
		if err := bind.JSON(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if req.Password != req.Confirm {
			http.Error(w, "passwords do not match", http.StatusBadRequest)
			return
		}

		u, err := svc.Signup(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, ErrUsernameTaken):
				http.Error(w, "username already exists.", http.StatusConflict)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, "username and password required", http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, signupResponse{
			Username: u.Username,
			Role:     u.Role,
			Message:  "Account created successfully. You may now login.",
		})
	}
}

// loginHandler godoc
// @Summary Iniciar sesión
// @Description Verifica credenciales y devuelve la sesión con su rol resuelto. Si hay issuer configurado, incluye un token firmado para el header Authorization. El mensaje de error no distingue username inexistente de password incorrecta.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body loginRequest true "Credenciales"
// @Success 200 {object} loginResponse
// @Failure 400 {string} string "invalid json / campos faltantes"
// @Failure 401 {string} string "invalid username or password"
// @Router /auth/login [post]
func loginHandler(svc *Service, issuer auth.TokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := bind.JSON(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		sess, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, ErrInvalidCredentials) {
				http.Error(w, ErrInvalidCredentials.Error(), http.StatusUnauthorized)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		resp := loginResponse{
			Session: sess,
			Views:   StateFor(sess).Views(),
		}

		// Sin issuer (modo dev) no hay token: se usan los headers X-Debug-*.
		if issuer != nil {
			token, err := issuer.Issue(r.Context(), auth.Claims{
				Username: sess.Username,
				Role:     string(sess.Role),
			})
			if err != nil {
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			resp.Token = token
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// viewsHandler godoc
// @Summary Vistas alcanzables
// @Description Devuelve el estado de acceso del caller (unauthenticated/user/admin) y las vistas que puede navegar.
// @Tags auth
// @Produce json
// @Success 200 {object} viewsResponse
// @Router /auth/views [get]
func viewsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Cualquier estado puede preguntar; la respuesta depende del estado.
		state := StateFor(SessionFrom(r.Context()))

		writeJSON(w, http.StatusOK, viewsResponse{
			State: state.String(),
			Views: state.Views(),
		})
	}
}

// writeJSON está duplicado a propósito en los handlers de cada módulo
// (misma decisión que en el resto del repo: helpers compartidos recién
// cuando duela).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
