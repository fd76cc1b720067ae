package users

import (
	"context"
	"errors"
	"strings"

	"animal-collection/internal/middleware"
)

var (
	ErrUnauthenticated = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
)

// View son las vistas navegables que el core conoce.
type View string

const (
	ViewLogin     View = "login"
	ViewSignup    View = "signup"
	ViewDashboard View = "dashboard"
	ViewAdmin     View = "admin"
)

// State es la máquina de estados de acceso. Reemplaza los chequeos
// pathname+rol dispersos del routing original: cada estado enumera
// exactamente las vistas que puede alcanzar.
type State int

const (
	StateUnauthenticated State = iota
	StateUser
	StateAdmin
)

func (s State) String() string {
	switch s {
	case StateUser:
		return "user"
	case StateAdmin:
		return "admin"
	default:
		return "unauthenticated"
	}
}

// StateFor deriva el estado desde la sesión. Rol desconocido degrada
// a user (misma política que RoleFrom).
func StateFor(sess Session) State {
	if !sess.LoggedIn || strings.TrimSpace(sess.Username) == "" {
		return StateUnauthenticated
	}
	if sess.Role == RoleAdmin {
		return StateAdmin
	}
	return StateUser
}

// Views enumera las vistas alcanzables desde el estado.
func (s State) Views() []View {
	switch s {
	case StateAdmin:
		return []View{ViewDashboard, ViewAdmin}
	case StateUser:
		return []View{ViewDashboard}
	default:
		return []View{ViewLogin, ViewSignup}
	}
}

func (s State) CanView(v View) bool {
	for _, allowed := range s.Views() {
		if allowed == v {
			return true
		}
	}
	return false
}

// SessionFrom reconstruye la sesión efímera desde las claims del
// request. Sin claims devuelve la sesión vacía (estado unauthenticated).
func SessionFrom(ctx context.Context) Session {
	claims, ok := middleware.GetClaims(ctx)
	if !ok || strings.TrimSpace(claims.Username) == "" {
		return Session{}
	}
	return Session{
		LoggedIn: true,
		Username: strings.TrimSpace(claims.Username),
		Role:     RoleFrom(claims.Role),
	}
}

// Authorize valida la transición del caller a la vista pedida.
// Devuelve la sesión para que el handler no tenga que rearmarla.
func Authorize(ctx context.Context, v View) (Session, error) {
	sess := SessionFrom(ctx)
	state := StateFor(sess)

	if state == StateUnauthenticated && !state.CanView(v) {
		return Session{}, ErrUnauthenticated
	}
	if !state.CanView(v) {
		return sess, ErrForbidden
	}
	return sess, nil
}
