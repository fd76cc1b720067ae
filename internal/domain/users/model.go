package users

import "time"

// Role define los roles soportados por el directorio.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// RoleFrom normaliza un rol en texto. Cualquier valor desconocido
// degrada a user: nunca se eleva por defecto.
func RoleFrom(s string) Role {
	if s == string(RoleAdmin) {
		return RoleAdmin
	}
	return RoleUser
}

// User es una entrada de credenciales, independiente de los animales.
// El rol solo cambia fuera de este core (no hay camino de autopromoción).
type User struct {
	ID           string
	Username     string
	PasswordHash []byte // bcrypt, nunca el plano
	Role         Role
	CreatedAt    time.Time
}

// Session es el resultado efímero de un login exitoso. El server no la
// persiste: el caller la retiene (como token firmado) mientras dura la
// sesión del cliente y la descarta al salir.
type Session struct {
	LoggedIn bool   `json:"loggedIn"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}
