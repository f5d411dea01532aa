package entity

import "time"

// Roles válidos para User.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// ValidRole indica si r es un rol conocido.
func ValidRole(r string) bool {
	return r == RoleUser || r == RoleAdmin
}

// User representa una cuenta de cliente o administrador.
type User struct {
	ID           string
	Name         string
	Email        string // normalizado (minúsculas); clave natural para buscar pedidos
	PasswordHash string // bcrypt, nunca plano
	Role         string // user, admin
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Session datos reducidos de un usuario autenticado (lo que ve el cliente).
type Session struct {
	UserID string
	Email  string
	Name   string
	Role   string
}

// IsAdmin comparación de rol.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}
