package dto

import "time"

// RegisterRequest entrada para registro de cliente.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionUser datos de sesión visibles para el cliente.
type SessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// AuthResponse salida de registro/login: {success, user, token}.
type AuthResponse struct {
	Success bool        `json:"success"`
	User    SessionUser `json:"user"`
	Token   string      `json:"token"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserListResponse listado para el panel de administración.
type UserListResponse struct {
	Success bool           `json:"success"`
	Users   []UserResponse `json:"users"`
}

// UserEnvelope {success, user}.
type UserEnvelope struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
}

// UpdateRoleRequest cambio de rol.
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user admin"`
}

// UserStatsResponse conteos de usuarios.
type UserStatsResponse struct {
	Success bool `json:"success"`
	Total   int  `json:"total"`
	Admins  int  `json:"admins"`
	Regular int  `json:"regular"`
}
