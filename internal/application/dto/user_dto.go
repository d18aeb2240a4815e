package dto

import "time"

// RegisterRequest body para POST /api/v1/user/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Password string `json:"password"`
}

// LoginRequest body para POST /api/v1/user/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdatePasswordRequest body para POST /api/v1/user/update-user-password.
type UpdatePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// UserResponse representación pública del usuario (sin hash de password).
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LoginResponse usuario autenticado más el token emitido (también viaja en cookie).
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
