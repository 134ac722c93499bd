package dto

// LoginRequest body para POST /api/auth/login: selección de rol, sin contraseña.
type LoginRequest struct {
	Role string `json:"role" validate:"required"`
}

// UserResponse sesión activa.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginResponse token + usuario.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int          `json:"expiresIn"` // segundos
	User      UserResponse `json:"user"`
}
