package dto

import "github.com/AbdulmosenAlmuzaini/malek/internal/core/domain"

// LoginRequest carries the credential pair presented at login.
type LoginRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginResponse echoes the logged-in identity; the token itself rides
// in the session cookie.
type LoginResponse struct {
	Message string          `json:"message"`
	User    domain.Identity `json:"user"`
}
