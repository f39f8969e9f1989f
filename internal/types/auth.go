package types

import (
	"github.com/go-playground/validator/v10"
)

// RegisterRequest represents the request body for POST /auth/register.
type RegisterRequest struct {
	UserName string `json:"userName" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest represents the request body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Status is the server's uniform acknowledgement shape for register, login,
// upload and delete operations.
type Status struct {
	Status  bool   `json:"status"`
	Message string `json:"message,omitempty"`
}

// Validate validates the RegisterRequest using the validator.
func (r *RegisterRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
