package dto

import (
	"strings"

	"github.com/SscSPs/currency_rates_app/internal/core/domain"
	"github.com/SscSPs/currency_rates_app/internal/validation"
)

const (
	emailMaxLength    = 200
	passwordMinLength = 8
	passwordMaxLength = 50
	nameMaxLength     = 150
)

// RegisterRequest is the body of POST /user/register.
type RegisterRequest struct {
	Email     string `json:"email" example:"user@example.com"`
	Password  string `json:"password" example:"s3cret-pass"`
	FirstName string `json:"first_name" example:"Ivan"`
	LastName  string `json:"last_name" example:"Petrov"`
}

// Validate applies the registration rules.
func (r RegisterRequest) Validate() error {
	return validation.Check(
		emailField(r.Email),
		passwordField(r.Password),
		validation.Field{Name: "first_name", Value: r.FirstName, Optional: true, Rules: []validation.Rule{validation.MaxLength(nameMaxLength)}},
		validation.Field{Name: "last_name", Value: r.LastName, Optional: true, Rules: []validation.Rule{validation.MaxLength(nameMaxLength)}},
	)
}

// RegisterResponse echoes the created account.
type RegisterResponse struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// ToRegisterResponse converts a domain.User to RegisterResponse DTO
func ToRegisterResponse(u *domain.User) RegisterResponse {
	return RegisterResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// LoginRequest is the body of POST /user/login.
type LoginRequest struct {
	Email    string `json:"email" example:"user@example.com"`
	Password string `json:"password" example:"s3cret-pass"`
}

// Validate applies the login rules.
func (r LoginRequest) Validate() error {
	return validation.Check(emailField(r.Email), passwordField(r.Password))
}

// RefreshRequest is the body of POST /user/refresh.
type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

// Validate applies the refresh rules.
func (r RefreshRequest) Validate() error {
	return validation.Check(validation.Field{Name: "refresh", Value: r.Refresh, Rules: []validation.Rule{validation.Required()}})
}

// GoogleExchangeCodeRequest is the body of POST /user/google/exchange-code.
type GoogleExchangeCodeRequest struct {
	Code string `json:"code"`
}

// Validate applies the code exchange rules.
func (r GoogleExchangeCodeRequest) Validate() error {
	return validation.Check(validation.Field{Name: "code", Value: r.Code, Rules: []validation.Rule{validation.Required()}})
}

// TokenPairResponse is returned by every endpoint that signs a user in.
type TokenPairResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// emailField checks the address as it will be stored: surrounding spaces are dropped.
func emailField(email string) validation.Field {
	return validation.Field{Name: "email", Value: strings.TrimSpace(email), Rules: []validation.Rule{
		validation.Required(), validation.MaxLength(emailMaxLength), validation.Email(),
	}}
}

func passwordField(password string) validation.Field {
	return validation.Field{Name: "password", Value: password, Rules: []validation.Rule{
		validation.Required(), validation.LengthBetween(passwordMinLength, passwordMaxLength),
	}}
}
