// Package usecase defines the application's business logic interfaces and
// their input/output DTOs. The delivery layer depends on these contracts,
// never on the implementations.
package usecase

import (
	"context"
	"strings"

	"doorman/internal/domain/entity"
	domainerrors "doorman/internal/domain/errors"
)

// SignupInput carries the signup request payload. Fields are bound
// defensively from arbitrary JSON and must be validated before use.
type SignupInput struct {
	FullName        string `json:"fullName" validate:"required"`
	Company         string `json:"company"`
	Email           string `json:"email" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// Validate normalizes the input and checks the signup validation rules.
// Presence is judged after trimming surrounding whitespace; the password
// comparison is byte-for-byte on the values as supplied. It touches no
// external state, so it always runs before any store access.
func (in *SignupInput) Validate() error {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Company = strings.TrimSpace(in.Company)
	in.Email = strings.TrimSpace(in.Email)

	if in.FullName == "" || in.Email == "" ||
		strings.TrimSpace(in.Password) == "" || strings.TrimSpace(in.ConfirmPassword) == "" {
		return domainerrors.ErrMissingFields
	}

	if in.Password != in.ConfirmPassword {
		return domainerrors.ErrPasswordMismatch
	}

	return nil
}

// LoginInput carries the login request payload.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Validate normalizes the input and checks the login validation rules.
func (in *LoginInput) Validate() error {
	in.Email = strings.TrimSpace(in.Email)

	if in.Email == "" || strings.TrimSpace(in.Password) == "" {
		return domainerrors.ErrMissingCredentials
	}

	return nil
}

// SignupOutput is the result of a successful signup. The account's
// PasswordHash never leaves the service boundary.
type SignupOutput struct {
	Account *entity.Account
}

// LoginOutput is the result of a successful login.
type LoginOutput struct {
	Account *entity.Account
}

// AccountUsecase defines the two credential operations the system exposes.
type AccountUsecase interface {
	// Signup validates the payload, enforces email uniqueness, derives the
	// password hash and persists a new account.
	Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error)

	// Login verifies the supplied credentials against the stored hash.
	// Unknown email and wrong password fail identically.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
