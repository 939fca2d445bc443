// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"doorman/internal/delivery/http/response"
	domainerrors "doorman/internal/domain/errors"
	"doorman/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for the credential endpoints.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// Signup handles the account creation request.
func (h *AccountHandler) Signup(c echo.Context) error {
	input := new(usecase.SignupInput)
	// A missing or malformed body is the caller's problem, reported the same
	// way as absent fields rather than as a framework error.
	if err := c.Bind(input); err != nil {
		return errors.WithStack(domainerrors.ErrMissingFields)
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(domainerrors.ErrMissingFields)
	}

	if _, err := h.uc.Signup(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	// Only the confirmation message goes out; never the account record.
	return response.Send(c, http.StatusCreated, "Signup successful")
}

// Login handles the credential verification request.
func (h *AccountHandler) Login(c echo.Context) error {
	input := new(usecase.LoginInput)
	if err := c.Bind(input); err != nil {
		return errors.WithStack(domainerrors.ErrMissingCredentials)
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(domainerrors.ErrMissingCredentials)
	}

	if _, err := h.uc.Login(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Send(c, http.StatusOK, "Login successful")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Send(c, http.StatusOK, "ok")
}
