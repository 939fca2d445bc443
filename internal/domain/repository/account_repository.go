// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"doorman/internal/domain/entity"
)

// Domain-specific errors for credential persistence. The application layer
// handles these outcomes without depending on database-specific errors.
var (
	// ErrAccountNotFound is returned when no account matches the lookup email.
	ErrAccountNotFound = errors.New("account not found")

	// ErrDuplicateEmail is returned when an insert collides with the store's
	// unique index on email. The index, not the handler's pre-check, is the
	// authoritative uniqueness guarantee under concurrent signups.
	ErrDuplicateEmail = errors.New("email already registered")
)

// AccountRepository is the Credential Store collaborator: a durable store of
// Account records keyed by unique email.
type AccountRepository interface {
	// FindByEmail retrieves a single account by exact email match.
	// Returns ErrAccountNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create persists a new account. Returns ErrDuplicateEmail when the
	// store's unique constraint on email rejects the write.
	Create(ctx context.Context, account *entity.Account) error
}
