// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the sole entity in the system: a persisted user identity keyed
// by a globally unique email address. It is created exactly once through a
// successful signup and never updated or deleted afterwards.
type Account struct {
	ID           uuid.UUID // Surrogate key generated by the store.
	FullName     string    // Display name supplied at signup, required.
	Company      string    // Optional company/organisation name, may be empty.
	Email        string    // Login identifier, unique across all accounts, case-sensitive as stored.
	PasswordHash string    // bcrypt-derived value, never the plaintext password.
	CreatedAt    time.Time // Set by the store at creation, immutable thereafter.
}
