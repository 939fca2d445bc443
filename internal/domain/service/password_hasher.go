// Package service defines interfaces for core, stateless domain logic.
package service

// PasswordHasher abstracts the one-way credential hashing scheme so the
// domain never touches a concrete algorithm. Implementations must use a
// computationally expensive function with a fresh random salt per hash.
type PasswordHasher interface {
	// Hash derives a salted, one-way hash from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether a plaintext password matches a stored hash.
	Check(password, hash string) bool
}
