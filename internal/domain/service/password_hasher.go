// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Compare reports whether password matches hash. A mismatch, including an empty password,
	// is (false, nil); a hash that cannot be parsed is (false, domainerrors.ErrMalformedHash).
	Compare(password, hash string) (bool, error)
}
