// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "blog/internal/domain/entity"

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a policy-approved password.
	Hash(password entity.PlainPassword) (entity.PasswordHash, error)

	// Check compares a login candidate with a stored hash. It never errors;
	// any mismatch or malformed hash reports false.
	Check(candidate string, hash entity.PasswordHash) bool
}

// PasswordPolicy is the only producer of entity.PlainPassword, so a value
// can reach the hasher only after it has passed the composition rules.
type PasswordPolicy interface {
	// Validate returns the candidate unchanged as a PlainPassword, or a
	// *domainerrors.ValidationError naming every unmet rule.
	Validate(candidate string) (entity.PlainPassword, error)
}
