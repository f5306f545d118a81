package entity

// PlainPassword is a password that has passed the password policy.
// Only the policy validator constructs one; only the hasher consumes one.
type PlainPassword string

// PasswordHash is the stored, one-way transformed form of a PlainPassword.
type PasswordHash string

// String hides the plaintext from accidental formatting.
func (PlainPassword) String() string {
	return "[REDACTED]"
}
