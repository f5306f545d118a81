package auth

import (
	"unicode"
	"unicode/utf8"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/service"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 100
)

// Rule names reported in a password validation error.
const (
	RuleMinLength = "must be at least 8 characters long"
	RuleMaxLength = "must be at most 100 characters long"
	RuleLowercase = "must contain at least one lowercase letter"
	RuleUppercase = "must contain at least one uppercase letter"
	RuleDigit     = "must contain at least one number"
	RuleSpecial   = "must contain at least one special character"
)

type passwordPolicy struct{}

// NewPasswordPolicy returns the composition policy every new password must satisfy.
func NewPasswordPolicy() service.PasswordPolicy {
	return passwordPolicy{}
}

func (passwordPolicy) Validate(candidate string) (entity.PlainPassword, error) {
	var broken []string

	switch n := utf8.RuneCountInString(candidate); {
	case n < minPasswordLength:
		broken = append(broken, RuleMinLength)
	case n > maxPasswordLength:
		broken = append(broken, RuleMaxLength)
	}

	if !hasLowercase(candidate) {
		broken = append(broken, RuleLowercase)
	}
	if !hasUppercase(candidate) {
		broken = append(broken, RuleUppercase)
	}
	if !hasDigits(candidate) {
		broken = append(broken, RuleDigit)
	}
	if !hasSpecialChars(candidate) {
		broken = append(broken, RuleSpecial)
	}

	if len(broken) > 0 {
		return "", domainerrors.NewValidationError("password", broken...)
	}

	return entity.PlainPassword(candidate), nil
}

func hasLowercase(s string) bool {
	for _, r := range s {
		if unicode.IsLower(r) {
			return true
		}
	}

	return false
}

func hasUppercase(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}

	return false
}

func hasDigits(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}

	return false
}

// hasSpecialChars treats any visible rune that is neither a letter nor a digit as special.
func hasSpecialChars(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r) && unicode.IsPrint(r) {
			return true
		}
	}

	return false
}
