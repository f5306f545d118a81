package auth

import (
	"strings"
	"testing"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordPolicy_Accepts(t *testing.T) {
	policy := NewPasswordPolicy()

	validPasswords := []string{
		"Abcdef1!",
		"StrongPass123!",
		"MySecure@Pass1",
		"Valid Phrase 2024#",
		strings.Repeat("aA1$", 25), // exactly 100 characters
	}

	for _, password := range validPasswords {
		got, err := policy.Validate(password)
		require.NoError(t, err, "Expected no error for valid password: %s", password)
		assert.Equal(t, entity.PlainPassword(password), got, "password must pass through unchanged")
	}
}

func TestPasswordPolicy_Rejects(t *testing.T) {
	policy := NewPasswordPolicy()

	testCases := []struct {
		password string
		rules    []string
	}{
		{"Ab1!", []string{RuleMinLength}},
		{strings.Repeat("aA1$", 25) + "x", []string{RuleMaxLength}},
		{"PASSWORD123!", []string{RuleLowercase}},
		{"password123!", []string{RuleUppercase}},
		{"PasswordABC!", []string{RuleDigit}},
		{"Password123", []string{RuleSpecial}},
		{"", []string{RuleMinLength, RuleLowercase, RuleUppercase, RuleDigit, RuleSpecial}},
		{"abcdefgh", []string{RuleUppercase, RuleDigit, RuleSpecial}},
	}

	for _, tc := range testCases {
		t.Run(tc.password, func(t *testing.T) {
			got, err := policy.Validate(tc.password)
			require.Error(t, err)
			assert.Empty(t, got)

			validationErr, ok := errors.AsType[*domainerrors.ValidationError](err)
			require.True(t, ok)
			assert.Equal(t, "password", validationErr.Field)
			assert.Equal(t, tc.rules, validationErr.Rules)
		})
	}
}
