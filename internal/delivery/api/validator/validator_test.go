package validator

import (
	"testing"

	domainerrors "blog/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Email     string  `json:"email" validate:"required,email,min=8,max=100"`
	FirstName string  `json:"firstName" validate:"required,notblank,max=100"`
	LastName  *string `json:"lastName" validate:"omitnil,notblank,max=100"`
	JobTitle  *string `json:"jobTitle" validate:"omitempty,max=5"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()
	long := "engineer"
	blank := "   "
	lovelace := "Lovelace"

	tests := []struct {
		name      string
		input     signupForm
		wantField string
		wantRule  string
	}{
		{name: "valid", input: signupForm{Email: "ada@example.com", FirstName: "Ada"}},
		{name: "missing email", input: signupForm{FirstName: "Ada"}, wantField: "email", wantRule: "is required"},
		{name: "malformed email", input: signupForm{Email: "not-an-email", FirstName: "Ada"}, wantField: "email", wantRule: "must be a valid email address"},
		{name: "short email", input: signupForm{Email: "a@b.io", FirstName: "Ada"}, wantField: "email", wantRule: "must be at least 8 characters long"},
		{name: "blank first name", input: signupForm{Email: "ada@example.com", FirstName: " \t "}, wantField: "firstName", wantRule: "must not be blank"},
		{name: "blank pointer", input: signupForm{Email: "ada@example.com", FirstName: "Ada", LastName: &blank}, wantField: "lastName", wantRule: "must not be blank"},
		{name: "set pointer", input: signupForm{Email: "ada@example.com", FirstName: "Ada", LastName: &lovelace}},
		{name: "pointer too long", input: signupForm{Email: "ada@example.com", FirstName: "Ada", JobTitle: &long}, wantField: "jobTitle", wantRule: "must be at most 5 characters long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.input)
			if tt.wantField == "" {
				assert.NoError(t, err)

				return
			}

			var validationErr *domainerrors.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.wantField, validationErr.Field)
			assert.Contains(t, validationErr.Rules, tt.wantRule)
		})
	}
}
