package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,phone"`
	Role  string `json:"role,omitempty" validate:"omitempty,role"`
}

func TestCustomValidator(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sample{Email: "a@example.com", Phone: "9876543210"}))
	require.NoError(t, v.Validate(&sample{Email: "a@example.com", Phone: "919876543210", Role: "INSTITUTE"}))

	err := v.Validate(&sample{Email: "nope", Phone: "12-34", Role: "ADMIN"})
	require.Error(t, err)

	fields := FieldErrors(err)
	got := map[string]string{}
	for _, f := range fields {
		got[f.Field] = f.Rule
	}
	assert.Equal(t, map[string]string{"email": "email", "phone": "phone", "role": "role"}, got)
}

func TestCustomValidator_PhoneLength(t *testing.T) {
	v := New()

	assert.Error(t, v.Validate(&sample{Email: "a@example.com", Phone: "123456789"}))
	assert.Error(t, v.Validate(&sample{Email: "a@example.com", Phone: "1234567890123456"}))
}

func TestFieldErrors_NonValidationError(t *testing.T) {
	assert.Nil(t, FieldErrors(assert.AnError))
}
