package validator

import (
	"testing"

	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_Validate(t *testing.T) {
	v := New()

	t.Run("valid input", func(t *testing.T) {
		err := v.Validate(&usecase.CreateUserInput{Name: "Ana", Email: "ana@example.com", Password: "s3cret-pass"})
		assert.NoError(t, err)
	})

	t.Run("reports json field names", func(t *testing.T) {
		err := v.Validate(&usecase.CreateUserInput{Name: "Ana", Email: "not-an-email", Password: "short"})
		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Contains(t, appErr.Details(), "email must be a valid email")
		assert.Contains(t, appErr.Details(), "password must be at least 8 characters")
	})

	t.Run("nested address fields", func(t *testing.T) {
		input := &usecase.CreateLoveDecorationInput{
			Name:      "Amor em Cena",
			Contact:   "11999990000",
			Instagram: "@amoremcena",
			Address:   usecase.AddressInput{State: "SP"},
		}

		err := v.Validate(input)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Contains(t, appErr.Details(), "address.city is required")
	})
}
