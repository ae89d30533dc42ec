package helpers

import (
	"errors"
	"testing"

	"github.com/dtezcan/go-catalog/app/models/dto"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldMessages(t *testing.T, err error) map[string]string {
	t.Helper()
	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	return FormatValidationErrors(errs)
}

func TestValidatorRejectsNonPositiveUnitPrice(t *testing.T) {
	validate := NewValidator()
	categoryID := uint(1)

	for _, price := range []decimal.Decimal{decimal.NewFromInt(-5), decimal.Zero} {
		err := validate.Struct(dto.ProductRequest{
			Name:       "Laptop",
			UnitPrice:  price,
			CategoryID: &categoryID,
		})
		require.Error(t, err)
		messages := fieldMessages(t, err)
		assert.Equal(t, "UnitPrice must be greater than 0.", messages["UnitPrice"])
	}

	err := validate.Struct(dto.ProductRequest{
		Name:       "Laptop",
		UnitPrice:  decimal.NewFromInt(15000),
		CategoryID: &categoryID,
	})
	assert.NoError(t, err)
}

func TestValidatorBoundsUserScore(t *testing.T) {
	validate := NewValidator()

	request := func(score float64) dto.UserRequest {
		s := decimal.NewFromFloat(score)
		return dto.UserRequest{UserName: "luna", Password: "user", Score: &s}
	}

	err := validate.Struct(request(9))
	require.Error(t, err)
	messages := fieldMessages(t, err)
	assert.Equal(t, "Score must be 5 or less.", messages["Score"])

	err = validate.Struct(request(-1))
	require.Error(t, err)
	messages = fieldMessages(t, err)
	assert.Equal(t, "Score must be 0 or greater.", messages["Score"])

	assert.NoError(t, validate.Struct(request(4.7)))

	// a user without a score is fine
	assert.NoError(t, validate.Struct(dto.UserRequest{UserName: "luna", Password: "user"}))
}
