package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "villa-service/pkg/errors"
)

type sample struct {
	No     int     `validate:"required,gt=0"`
	Count  int     `validate:"gte=0"`
	Name   string  `validate:"required,max=5"`
	Code   string  `validate:"omitempty,min=2"`
	Link   string  `validate:"omitempty,url"`
	Rate   float64 `validate:"gt=0"`
	Letter string  `validate:"omitempty,alpha"`
}

func TestFormatValidationError(t *testing.T) {
	v := NewValidator()

	err := FormatValidationError(v.Struct(sample{
		No:     0,
		Count:  -1,
		Name:   "toolong",
		Code:   "x",
		Link:   "not a url",
		Rate:   0,
		Letter: "123",
	}))
	require.Error(t, err)

	var ve *apperrors.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{
		"No is required",
		"Count must be at least 0",
		"Name must be at most 5 characters",
		"Code must be at least 2 characters",
		"Link must be a valid URL",
		"Rate must be greater than 0",
		"Letter is invalid",
	}, ve.Messages)
}

func TestFormatValidationError_PassesThroughOtherErrors(t *testing.T) {
	other := errors.New("boom")
	assert.Equal(t, other, FormatValidationError(other))
	assert.NoError(t, NewValidator().Struct(sample{No: 1, Name: "ok", Rate: 1}))
}
