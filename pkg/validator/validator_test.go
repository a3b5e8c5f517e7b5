package validator

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Difficulty string `json:"difficulty" validate:"required,oneof=easy medium hard"`
	Confidence int    `json:"confidence,omitempty" validate:"omitempty,min=1,max=10"`
	Category   string `query:"category" validate:"omitempty,max=3"`
}

func TestValidate_OK(t *testing.T) {
	v := New()
	assert.NoError(t, v.Validate(&sample{Difficulty: "easy", Confidence: 7}))
	assert.NoError(t, v.Validate(&sample{Difficulty: "hard"}))
}

func TestValidate_FieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&sample{Difficulty: "extreme", Confidence: 11, Category: "toolong"})
	require.Error(t, err)

	var verr *Error
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 3)

	assert.Contains(t, err.Error(), "difficulty must be one of [easy medium hard]")
	assert.Contains(t, err.Error(), "confidence must be at most 10")
	assert.Contains(t, err.Error(), "category must be at most 3")

	var fieldErrs validator.ValidationErrors
	assert.True(t, errors.As(err, &fieldErrs))
}

func TestValidate_Required(t *testing.T) {
	err := New().Validate(&sample{})
	require.Error(t, err)
	assert.Equal(t, "difficulty is required", err.Error())
}
