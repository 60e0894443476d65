package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flyoffice/directory/internal/shared/errors"
)

type receiptRequest struct {
	Email string `json:"email" validate:"required,email"`
	Note  string `json:"note" validate:"max=5"`
}

func TestValidateStruct(t *testing.T) {
	require.NoError(t, ValidateStruct(receiptRequest{Email: "a@b.co"}))

	err := ValidateStruct(receiptRequest{Note: "too long"})
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, []errors.FieldError{
		{Field: "email", Message: "is required"},
		{Field: "note", Message: "must be at most 5 characters long"},
	}, appErr.Fields)
}
