package validator

import (
	stdErrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/fireflies-bridge/errors"
)

type sample struct {
	ProjectID string `json:"project_id" validate:"required"`
	URL       string `json:"google_meet_url" validate:"required"`
	Duration  *int   `json:"duration,omitempty" validate:"omitempty,min=1"`
}

func TestValidate_MissingFieldUsesJSONName(t *testing.T) {
	err := New().Validate(&sample{ProjectID: "P1"})

	var appErr errors.AppError
	require.True(t, stdErrors.As(err, &appErr))
	assert.Equal(t, errors.ErrorCode_MISSING_FIELD, appErr.Code)
	assert.Equal(t, "Missing required field: google_meet_url", appErr.Message)
}

func TestValidate_OtherRule(t *testing.T) {
	zero := 0
	err := New().Validate(&sample{ProjectID: "P1", URL: "u", Duration: &zero})

	var appErr errors.AppError
	require.True(t, stdErrors.As(err, &appErr))
	assert.Equal(t, errors.ErrorCode_INVALID_ARGUMENT, appErr.Code)
	assert.Equal(t, "duration", appErr.Details["field"])
}

func TestValidate_OK(t *testing.T) {
	assert.NoError(t, New().Validate(&sample{ProjectID: "P1", URL: "u"}))
}
