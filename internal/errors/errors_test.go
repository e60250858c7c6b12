package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/packlist/internal/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{"not found", errors.ErrNotFound, `template "Camp" not found`, `[NOT_FOUND] template "Camp" not found`},
		{"invalid input", errors.ErrInvalidInput, "empty item name", "[INVALID_INPUT] empty item name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.wantStr, err.Error())
			assert.NotNil(t, err.Details)
		})
	}
}

func TestWrap(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, errors.ErrPersistence, "save"))

	cause := stderrors.New("disk full")
	err := errors.Wrapf(cause, errors.ErrPersistence, "save %q", "Camp")
	require.NotNil(t, err)
	assert.Equal(t, `[PERSISTENCE] save "Camp": disk full`, err.Error())
	assert.True(t, stderrors.Is(err, cause))
}

func TestIsMatchesCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", errors.New(errors.ErrAlreadyExists, "dup"))

	assert.True(t, stderrors.Is(err, errors.New(errors.ErrAlreadyExists, "")))
	assert.False(t, stderrors.Is(err, errors.New(errors.ErrNotFound, "")))
	assert.Equal(t, errors.ErrAlreadyExists, errors.GetErrorCode(err))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
}

func TestFamilies(t *testing.T) {
	assert.True(t, errors.IsValidation(errors.New(errors.ErrInvalidInput, "")))
	assert.True(t, errors.IsValidation(errors.New(errors.ErrAlreadyExists, "")))
	assert.False(t, errors.IsValidation(errors.New(errors.ErrNotFound, "")))

	assert.True(t, errors.IsNotFound(errors.New(errors.ErrNotFound, "")))
	assert.True(t, errors.IsNotFound(errors.New(errors.ErrNoActiveTemplate, "")))

	assert.True(t, errors.IsPersistence(errors.Wrap(stderrors.New("x"), errors.ErrPersistence, "")))
	assert.False(t, errors.IsPersistence(nil))
}

func TestDetails(t *testing.T) {
	err := errors.New(errors.ErrNotFound, "missing").WithDetail("name", "Camp")
	assert.Equal(t, "Camp", errors.GetErrorDetails(err)["name"])
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}
