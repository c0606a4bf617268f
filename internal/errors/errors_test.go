package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "subject"}
		assert.Equal(t, "subject not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "subject"}
		err2 := &NotFoundError{Entity: "subject"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "subject"}
		err2 := &NotFoundError{Entity: "prompt"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrSubjectNotFound, ErrSubjectNotFound))
		assert.False(t, errors.Is(ErrSubjectNotFound, ErrPromptNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrOrganizationNotFound))
		assert.False(t, IsNotFound(ErrInvalidSeverity))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "subject", Context: "with this email in the organization"}
		assert.Equal(t, "subject already exists with this email in the organization", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "subject"}
		assert.Equal(t, "subject already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "subject", Context: "in org"}
		err2 := &AlreadyExistsError{Entity: "subject", Context: "in org"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrSubjectExists))
		assert.False(t, IsAlreadyExists(ErrSubjectNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "invalid format"}
		assert.Equal(t, "validation error: email - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("email", "invalid")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrSubjectNotFound))
	})
}

func TestFindingsNotPersisted(t *testing.T) {
	t.Run("wrapped error keeps identity", func(t *testing.T) {
		wrapped := fmt.Errorf("%w: insert failed", ErrFindingsNotPersisted)
		assert.True(t, errors.Is(wrapped, ErrFindingsNotPersisted))
	})

	t.Run("distinct from other sentinels", func(t *testing.T) {
		assert.False(t, errors.Is(ErrFindingsNotPersisted, ErrInvalidSeverity))
	})
}
