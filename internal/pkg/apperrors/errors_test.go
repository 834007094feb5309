// internal/pkg/apperrors/errors_test.go
package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUserSafe(t *testing.T) {
	safe := []error{
		ErrMissingCart,
		ErrItemNotFound,
		ErrDuplicateReturn,
		ErrAllItemsReviewed,
		ErrLastUser,
		ErrProtectedTemplate,
		NewValidation("quantity must be positive"),
		&NotFoundError{Resource: "return", ID: "abc"},
		&UnauthorizedError{Message: "invalid email or password"},
		fmt.Errorf("wrapped: %w", ErrMissingCart),
	}
	for _, err := range safe {
		assert.True(t, IsUserSafe(err), err.Error())
	}

	unsafe := []error{
		errors.New("pq: connection refused"),
		&CartCreationError{Err: errors.New("gateway timeout")},
		&CartMutationError{Op: "add", Err: errors.New("boom")},
		&CartFetchError{CartID: "c1", Err: errors.New("boom")},
	}
	for _, err := range unsafe {
		assert.False(t, IsUserSafe(err), err.Error())
	}
}

func TestCartErrorsUnwrap(t *testing.T) {
	cause := errors.New("gateway down")

	assert.ErrorIs(t, &CartCreationError{Err: cause}, cause)
	assert.ErrorIs(t, &CartMutationError{Op: "remove", Err: cause}, cause)
	assert.ErrorIs(t, &CartFetchError{CartID: "c1", Err: cause}, cause)
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "return not found: r-1", (&NotFoundError{Resource: "return", ID: "r-1"}).Error())
	assert.Equal(t, "unauthorized", (&UnauthorizedError{}).Error())
	assert.Equal(t, "cart add failed: boom", (&CartMutationError{Op: "add", Err: errors.New("boom")}).Error())
}
