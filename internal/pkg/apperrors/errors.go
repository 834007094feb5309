// internal/pkg/apperrors/errors.go
package apperrors

import (
	"errors"
	"fmt"
)

// Cart session errors
var (
	// ErrMissingCart is returned when an operation requires an existing
	// cart session and no cart id was supplied.
	ErrMissingCart = errors.New("no cart found for this session")

	// ErrItemNotFound is returned when a cart mutation targets a
	// merchandise id that has no line in the cart.
	ErrItemNotFound = errors.New("item not found in cart")
)

// Workflow errors
var (
	// ErrDuplicateReturn is returned when a return submission covers an
	// item that an existing non-rejected return already covers.
	ErrDuplicateReturn = errors.New("a return for one or more of these items has already been submitted")

	// ErrAllItemsReviewed is returned when every item in a review
	// submission was already reviewed by the customer.
	ErrAllItemsReviewed = errors.New("you have already reviewed all of these items")

	// ErrLastUser is returned when deleting a team user would leave no
	// accounts able to sign in.
	ErrLastUser = errors.New("cannot delete the last remaining user")

	// ErrProtectedTemplate is returned when deleting a system email template.
	ErrProtectedTemplate = errors.New("this template is required by the system and cannot be deleted")
)

// CartCreationError is returned when the commerce gateway fails to create
// a new cart resource.
type CartCreationError struct {
	Err error
}

func (e *CartCreationError) Error() string {
	return fmt.Sprintf("failed to create cart: %v", e.Err)
}

func (e *CartCreationError) Unwrap() error { return e.Err }

// CartMutationError is returned when a cart line mutation fails at the gateway.
type CartMutationError struct {
	Op  string
	Err error
}

func (e *CartMutationError) Error() string {
	return fmt.Sprintf("cart %s failed: %v", e.Op, e.Err)
}

func (e *CartMutationError) Unwrap() error { return e.Err }

// CartFetchError is returned when the remote cart cannot be read.
type CartFetchError struct {
	CartID string
	Err    error
}

func (e *CartFetchError) Error() string {
	return fmt.Sprintf("failed to fetch cart %s: %v", e.CartID, e.Err)
}

func (e *CartFetchError) Unwrap() error { return e.Err }

// ValidationError carries a message that is safe to show to the end user.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidation creates a ValidationError with a formatted message.
func NewValidation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError is returned when a stored resource does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// UnauthorizedError is returned when the authorization gate rejects an
// action before any side effect executes.
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "unauthorized"
}

// IsUserSafe reports whether err carries a message that may be surfaced to
// the client. Infrastructure failures are excluded so internal detail never
// leaks; callers log those and return a generic message instead.
func IsUserSafe(err error) bool {
	var validation *ValidationError
	var notFound *NotFoundError
	var unauthorized *UnauthorizedError
	switch {
	case errors.Is(err, ErrMissingCart),
		errors.Is(err, ErrItemNotFound),
		errors.Is(err, ErrDuplicateReturn),
		errors.Is(err, ErrAllItemsReviewed),
		errors.Is(err, ErrLastUser),
		errors.Is(err, ErrProtectedTemplate):
		return true
	case errors.As(err, &validation), errors.As(err, &notFound), errors.As(err, &unauthorized):
		return true
	}
	return false
}
