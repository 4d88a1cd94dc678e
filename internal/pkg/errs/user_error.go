package errs

import (
	"errors"
	"fmt"
)

// ErrUserAction is the sentinel for failures the acting user can correct
// themselves. Handlers surface these without retry semantics.
var ErrUserAction = errors.New("user action required")

// UserError reports a user-correctable failure with an actionable message,
// such as deleting a non-draft order or lacking creation rights.
type UserError struct {
	Message string
	Cause   error
}

// NewUserError creates a UserError without a cause.
func NewUserError(message string) *UserError {
	return &UserError{Message: message}
}

// NewUserErrorWithCause creates a UserError wrapping the underlying cause.
func NewUserErrorWithCause(message string, cause error) *UserError {
	return &UserError{Message: message, Cause: cause}
}

func (e *UserError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrUserAction, e.Message, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrUserAction, e.Message))
}

func (e *UserError) Unwrap() error {
	return ErrUserAction
}
