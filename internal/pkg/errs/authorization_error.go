package errs

import (
	"errors"
	"fmt"
)

// ErrAuthorization is the sentinel for operations the acting user is not
// allowed to perform. Collaborators raise it; most call sites let it
// propagate unmodified.
var ErrAuthorization = errors.New("authorization failed")

// AuthorizationError reports that the acting user lacks the rights for
// Operation.
type AuthorizationError struct {
	Operation string
	Cause     error
}

// NewAuthorizationError creates an AuthorizationError without a cause.
func NewAuthorizationError(operation string) *AuthorizationError {
	return &AuthorizationError{Operation: operation}
}

// NewAuthorizationErrorWithCause creates an AuthorizationError wrapping the
// underlying cause.
func NewAuthorizationErrorWithCause(operation string, cause error) *AuthorizationError {
	return &AuthorizationError{Operation: operation, Cause: cause}
}

func (e *AuthorizationError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrAuthorization, e.Operation, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrAuthorization, e.Operation))
}

func (e *AuthorizationError) Unwrap() error {
	return ErrAuthorization
}
