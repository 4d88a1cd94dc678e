// Package errs provides standardized error types for the stock request service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - UserError: For user-correctable failures with actionable guidance
//   - AuthorizationError: For operations the acting user may not perform
//   - Other specialized error types for specific validation failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// This standardized approach keeps error classification uniform: validation
// failures abort the triggering mutation, user errors carry guidance the
// caller can show verbatim, and authorization errors propagate unmodified
// except at the one boundary that rewraps them as user errors.
package errs
