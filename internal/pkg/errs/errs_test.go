package errs_test

import (
	"errors"
	"testing"

	"stockrequest/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("lineId", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("warehouse")

		assert.Equal(t, "warehouse", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: warehouse", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("company mismatch")
		err := errs.NewValueIsInvalidErrorWithCause("warehouse", cause)

		assert.Equal(t, "warehouse", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: warehouse (cause: company mismatch)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 150, 0, 120)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 120, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 150 is quantity, min value is 0, max value is 120", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("quantity", -5, 0, 100, cause)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 100, err.Max)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is quantity, min value is 0, max value is 100 (cause: validation failed)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("requestedBy")

		assert.Equal(t, "requestedBy", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: requestedBy", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("requestedBy", cause)

		assert.Equal(t, "requestedBy", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: requestedBy (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestVersionIsInvalidError(t *testing.T) {
	t.Run("NewVersionIsInvalidError", func(t *testing.T) {
		cause := errors.New("row was updated concurrently")
		err := errs.NewVersionIsInvalidError("order", cause)

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "version is invalid: order (cause: row was updated concurrently)", err.Error())
		assert.Equal(t, errs.ErrVersionIsInvalid, err.Unwrap())
	})

	t.Run("NewVersionIsInvalidErrorWithCause", func(t *testing.T) {
		err := errs.NewVersionIsInvalidErrorWithCause("order")

		assert.Equal(t, "order", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "version is invalid: order", err.Error())
		assert.Equal(t, errs.ErrVersionIsInvalid, err.Unwrap())
	})
}

func TestUserError(t *testing.T) {
	t.Run("NewUserError", func(t *testing.T) {
		err := errs.NewUserError("only orders in draft state can be deleted")

		assert.Equal(t, "only orders in draft state can be deleted", err.Message)
		require.NoError(t, err.Cause)
		assert.Equal(t, "user action required: only orders in draft state can be deleted", err.Error())
		assert.Equal(t, errs.ErrUserAction, err.Unwrap())
	})

	t.Run("NewUserErrorWithCause", func(t *testing.T) {
		cause := errs.NewAuthorizationError("create stock request order")
		err := errs.NewUserErrorWithCause("please contact your administrator", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"user action required: please contact your administrator "+
				"(cause: authorization failed: create stock request order)",
			err.Error())
		require.ErrorIs(t, err, errs.ErrUserAction)
	})
}

func TestAuthorizationError(t *testing.T) {
	t.Run("NewAuthorizationError", func(t *testing.T) {
		err := errs.NewAuthorizationError("read warehouse")

		assert.Equal(t, "read warehouse", err.Operation)
		require.NoError(t, err.Cause)
		assert.Equal(t, "authorization failed: read warehouse", err.Error())
		assert.Equal(t, errs.ErrAuthorization, err.Unwrap())
	})

	t.Run("NewAuthorizationErrorWithCause", func(t *testing.T) {
		cause := errors.New("row level security")
		err := errs.NewAuthorizationErrorWithCause("read warehouse", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "authorization failed: read warehouse (cause: row level security)", err.Error())
		assert.Equal(t, errs.ErrAuthorization, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrVersionIsInvalid)
		require.Error(t, errs.ErrUserAction)
		require.Error(t, errs.ErrAuthorization)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "version is invalid", errs.ErrVersionIsInvalid.Error())
		assert.Equal(t, "user action required", errs.ErrUserAction.Error())
		assert.Equal(t, "authorization failed", errs.ErrAuthorization.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		objectNotFoundErr := errs.NewObjectNotFoundError("orderId", "123")
		require.ErrorIs(t, objectNotFoundErr, errs.ErrObjectNotFound)

		valueInvalidErr := errs.NewValueIsInvalidError("warehouse")
		require.ErrorIs(t, valueInvalidErr, errs.ErrValueIsInvalid)

		valueOutOfRangeErr := errs.NewValueIsOutOfRangeError("quantity", 150, 0, 120)
		require.ErrorIs(t, valueOutOfRangeErr, errs.ErrValueIsOutOfRange)

		valueRequiredErr := errs.NewValueIsRequiredError("requestedBy")
		require.ErrorIs(t, valueRequiredErr, errs.ErrValueIsRequired)

		versionInvalidErr := errs.NewVersionIsInvalidError("order", errors.New("test"))
		require.ErrorIs(t, versionInvalidErr, errs.ErrVersionIsInvalid)

		userErr := errs.NewUserError("cannot delete confirmed order")
		require.ErrorIs(t, userErr, errs.ErrUserAction)

		authErr := errs.NewAuthorizationError("create order")
		require.ErrorIs(t, authErr, errs.ErrAuthorization)
	})
}
