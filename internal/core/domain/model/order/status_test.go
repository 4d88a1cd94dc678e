package order_test

import (
	"fmt"
	"testing"

	"stockrequest/internal/core/domain/model/order"
	"stockrequest/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Draft))
		assert.Equal(t, 2, int(order.Open))
		assert.Equal(t, 3, int(order.Done))
		assert.Equal(t, 4, int(order.Cancelled))
	})

	t.Run("should have distinct values", func(t *testing.T) {
		statuses := []order.Status{
			order.Unknown,
			order.Draft,
			order.Open,
			order.Done,
			order.Cancelled,
		}

		for i, status1 := range statuses {
			for j, status2 := range statuses {
				if i != j {
					assert.NotEqual(t, status1, status2,
						"statuses at indices %d and %d should be different", i, j)
				}
			}
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Draft,
			order.Open,
			order.Done,
			order.Cancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				err := status.Validate()
				require.NoError(t, err)
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "status is invalid")
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Status(-1),
			order.Status(5),
			order.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "status is invalid")
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return correct names", func(t *testing.T) {
		assert.Equal(t, "Unknown", order.Unknown.String())
		assert.Equal(t, "Draft", order.Draft.String())
		assert.Equal(t, "Open", order.Open.String())
		assert.Equal(t, "Done", order.Done.String())
		assert.Equal(t, "Cancelled", order.Cancelled.String())
	})

	t.Run("should return Unknown for out-of-range values", func(t *testing.T) {
		assert.Equal(t, "Unknown", order.Status(-1).String())
		assert.Equal(t, "Unknown", order.Status(42).String())
	})
}

func TestStatus_Confirm(t *testing.T) {
	t.Run("should confirm draft order", func(t *testing.T) {
		newStatus, err := order.Draft.Confirm()

		require.NoError(t, err)
		assert.Equal(t, order.Open, newStatus)
	})

	t.Run("should reject confirming an already open order", func(t *testing.T) {
		_, err := order.Open.Confirm()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "Open is not a valid status to confirm")
	})

	t.Run("should reject confirming done and cancelled orders", func(t *testing.T) {
		for _, status := range []order.Status{order.Done, order.Cancelled} {
			_, err := status.Confirm()

			require.Error(t, err)
			assert.Contains(t, err.Error(), fmt.Sprintf("%s is not a valid status to confirm", status.String()))
		}
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("should cancel draft order", func(t *testing.T) {
		newStatus, err := order.Draft.Cancel()

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, newStatus)
	})

	t.Run("should cancel open order", func(t *testing.T) {
		newStatus, err := order.Open.Cancel()

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, newStatus)
	})

	t.Run("should reject cancelling done order", func(t *testing.T) {
		_, err := order.Done.Cancel()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "Done is not a valid status to cancel")
	})

	t.Run("should reject cancelling already cancelled order", func(t *testing.T) {
		_, err := order.Cancelled.Cancel()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Cancelled is not a valid status to cancel")
	})
}

func TestStatus_BackToDraft(t *testing.T) {
	t.Run("should reset open order to draft", func(t *testing.T) {
		newStatus, err := order.Open.BackToDraft()

		require.NoError(t, err)
		assert.Equal(t, order.Draft, newStatus)
	})

	t.Run("should reset cancelled order to draft", func(t *testing.T) {
		newStatus, err := order.Cancelled.BackToDraft()

		require.NoError(t, err)
		assert.Equal(t, order.Draft, newStatus)
	})

	t.Run("should reject resetting draft order", func(t *testing.T) {
		_, err := order.Draft.BackToDraft()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Draft is not a valid status to reset to draft")
	})

	t.Run("should reject resetting done order", func(t *testing.T) {
		_, err := order.Done.BackToDraft()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "Done is not a valid status to reset to draft")
	})
}

func TestStatus_Complete(t *testing.T) {
	t.Run("should complete from any status", func(t *testing.T) {
		for _, status := range []order.Status{order.Draft, order.Open, order.Done, order.Cancelled} {
			assert.Equal(t, order.Done, status.Complete())
		}
	})
}

func TestShippingPolicy_Validate(t *testing.T) {
	t.Run("should validate valid policies", func(t *testing.T) {
		require.NoError(t, order.ReceiveEachWhenAvailable.Validate())
		require.NoError(t, order.ReceiveAllAtOnce.Validate())
	})

	t.Run("should reject unknown policy", func(t *testing.T) {
		err := order.UnknownPolicy.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "shipping policy is invalid")
	})

	t.Run("should reject out-of-range policy", func(t *testing.T) {
		err := order.ShippingPolicy(7).Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "7 is not a valid shipping policy")
	})
}

func TestShippingPolicy_String(t *testing.T) {
	t.Run("should return correct names", func(t *testing.T) {
		assert.Equal(t, "ReceiveEachWhenAvailable", order.ReceiveEachWhenAvailable.String())
		assert.Equal(t, "ReceiveAllAtOnce", order.ReceiveAllAtOnce.String())
		assert.Equal(t, "Unknown", order.UnknownPolicy.String())
		assert.Equal(t, "Unknown", order.ShippingPolicy(-3).String())
	})
}
