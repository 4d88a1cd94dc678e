package queries_test

import (
	"testing"

	"stockrequest/internal/core/application/usecases/queries"
	"stockrequest/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetUncompletedOrdersQuery(t *testing.T) {
	t.Run("should create valid query", func(t *testing.T) {
		query := queries.NewGetUncompletedOrdersQuery()
		assert.NoError(t, query.Validate())
	})

	t.Run("should reject unconstructed query", func(t *testing.T) {
		var query queries.GetUncompletedOrdersQuery
		assert.ErrorIs(t, query.Validate(), queries.ErrGetUncompletedOrdersQueryIsNotConstructed)
	})
}

func TestNewGetOrderSummaryQuery(t *testing.T) {
	t.Run("should create valid query", func(t *testing.T) {
		orderID := kernel.NewUUID()
		query, err := queries.NewGetOrderSummaryQuery(orderID)
		require.NoError(t, err)
		assert.NoError(t, query.Validate())
		assert.True(t, query.OrderID().IsEqual(orderID))
	})

	t.Run("should fail on empty order id", func(t *testing.T) {
		_, err := queries.NewGetOrderSummaryQuery(kernel.UUID{})
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("should reject unconstructed query", func(t *testing.T) {
		var query queries.GetOrderSummaryQuery
		assert.ErrorIs(t, query.Validate(), queries.ErrGetOrderSummaryQueryIsNotConstructed)
	})
}

func TestNewGetOrderPickingsQuery(t *testing.T) {
	t.Run("should create valid query", func(t *testing.T) {
		orderID := kernel.NewUUID()
		query, err := queries.NewGetOrderPickingsQuery(orderID)
		require.NoError(t, err)
		assert.NoError(t, query.Validate())
		assert.True(t, query.OrderID().IsEqual(orderID))
	})

	t.Run("should fail on empty order id", func(t *testing.T) {
		_, err := queries.NewGetOrderPickingsQuery(kernel.UUID{})
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestNewGetOrderMovesQuery(t *testing.T) {
	t.Run("should create valid query", func(t *testing.T) {
		orderID := kernel.NewUUID()
		query, err := queries.NewGetOrderMovesQuery(orderID)
		require.NoError(t, err)
		assert.NoError(t, query.Validate())
		assert.True(t, query.OrderID().IsEqual(orderID))
	})

	t.Run("should fail on empty order id", func(t *testing.T) {
		_, err := queries.NewGetOrderMovesQuery(kernel.UUID{})
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("should reject unconstructed query", func(t *testing.T) {
		var query queries.GetOrderMovesQuery
		assert.ErrorIs(t, query.Validate(), queries.ErrGetOrderMovesQueryIsNotConstructed)
	})
}
