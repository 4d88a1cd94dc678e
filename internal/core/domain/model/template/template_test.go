package template_test

import (
	"testing"

	"stockrequest/internal/core/domain/model/kernel"
	"stockrequest/internal/core/domain/model/template"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTemplateLine(t *testing.T, quantity decimal.Decimal) *template.TemplateLine {
	t.Helper()
	line, err := template.NewTemplateLine(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), quantity)
	require.NoError(t, err)
	return line
}

func TestNewTemplate(t *testing.T) {
	t.Run("should create template with lines and route", func(t *testing.T) {
		id := kernel.NewUUID()
		routeID := kernel.NewUUID()
		lines := []*template.TemplateLine{
			buildTemplateLine(t, decimal.NewFromInt(5)),
			buildTemplateLine(t, decimal.NewFromInt(10)),
		}

		tpl, err := template.NewTemplate(id, "Weekly restock", &routeID, lines)

		require.NoError(t, err)
		require.NoError(t, tpl.Validate())
		assert.True(t, tpl.ID().IsEqual(id))
		assert.Equal(t, "Weekly restock", tpl.Name())
		require.NotNil(t, tpl.RouteID())
		assert.True(t, tpl.RouteID().IsEqual(routeID))
		assert.Len(t, tpl.Lines(), 2)
	})

	t.Run("should create template without route or lines", func(t *testing.T) {
		tpl, err := template.NewTemplate(kernel.NewUUID(), "Empty", nil, nil)

		require.NoError(t, err)
		assert.Nil(t, tpl.RouteID())
		assert.Empty(t, tpl.Lines())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		tpl, err := template.NewTemplate(kernel.NewUUID(), "", nil, nil)

		require.Error(t, err)
		assert.Nil(t, tpl)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		tpl, err := template.NewTemplate(invalidID, "Weekly restock", nil, nil)

		require.Error(t, err)
		assert.Nil(t, tpl)
	})

	t.Run("should fail with unconstructed line", func(t *testing.T) {
		var badLine template.TemplateLine

		tpl, err := template.NewTemplate(kernel.NewUUID(), "Weekly restock", nil,
			[]*template.TemplateLine{&badLine})

		require.Error(t, err)
		assert.Nil(t, tpl)
		assert.Equal(t, template.ErrTemplateLineIsNotConstructed, err)
	})
}

func TestTemplate_Validate(t *testing.T) {
	t.Run("should fail validation for nil template", func(t *testing.T) {
		var tpl *template.Template

		err := tpl.Validate()

		require.Error(t, err)
		assert.Equal(t, template.ErrTemplateIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value template", func(t *testing.T) {
		var tpl template.Template

		err := tpl.Validate()

		require.Error(t, err)
		assert.Equal(t, template.ErrTemplateIsNotConstructed, err)
	})
}

func TestNewTemplateLine(t *testing.T) {
	t.Run("should create line with fractional quantity", func(t *testing.T) {
		id := kernel.NewUUID()
		productID := kernel.NewUUID()
		unitID := kernel.NewUUID()
		quantity := decimal.RequireFromString("1.5")

		line, err := template.NewTemplateLine(id, productID, unitID, quantity)

		require.NoError(t, err)
		require.NoError(t, line.Validate())
		assert.True(t, line.ID().IsEqual(id))
		assert.True(t, line.ProductID().IsEqual(productID))
		assert.True(t, line.UnitID().IsEqual(unitID))
		assert.True(t, line.Quantity().Equal(quantity))
	})

	t.Run("should accept zero quantity", func(t *testing.T) {
		line, err := template.NewTemplateLine(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), decimal.Zero)

		require.NoError(t, err)
		assert.True(t, line.Quantity().IsZero())
	})

	t.Run("should fail with negative quantity", func(t *testing.T) {
		line, err := template.NewTemplateLine(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			decimal.NewFromInt(-2))

		require.Error(t, err)
		assert.Nil(t, line)
		assert.ErrorIs(t, err, template.ErrQuantityIsNegative)
	})

	t.Run("should fail with invalid UUIDs", func(t *testing.T) {
		var invalidID kernel.UUID

		line, err := template.NewTemplateLine(invalidID, invalidID, invalidID, decimal.NewFromInt(1))

		require.Error(t, err)
		assert.Nil(t, line)
		assert.Contains(t, err.Error(), "UUID must be created")
	})
}
