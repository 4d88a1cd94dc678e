package commands_test

import (
	"context"
	"testing"

	"stockrequest/internal/core/application/usecases/commands"
	"stockrequest/internal/core/domain/model/kernel"
	"stockrequest/internal/core/domain/model/order"
	"stockrequest/internal/core/domain/model/template"
	"stockrequest/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func buildTemplate(t *testing.T, lineCount int) *template.Template {
	t.Helper()
	routeID := kernel.NewUUID()
	lines := make([]*template.TemplateLine, 0, lineCount)
	for i := 0; i < lineCount; i++ {
		line, err := template.NewTemplateLine(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), decimal.NewFromInt(int64(i+1)))
		require.NoError(t, err)
		lines = append(lines, line)
	}
	tpl, err := template.NewTemplate(kernel.NewUUID(), "Weekly restock", &routeID, lines)
	require.NoError(t, err)
	return tpl
}

func TestApplyTemplateCommandHandler_Handle_ReplacesLines(t *testing.T) {
	ctx := context.Background()
	header := buildDraftOrder(t, 1)
	previousLineID := header.Lines()[0].ID()
	tpl := buildTemplate(t, 2)
	cmd, err := commands.NewApplyTemplateCommand(header.ID(), tpl.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	templates := new(MockTemplateRepository)
	uow := new(MockTemplateUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TemplateRepository").Return(templates).Once(),
		templates.On("Get", ctx, tpl.ID()).Return(tpl, nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", ctx, header.ID()).Return(header, nil).Once(),
		repo.On("Update", ctx, header).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTemplateUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApplyTemplateCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	templates.AssertExpectations(t)
	uow.AssertExpectations(t)

	require.Len(t, header.Lines(), 2)
	require.NotNil(t, header.TemplateID())
	assert.True(t, header.TemplateID().IsEqual(tpl.ID()))
	for i, line := range header.Lines() {
		tplLine := tpl.Lines()[i]
		assert.False(t, line.ID().IsEqual(previousLineID))
		assert.True(t, line.ProductID().IsEqual(tplLine.ProductID()))
		assert.True(t, line.UnitID().IsEqual(tplLine.UnitID()))
		assert.True(t, line.Quantity().Equal(tplLine.Quantity()))
		require.NotNil(t, line.RouteID())
		assert.True(t, line.RouteID().IsEqual(*tpl.RouteID()))
		assert.True(t, line.OrderID().IsEqual(header.ID()))
		assert.Equal(t, header.Status(), line.Status())
		assert.True(t, line.CompanyID().IsEqual(header.CompanyID()))
		assert.Equal(t, header.ExpectedDate(), line.ExpectedDate())
	}
}

func TestApplyTemplateCommandHandler_Handle_TemplateNotFound(t *testing.T) {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	templateID := kernel.NewUUID()
	cmd, err := commands.NewApplyTemplateCommand(orderID, templateID)
	require.NoError(t, err)

	templates := new(MockTemplateRepository)
	uow := new(MockTemplateUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TemplateRepository").Return(templates).Once(),
		templates.On("Get", ctx, templateID).
			Return(nil, errs.NewObjectNotFoundError("templateID", templateID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTemplateUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApplyTemplateCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestApplyTemplateCommandHandler_Handle_KeepsStatusOfOpenOrder(t *testing.T) {
	ctx := context.Background()
	header := buildOpenOrder(t, 1)
	tpl := buildTemplate(t, 1)
	cmd, err := commands.NewApplyTemplateCommand(header.ID(), tpl.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	templates := new(MockTemplateRepository)
	uow := new(MockTemplateUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TemplateRepository").Return(templates).Once(),
		templates.On("Get", ctx, tpl.ID()).Return(tpl, nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", ctx, header.ID()).Return(header, nil).Once(),
		repo.On("Update", ctx, header).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTemplateUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApplyTemplateCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.Len(t, header.Lines(), 1)
	assert.Equal(t, order.Open, header.Lines()[0].Status())
}
