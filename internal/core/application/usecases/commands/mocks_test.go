package commands_test

import (
	"context"
	"errors"

	"stockrequest/internal/core/application/usecases/commands"
	"stockrequest/internal/core/domain/model/kernel"
	"stockrequest/internal/core/domain/model/order"
	"stockrequest/internal/core/domain/model/product"
	"stockrequest/internal/core/domain/model/template"
	"stockrequest/internal/core/domain/model/warehouse"
	"stockrequest/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, h *order.OrderHeader) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, h *order.OrderHeader) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(_ context.Context, _ kernel.UUID) (*order.OrderHeader, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.OrderHeader, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.OrderHeader), args.Error(1)
}

func (m *MockOrderRepository) GetAllInOpenStatus(_ context.Context) ([]*order.OrderHeader, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTemplateRepository struct{ mock.Mock }

func (m *MockTemplateRepository) Add(_ context.Context, _ *template.Template) error {
	return errors.New("not implemented in mock")
}

func (m *MockTemplateRepository) Get(ctx context.Context, id kernel.UUID) (*template.Template, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*template.Template), args.Error(1)
}

func (m *MockTemplateRepository) GetAll(_ context.Context) ([]*template.Template, error) {
	return nil, errors.New("not implemented in mock")
}

type MockAuditLog struct{ mock.Mock }

func (m *MockAuditLog) Record(ctx context.Context, orderID kernel.UUID, changes []order.StatusChange) error {
	args := m.Called(ctx, orderID, changes)
	return args.Error(0)
}

type MockFulfillmentService struct{ mock.Mock }

func (m *MockFulfillmentService) ConfirmLine(ctx context.Context, line *order.RequestLine) error {
	args := m.Called(ctx, line)
	return args.Error(0)
}

func (m *MockFulfillmentService) CancelLine(ctx context.Context, line *order.RequestLine) error {
	args := m.Called(ctx, line)
	return args.Error(0)
}

func (m *MockFulfillmentService) ResetLine(ctx context.Context, line *order.RequestLine) error {
	args := m.Called(ctx, line)
	return args.Error(0)
}

func (m *MockFulfillmentService) GetPickingsOfLines(_ context.Context, _ []kernel.UUID) ([]ports.Picking, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockFulfillmentService) GetMovesOfLines(_ context.Context, _ []kernel.UUID) ([]ports.Move, error) {
	return nil, errors.New("not implemented in mock")
}

type MockGroupingKeyFactory struct{ mock.Mock }

func (m *MockGroupingKeyFactory) Create(ctx context.Context, name string) (order.GroupingKey, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(order.GroupingKey), args.Error(1)
}

type MockSequenceGenerator struct{ mock.Mock }

func (m *MockSequenceGenerator) NextName(ctx context.Context, sequenceKey string) (string, error) {
	args := m.Called(ctx, sequenceKey)
	return args.String(0), args.Error(1)
}

type MockSessionContext struct{ mock.Mock }

func (m *MockSessionContext) CurrentUser(ctx context.Context) (kernel.UUID, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

func (m *MockSessionContext) CurrentCompany(ctx context.Context) (kernel.UUID, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

type MockWarehouseDirectory struct{ mock.Mock }

func (m *MockWarehouseDirectory) GetWarehouse(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*warehouse.Warehouse), args.Error(1)
}

func (m *MockWarehouseDirectory) GetWarehouseOwningLocation(
	ctx context.Context, locationID kernel.UUID,
) (*warehouse.Warehouse, error) {
	args := m.Called(ctx, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*warehouse.Warehouse), args.Error(1)
}

func (m *MockWarehouseDirectory) GetFirstWarehouseOfCompany(
	ctx context.Context, companyID kernel.UUID,
) (*warehouse.Warehouse, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*warehouse.Warehouse), args.Error(1)
}

func (m *MockWarehouseDirectory) GetLocation(
	ctx context.Context, locationID kernel.UUID,
) (*warehouse.StockLocation, error) {
	args := m.Called(ctx, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*warehouse.StockLocation), args.Error(1)
}

type MockProductCatalog struct{ mock.Mock }

func (m *MockProductCatalog) GetVariant(ctx context.Context, id kernel.UUID) (*product.Variant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Variant), args.Error(1)
}

func (m *MockProductCatalog) GetActiveVariantsOfTemplates(
	ctx context.Context, templateIDs []kernel.UUID,
) ([]*product.Variant, error) {
	args := m.Called(ctx, templateIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Variant), args.Error(1)
}

type MockLifecycleUoW struct{ mock.Mock }

func (m *MockLifecycleUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLifecycleUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLifecycleUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLifecycleUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockLifecycleUoW) AuditLog() ports.AuditLog {
	args := m.Called()
	return args.Get(0).(ports.AuditLog)
}

func (m *MockLifecycleUoW) FulfillmentService() ports.FulfillmentService {
	args := m.Called()
	return args.Get(0).(ports.FulfillmentService)
}

func (m *MockLifecycleUoW) GroupingKeyFactory() ports.GroupingKeyFactory {
	args := m.Called()
	return args.Get(0).(ports.GroupingKeyFactory)
}

type MockLifecycleUoWFactory struct{ mock.Mock }

func (m *MockLifecycleUoWFactory) Create() commands.LifecycleUoW {
	args := m.Called()
	return args.Get(0).(commands.LifecycleUoW)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderUoW) AuditLog() ports.AuditLog {
	args := m.Called()
	return args.Get(0).(ports.AuditLog)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCreateOrderUoW struct{ mock.Mock }

func (m *MockCreateOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCreateOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCreateOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCreateOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockCreateOrderUoW) SequenceGenerator() ports.SequenceGenerator {
	args := m.Called()
	return args.Get(0).(ports.SequenceGenerator)
}

type MockCreateOrderUoWFactory struct{ mock.Mock }

func (m *MockCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateOrderUoW)
}

type MockTemplateUoW struct{ mock.Mock }

func (m *MockTemplateUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTemplateUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTemplateUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTemplateUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockTemplateUoW) TemplateRepository() ports.TemplateRepository {
	args := m.Called()
	return args.Get(0).(ports.TemplateRepository)
}

type MockTemplateUoWFactory struct{ mock.Mock }

func (m *MockTemplateUoWFactory) Create() commands.TemplateUoW {
	args := m.Called()
	return args.Get(0).(commands.TemplateUoW)
}
