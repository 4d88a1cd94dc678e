package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "stockrequest/internal/adapters/out/postgres"
	"stockrequest/internal/adapters/out/postgres/auditrepo"
	"stockrequest/internal/adapters/out/postgres/fulfillmentrepo"
	"stockrequest/internal/adapters/out/postgres/groupingrepo"
	"stockrequest/internal/adapters/out/postgres/orderrepo"
	"stockrequest/internal/adapters/out/postgres/sequencerepo"
	"stockrequest/internal/adapters/out/postgres/templaterepo"
	"stockrequest/internal/core/domain/model/kernel"
	"stockrequest/internal/core/domain/model/order"
	"stockrequest/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderHeaderDTO{},
		&orderrepo.RequestLineDTO{},
		&templaterepo.TemplateDTO{},
		&templaterepo.TemplateLineDTO{},
		&auditrepo.AuditEntryDTO{},
		&groupingrepo.GroupingKeyDTO{},
		&sequencerepo.SequenceDTO{},
		&fulfillmentrepo.PickingDTO{},
		&fulfillmentrepo.MoveDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE request_lines, order_headers, templates, template_lines, " +
			"audit_entries, grouping_keys, sequences, pickings, moves").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository(), "First instance should provide order repository")
	suite.NotNil(uow1.TemplateRepository(), "First instance should provide template repository")
	suite.NotNil(uow2.AuditLog(), "Second instance should provide audit log")
	suite.NotNil(uow2.FulfillmentService(), "Second instance should provide fulfillment service")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_CommitPersistsAcrossRepositories verifies work done through
// several repositories of the same unit of work commits atomically.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	header := suite.createTestOrder("SR00100")

	key, err := uow.GroupingKeyFactory().Create(ctx, header.Name())
	suite.Require().NoError(err)
	suite.Require().NoError(header.AssignGroupingKey(key))
	suite.Require().NoError(header.Confirm())

	for _, line := range header.Lines() {
		suite.Require().NoError(uow.FulfillmentService().ConfirmLine(ctx, line))
	}
	suite.Require().NoError(uow.AuditLog().Record(ctx, header.ID(), header.TakeStatusChanges()))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, header))

	suite.Require().NoError(uow.Commit(ctx))

	suite.assertCount(&orderrepo.OrderHeaderDTO{}, 1)
	suite.assertCount(&groupingrepo.GroupingKeyDTO{}, 1)
	suite.assertCount(&fulfillmentrepo.PickingDTO{}, 1)
	suite.assertCount(&fulfillmentrepo.MoveDTO{}, 1)
	suite.assertCount(&auditrepo.AuditEntryDTO{}, 1)
}

// TestUnitOfWork_RollbackDiscardsAcrossRepositories verifies a rollback
// leaves no partial state behind in any table the transaction touched.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	header := suite.createTestOrder("SR00101")

	key, err := uow.GroupingKeyFactory().Create(ctx, header.Name())
	suite.Require().NoError(err)
	suite.Require().NoError(header.AssignGroupingKey(key))
	suite.Require().NoError(header.Confirm())

	for _, line := range header.Lines() {
		suite.Require().NoError(uow.FulfillmentService().ConfirmLine(ctx, line))
	}
	suite.Require().NoError(uow.OrderRepository().Add(ctx, header))

	suite.Require().NoError(uow.Rollback(ctx))

	suite.assertCount(&orderrepo.OrderHeaderDTO{}, 0)
	suite.assertCount(&groupingrepo.GroupingKeyDTO{}, 0)
	suite.assertCount(&fulfillmentrepo.PickingDTO{}, 0)
	suite.assertCount(&fulfillmentrepo.MoveDTO{}, 0)
}

// TestUnitOfWork_SequenceGenerator verifies sequence draws are transactional
// and monotonic across units of work.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SequenceGenerator() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	suite.Require().NoError(uow1.Begin(ctx))
	first, err := uow1.SequenceGenerator().NextName(ctx, ports.SequenceKeyOrder)
	suite.Require().NoError(err)
	suite.Require().NoError(uow1.Commit(ctx))

	uow2 := suite.factory.Create()
	suite.Require().NoError(uow2.Begin(ctx))
	second, err := uow2.SequenceGenerator().NextName(ctx, ports.SequenceKeyOrder)
	suite.Require().NoError(err)
	suite.Require().NoError(uow2.Commit(ctx))

	suite.Equal("SR00001", first)
	suite.Equal("SR00002", second)
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder(name string) *order.OrderHeader {
	header, err := order.NewOrderHeader(
		kernel.NewUUID(), name,
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC),
		order.ReceiveEachWhenAvailable,
	)
	suite.Require().NoError(err)

	line, err := order.NewRequestLine(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), decimal.NewFromInt(4), nil)
	suite.Require().NoError(err)
	suite.Require().NoError(header.AddLine(line))

	return header
}

func (suite *UnitOfWorkIntegrationTestSuite) assertCount(model any, expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(model).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
