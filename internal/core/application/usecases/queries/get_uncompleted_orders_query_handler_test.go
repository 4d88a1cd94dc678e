package queries_test

import (
	"context"
	"testing"
	"time"

	"stockrequest/internal/adapters/out/postgres/orderrepo"
	"stockrequest/internal/core/application/usecases/queries"
	"stockrequest/internal/core/domain/model/kernel"
	"stockrequest/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GetUncompletedOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetUncompletedOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetUncompletedOrdersQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderHeaderDTO{}, &orderrepo.RequestLineDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetUncompletedOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, mockAggregateTracker{})
}

func (suite *GetUncompletedOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetUncompletedOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE request_lines, order_headers").Error
	suite.Require().NoError(err)
}

func (suite *GetUncompletedOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetUncompletedOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetUncompletedOrdersQueryHandlerTestSuite) TestHandle_WithMixedStatuses_ReturnsOnlyUncompleted() {
	ctx := context.Background()

	draft := suite.createOrder("SR00201", 2)
	suite.Require().NoError(suite.orderRepo.Add(ctx, draft))

	open := suite.createOrder("SR00202", 1)
	suite.confirm(open)
	suite.Require().NoError(suite.orderRepo.Add(ctx, open))

	done := suite.createOrder("SR00203", 1)
	suite.confirm(done)
	done.CompleteAll()
	done.TakeStatusChanges()
	suite.Require().NoError(suite.orderRepo.Add(ctx, done))

	cancelled := suite.createOrder("SR00204", 1)
	suite.Require().NoError(cancelled.Cancel())
	cancelled.TakeStatusChanges()
	suite.Require().NoError(suite.orderRepo.Add(ctx, cancelled))

	query := queries.NewGetUncompletedOrdersQuery()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	byID := make(map[kernel.UUID]queries.GetUncompletedOrdersQueryResponse)
	for _, r := range result {
		byID[r.ID] = r
	}

	draftResp, ok := byID[draft.ID()]
	suite.Require().True(ok, "draft order should be in results")
	suite.Equal("SR00201", draftResp.Name)
	suite.Equal("Draft", draftResp.Status)
	suite.Equal(2, draftResp.RequestCount)

	openResp, ok := byID[open.ID()]
	suite.Require().True(ok, "open order should be in results")
	suite.Equal("Open", openResp.Status)
	suite.Equal(1, openResp.RequestCount)

	_, ok = byID[done.ID()]
	suite.False(ok, "done order should not be in results")
	_, ok = byID[cancelled.ID()]
	suite.False(ok, "cancelled order should not be in results")
}

func (suite *GetUncompletedOrdersQueryHandlerTestSuite) TestHandle_OrderWithoutLines_CountsZero() {
	ctx := context.Background()

	empty := suite.createOrder("SR00205", 0)
	suite.Require().NoError(suite.orderRepo.Add(ctx, empty))

	result, err := suite.handler.Handle(ctx, queries.NewGetUncompletedOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(0, result[0].RequestCount)
}

func (suite *GetUncompletedOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetUncompletedOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetUncompletedOrdersQuery constructor")
}

func (suite *GetUncompletedOrdersQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := suite.handler.Handle(ctx, queries.NewGetUncompletedOrdersQuery())

	suite.Require().Error(err)
	suite.Nil(result)
}

func (suite *GetUncompletedOrdersQueryHandlerTestSuite) createOrder(name string, lineCount int) *order.OrderHeader {
	header, err := order.NewOrderHeader(
		kernel.NewUUID(), name,
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC),
		order.ReceiveEachWhenAvailable,
	)
	suite.Require().NoError(err)

	for n := 0; n < lineCount; n++ {
		line, lineErr := order.NewRequestLine(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), decimal.NewFromInt(1), nil)
		suite.Require().NoError(lineErr)
		suite.Require().NoError(header.AddLine(line))
	}

	return header
}

func (suite *GetUncompletedOrdersQueryHandlerTestSuite) confirm(header *order.OrderHeader) {
	key, err := order.NewGroupingKey(kernel.NewUUID(), header.Name())
	suite.Require().NoError(err)
	suite.Require().NoError(header.AssignGroupingKey(key))
	suite.Require().NoError(header.Confirm())
	header.TakeStatusChanges()
}

func TestGetUncompletedOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetUncompletedOrdersQueryHandlerTestSuite))
}
