package cmd

import (
	"log/slog"

	"stockrequest/internal/adapters/out/postgres"
	"stockrequest/internal/adapters/out/postgres/auditrepo"
	"stockrequest/internal/adapters/out/postgres/fulfillmentrepo"
	"stockrequest/internal/adapters/out/postgres/groupingrepo"
	"stockrequest/internal/adapters/out/postgres/orderrepo"
	"stockrequest/internal/adapters/out/postgres/productrepo"
	"stockrequest/internal/adapters/out/postgres/sequencerepo"
	"stockrequest/internal/adapters/out/postgres/templaterepo"
	"stockrequest/internal/adapters/out/postgres/warehouserepo"
	"stockrequest/internal/core/application/usecases/commands"
	"stockrequest/internal/core/application/usecases/queries"
	"stockrequest/internal/core/ports"
	"stockrequest/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	session    ports.SessionContext
	warehouses ports.WarehouseDirectory
	catalog    ports.ProductCatalog
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, session ports.SessionContext) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		session:    session,
		warehouses: warehouserepo.NewGormWarehouseDirectory(gormDB),
		catalog:    productrepo.NewGormProductCatalog(gormDB),
	}
}

// MigrateDatabase brings the schema up to date for every persisted model.
func (c *CompositionRoot) MigrateDatabase() error {
	return c.gormDB.AutoMigrate(
		&orderrepo.OrderHeaderDTO{},
		&orderrepo.RequestLineDTO{},
		&templaterepo.TemplateDTO{},
		&templaterepo.TemplateLineDTO{},
		&warehouserepo.WarehouseDTO{},
		&warehouserepo.StockLocationDTO{},
		&productrepo.VariantDTO{},
		&sequencerepo.SequenceDTO{},
		&groupingrepo.GroupingKeyDTO{},
		&auditrepo.AuditEntryDTO{},
		&fulfillmentrepo.PickingDTO{},
		&fulfillmentrepo.MoveDTO{},
	)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.session, c.warehouses)
}

func (c *CompositionRoot) CreateCreateOrderFromSelectionCommandHandler() commands.CreateOrderFromSelectionCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderFromSelectionCommandHandler(f, c.session, c.warehouses, c.catalog)
}

func (c *CompositionRoot) CreateUpdateOrderAttributesCommandHandler() commands.UpdateOrderAttributesCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderAttributesCommandHandler(f, c.warehouses)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	var f commands.LifecycleUoWFactory = FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.LifecycleUoWFactory = FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateDraftOrderCommandHandler() commands.DraftOrderCommandHandler {
	var f commands.LifecycleUoWFactory = FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDraftOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteAllOrderCommandHandler() commands.CompleteAllOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteAllOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCheckOrderCompletionCommandHandler() commands.CheckOrderCompletionCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckOrderCompletionCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateApplyTemplateCommandHandler() commands.ApplyTemplateCommandHandler {
	var f commands.TemplateUoWFactory = FuncTemplateUoWFactory(func() commands.TemplateUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApplyTemplateCommandHandler(f)
}

func (c *CompositionRoot) CreateGetUncompletedOrdersQueryHandler() queries.GetUncompletedOrdersQueryHandler {
	return queries.NewGetUncompletedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderSummaryQueryHandler() queries.GetOrderSummaryQueryHandler {
	return queries.NewGetOrderSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderPickingsQueryHandler() queries.GetOrderPickingsQueryHandler {
	return queries.NewGetOrderPickingsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderMovesQueryHandler() queries.GetOrderMovesQueryHandler {
	return queries.NewGetOrderMovesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetUncompletedOrdersQueryHandler(),
		c.CreateCheckOrderCompletionCommandHandler(),
		logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncLifecycleUoWFactory func() commands.LifecycleUoW

func (f FuncLifecycleUoWFactory) Create() commands.LifecycleUoW {
	return f()
}

type FuncTemplateUoWFactory func() commands.TemplateUoW

func (f FuncTemplateUoWFactory) Create() commands.TemplateUoW {
	return f()
}
