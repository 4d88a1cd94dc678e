// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"stockrequest/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// TemplateRepoFactory provides access to the template repository within a transaction.
	TemplateRepoFactory interface {
		TemplateRepository() ports.TemplateRepository
	}

	// AuditLogFactory provides access to the audit log within a transaction.
	AuditLogFactory interface {
		AuditLog() ports.AuditLog
	}

	// FulfillmentFactory provides access to the fulfillment service within a transaction.
	FulfillmentFactory interface {
		FulfillmentService() ports.FulfillmentService
	}

	// GroupingFactory provides access to the grouping-key factory within a transaction.
	GroupingFactory interface {
		GroupingKeyFactory() ports.GroupingKeyFactory
	}

	// SequenceFactory provides access to the sequence generator within a transaction.
	SequenceFactory interface {
		SequenceGenerator() ports.SequenceGenerator
	}

	// OrderUoW manages transactions for operations touching only the order
	// aggregate and its audit trail.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		AuditLogFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CreateOrderUoW manages transactions for order creation, which also
	// draws names from the sequence generator.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		SequenceFactory
	}

	// CreateOrderUoWFactory creates new creation unit of work instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// LifecycleUoW manages transactions for lifecycle operations, which
	// coordinate the order aggregate, the audit trail, the fulfillment
	// subsystem and grouping-key creation.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   header, _ := uow.OrderRepository().GetForUpdate(ctx, id)
	//   // ... transition and hand lines to fulfillment
	//
	//   err = uow.Commit(ctx)
	LifecycleUoW interface {
		TxManager
		OrderRepoFactory
		AuditLogFactory
		FulfillmentFactory
		GroupingFactory
	}

	// LifecycleUoWFactory creates new lifecycle unit of work instances.
	LifecycleUoWFactory interface {
		Create() LifecycleUoW
	}

	// TemplateUoW manages transactions for template expansion, which reads
	// the template catalog and rewrites the order's line set.
	TemplateUoW interface {
		TxManager
		OrderRepoFactory
		TemplateRepoFactory
	}

	// TemplateUoWFactory creates new template unit of work instances.
	TemplateUoWFactory interface {
		Create() TemplateUoW
	}
)
