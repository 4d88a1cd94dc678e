package commands

import (
	"errors"

	"stockrequest/internal/core/domain/model/kernel"
	"stockrequest/internal/pkg/guard"
)

var (
	ErrCreateOrderFromSelectionCommandIsNotConstructed = errors.New(
		"CreateOrderFromSelectionCommand must be created via NewCreateOrderFromSelectionCommand constructor",
	)
	ErrSelectionIsEmpty       = errors.New("selection must contain at least one product")
	ErrSelectionKindIsInvalid = errors.New("selection must be product variants or product templates")
)

// SelectionKind states what a multi-select creation was made over. A
// selection is homogeneous: variants or templates, never mixed.
type SelectionKind int

const (
	// UnknownSelection represents an invalid or undefined selection kind.
	UnknownSelection SelectionKind = iota

	// VariantSelection selects product variants directly.
	VariantSelection

	// TemplateSelection selects product templates, expanded to their
	// non-archived variants.
	TemplateSelection
)

// Validate checks if the SelectionKind value is valid.
func (k SelectionKind) Validate() error {
	if k != VariantSelection && k != TemplateSelection {
		return ErrSelectionKindIsInvalid
	}
	return nil
}

// CreateOrderFromSelectionCommand represents a request to create one order
// from a set of selected products, with one zero-quantity line per resulting
// variant.
type CreateOrderFromSelectionCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	kind       SelectionKind
	productIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderFromSelectionCommand creates a command over the given
// selection. The selection must be non-empty and homogeneous.
func NewCreateOrderFromSelectionCommand(
	orderID kernel.UUID, kind SelectionKind, productIDs []kernel.UUID,
) (CreateOrderFromSelectionCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		kind.Validate(),
	); err != nil {
		return CreateOrderFromSelectionCommand{}, err
	}
	if len(productIDs) == 0 {
		return CreateOrderFromSelectionCommand{}, ErrSelectionIsEmpty
	}
	for _, id := range productIDs {
		if err := id.Validate(); err != nil {
			return CreateOrderFromSelectionCommand{}, err
		}
	}

	return CreateOrderFromSelectionCommand{
		orderID:    orderID,
		kind:       kind,
		productIDs: productIDs,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderFromSelectionCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderFromSelectionCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderFromSelectionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Kind returns what the selection consists of.
func (c CreateOrderFromSelectionCommand) Kind() SelectionKind {
	return c.kind
}

// ProductIDs returns the selected variant or template identifiers.
func (c CreateOrderFromSelectionCommand) ProductIDs() []kernel.UUID {
	return c.productIDs
}
