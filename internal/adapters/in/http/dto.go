package http

import (
	"fmt"
	"time"

	"stockrequest/internal/core/application/usecases/commands"
	"stockrequest/internal/core/domain/model/kernel"
	"stockrequest/internal/core/domain/model/order"
)

// Error is the JSON body returned for failed requests.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderLine carries one request line of an order creation request.
type NewOrderLine struct {
	ProductID string  `json:"productId"`
	UnitID    string  `json:"unitId"`
	Quantity  string  `json:"quantity"`
	RouteID   *string `json:"routeId,omitempty"`
}

// NewOrder is the body of an order creation request. Every field is
// optional: blanks default from the acting session and the company's first
// warehouse.
type NewOrder struct {
	Name           string         `json:"name,omitempty"`
	RequestedBy    *string        `json:"requestedBy,omitempty"`
	WarehouseID    *string        `json:"warehouseId,omitempty"`
	LocationID     *string        `json:"locationId,omitempty"`
	CompanyID      *string        `json:"companyId,omitempty"`
	ExpectedDate   *time.Time     `json:"expectedDate,omitempty"`
	ShippingPolicy string         `json:"shippingPolicy,omitempty"`
	Lines          []NewOrderLine `json:"lines,omitempty"`
}

// NewSelectionOrder is the body of a multi-select order creation request.
type NewSelectionOrder struct {
	Kind       string   `json:"kind"`
	ProductIDs []string `json:"productIds"`
}

// OrderCreated is returned after a successful order creation.
type OrderCreated struct {
	ID string `json:"id"`
}

// OrderUpdate is the body of an attribute update request. Absent fields are
// left untouched.
type OrderUpdate struct {
	Name           *string    `json:"name,omitempty"`
	LocationID     *string    `json:"locationId,omitempty"`
	WarehouseID    *string    `json:"warehouseId,omitempty"`
	CompanyID      *string    `json:"companyId,omitempty"`
	RequestedBy    *string    `json:"requestedBy,omitempty"`
	ExpectedDate   *time.Time `json:"expectedDate,omitempty"`
	ShippingPolicy *string    `json:"shippingPolicy,omitempty"`
}

// ApplyTemplate is the body of a template expansion request.
type ApplyTemplate struct {
	TemplateID string `json:"templateId"`
}

// ActiveOrder is one entry of the uncompleted orders listing.
type ActiveOrder struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Status       string    `json:"status"`
	ExpectedDate time.Time `json:"expectedDate"`
	RequestCount int       `json:"requestCount"`
}

// OrderSummary is the detail view of one order.
type OrderSummary struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Status         string    `json:"status"`
	WarehouseID    string    `json:"warehouseId"`
	LocationID     string    `json:"locationId"`
	CompanyID      string    `json:"companyId"`
	RequestedBy    string    `json:"requestedBy"`
	ExpectedDate   time.Time `json:"expectedDate"`
	ShippingPolicy string    `json:"shippingPolicy"`
	GroupingKey    *string   `json:"groupingKey,omitempty"`
	RequestCount   int       `json:"requestCount"`
	PickingCount   int       `json:"pickingCount"`
}

// Picking is one fulfillment transfer of an order.
type Picking struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	LineID string `json:"lineId"`
	State  string `json:"state"`
}

// Move is one stock move of an order.
type Move struct {
	ID        string `json:"id"`
	PickingID string `json:"pickingId"`
	LineID    string `json:"lineId"`
	ProductID string `json:"productId"`
	Quantity  string `json:"quantity"`
	State     string `json:"state"`
}

func parseOptionalUUID(s *string) (*kernel.UUID, error) {
	if s == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseShippingPolicy(s string) (order.ShippingPolicy, error) {
	switch s {
	case "":
		return order.UnknownPolicy, nil
	case "ReceiveEachWhenAvailable":
		return order.ReceiveEachWhenAvailable, nil
	case "ReceiveAllAtOnce":
		return order.ReceiveAllAtOnce, nil
	default:
		return order.UnknownPolicy, fmt.Errorf("%q is not a valid shipping policy", s)
	}
}

func parseSelectionKind(s string) (commands.SelectionKind, error) {
	switch s {
	case "variants":
		return commands.VariantSelection, nil
	case "templates":
		return commands.TemplateSelection, nil
	default:
		return commands.UnknownSelection, fmt.Errorf("%q is not a valid selection kind", s)
	}
}
