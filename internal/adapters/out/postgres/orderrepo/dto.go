// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// header aggregate, handling the conversion between domain entities and
// database rows. Headers and request lines live in separate tables; the
// lines carry the header-mirrored attributes denormalized per row so the
// fulfillment subsystem can read them without joining the header.
package orderrepo

import (
	"time"

	"stockrequest/internal/core/domain/model/kernel"
	"stockrequest/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderHeaderDTO represents the database structure for persisting order
// header aggregates. The (name, company_id) pair is unique: order names are
// drawn from a per-company sequence and must stay unambiguous within the
// company.
type OrderHeaderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"uniqueIndex:idx_order_name_company"`
	Status          int       `gorm:"index"`
	RequestedBy     uuid.UUID `gorm:"type:uuid"`
	WarehouseID     uuid.UUID `gorm:"type:uuid;index"`
	LocationID      uuid.UUID `gorm:"type:uuid"`
	CompanyID       uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_order_name_company"`
	GroupingKeyID   *uuid.UUID `gorm:"type:uuid"`
	GroupingKeyName *string
	ExpectedDate    time.Time
	ShippingPolicy  int
	TemplateID      *uuid.UUID       `gorm:"type:uuid"`
	Lines           []RequestLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order headers.
func (OrderHeaderDTO) TableName() string {
	return "order_headers"
}

// RequestLineDTO represents one request line row. The warehouse, location,
// company, policy, date, requester and grouping key columns mirror the
// owning header.
type RequestLineDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID `gorm:"type:uuid;index"`
	Position        int

	ProductID       uuid.UUID `gorm:"type:uuid;index"`
	UnitID          uuid.UUID `gorm:"type:uuid"`
	Quantity        decimal.Decimal `gorm:"type:numeric"`
	RouteID         *uuid.UUID      `gorm:"type:uuid"`
	Status          int
	RequestedBy     uuid.UUID `gorm:"type:uuid"`
	WarehouseID     uuid.UUID `gorm:"type:uuid"`
	LocationID      uuid.UUID `gorm:"type:uuid"`
	CompanyID       uuid.UUID `gorm:"type:uuid"`
	GroupingKeyID   *uuid.UUID `gorm:"type:uuid;index"`
	GroupingKeyName *string
	ExpectedDate    time.Time
	ShippingPolicy  int
}

// TableName specifies the database table name for request lines.
func (RequestLineDTO) TableName() string {
	return "request_lines"
}

func optionalUUIDFromDomain(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalUUIDToDomain(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	domainID, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}
	return &domainID, nil
}

// fromDomain converts an order header aggregate to its database
// representation, lines included.
func fromDomain(header *order.OrderHeader) OrderHeaderDTO {
	var groupingKeyID *uuid.UUID
	var groupingKeyName *string
	if key := header.GroupingKey(); key != nil {
		rawID := key.ID().Bytes()
		name := key.Name()
		groupingKeyID = &rawID
		groupingKeyName = &name
	}

	dto := OrderHeaderDTO{
		ID:              header.ID().Bytes(),
		Name:            header.Name(),
		Status:          int(header.Status()),
		RequestedBy:     header.RequestedBy().Bytes(),
		WarehouseID:     header.WarehouseID().Bytes(),
		LocationID:      header.LocationID().Bytes(),
		CompanyID:       header.CompanyID().Bytes(),
		GroupingKeyID:   groupingKeyID,
		GroupingKeyName: groupingKeyName,
		ExpectedDate:    header.ExpectedDate(),
		ShippingPolicy:  int(header.ShippingPolicy()),
		TemplateID:      optionalUUIDFromDomain(header.TemplateID()),
	}

	lines := header.Lines()
	dto.Lines = make([]RequestLineDTO, 0, len(lines))
	for i, line := range lines {
		lineDTO := lineFromDomain(line)
		lineDTO.Position = i
		dto.Lines = append(dto.Lines, lineDTO)
	}

	return dto
}

func lineFromDomain(line *order.RequestLine) RequestLineDTO {
	var groupingKeyID *uuid.UUID
	var groupingKeyName *string
	if key := line.GroupingKey(); key != nil {
		rawID := key.ID().Bytes()
		name := key.Name()
		groupingKeyID = &rawID
		groupingKeyName = &name
	}

	return RequestLineDTO{
		ID:              line.ID().Bytes(),
		OrderID:         line.OrderID().Bytes(),
		ProductID:       line.ProductID().Bytes(),
		UnitID:          line.UnitID().Bytes(),
		Quantity:        line.Quantity(),
		RouteID:         optionalUUIDFromDomain(line.RouteID()),
		Status:          int(line.Status()),
		RequestedBy:     line.RequestedBy().Bytes(),
		WarehouseID:     line.WarehouseID().Bytes(),
		LocationID:      line.LocationID().Bytes(),
		CompanyID:       line.CompanyID().Bytes(),
		GroupingKeyID:   groupingKeyID,
		GroupingKeyName: groupingKeyName,
		ExpectedDate:    line.ExpectedDate(),
		ShippingPolicy:  int(line.ShippingPolicy()),
	}
}

// toDomain converts a database DTO to an order header aggregate.
// Reconstructs the complete aggregate, request lines included, using
// RestoreOrderHeader.
func toDomain(dto OrderHeaderDTO) (*order.OrderHeader, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	requestedBy, err := kernel.UUIDFromBytes(dto.RequestedBy[:])
	if err != nil {
		return nil, err
	}
	warehouseID, err := kernel.UUIDFromBytes(dto.WarehouseID[:])
	if err != nil {
		return nil, err
	}
	locationID, err := kernel.UUIDFromBytes(dto.LocationID[:])
	if err != nil {
		return nil, err
	}
	companyID, err := kernel.UUIDFromBytes(dto.CompanyID[:])
	if err != nil {
		return nil, err
	}
	templateID, err := optionalUUIDToDomain(dto.TemplateID)
	if err != nil {
		return nil, err
	}
	groupingKey, err := groupingKeyToDomain(dto.GroupingKeyID, dto.GroupingKeyName)
	if err != nil {
		return nil, err
	}

	lines := make([]*order.RequestLine, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := lineToDomain(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrderHeader(
		id,
		dto.Name,
		order.Status(dto.Status),
		requestedBy, warehouseID, locationID, companyID,
		groupingKey,
		dto.ExpectedDate,
		order.ShippingPolicy(dto.ShippingPolicy),
		templateID,
		lines,
	)
}

func lineToDomain(dto RequestLineDTO) (*order.RequestLine, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}
	unitID, err := kernel.UUIDFromBytes(dto.UnitID[:])
	if err != nil {
		return nil, err
	}
	routeID, err := optionalUUIDToDomain(dto.RouteID)
	if err != nil {
		return nil, err
	}
	requestedBy, err := kernel.UUIDFromBytes(dto.RequestedBy[:])
	if err != nil {
		return nil, err
	}
	warehouseID, err := kernel.UUIDFromBytes(dto.WarehouseID[:])
	if err != nil {
		return nil, err
	}
	locationID, err := kernel.UUIDFromBytes(dto.LocationID[:])
	if err != nil {
		return nil, err
	}
	companyID, err := kernel.UUIDFromBytes(dto.CompanyID[:])
	if err != nil {
		return nil, err
	}
	groupingKey, err := groupingKeyToDomain(dto.GroupingKeyID, dto.GroupingKeyName)
	if err != nil {
		return nil, err
	}

	shared := order.SharedAttributes{
		WarehouseID:    warehouseID,
		LocationID:     locationID,
		CompanyID:      companyID,
		ShippingPolicy: order.ShippingPolicy(dto.ShippingPolicy),
		ExpectedDate:   dto.ExpectedDate,
		RequestedBy:    requestedBy,
		GroupingKey:    groupingKey,
	}

	return order.RestoreRequestLine(
		id, orderID, productID, unitID,
		dto.Quantity,
		routeID,
		order.Status(dto.Status),
		shared,
	)
}

func groupingKeyToDomain(id *uuid.UUID, name *string) (*order.GroupingKey, error) {
	if id == nil || name == nil {
		return nil, nil
	}

	keyID, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}
	key, err := order.NewGroupingKey(keyID, *name)
	if err != nil {
		return nil, err
	}
	return &key, nil
}
