// Package fulfillmentrepo realizes request line fulfillment over the
// pickings and moves tables. Confirming a line generates one transfer with
// one stock move under the line's grouping key; cancelling marks them
// cancelled, resetting tears them down.
package fulfillmentrepo

import (
	"context"
	"fmt"

	"stockrequest/internal/core/domain/model/kernel"
	"stockrequest/internal/core/domain/model/order"
	"stockrequest/internal/core/ports"
	"stockrequest/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// StateAssigned marks a transfer waiting to be processed.
	StateAssigned = "assigned"
	// StateDone marks a processed transfer.
	StateDone = "done"
	// StateCancelled marks a withdrawn transfer.
	StateCancelled = "cancelled"
)

// PickingDTO represents one transfer row.
type PickingDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string
	LineID        uuid.UUID `gorm:"type:uuid;index"`
	GroupingKeyID uuid.UUID `gorm:"type:uuid;index"`
	GroupingKey   string
	State         string
}

// TableName specifies the database table name for pickings.
func (PickingDTO) TableName() string {
	return "pickings"
}

// MoveDTO represents one stock move row.
type MoveDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	PickingID uuid.UUID `gorm:"type:uuid;index"`
	LineID    uuid.UUID `gorm:"type:uuid;index"`
	ProductID uuid.UUID `gorm:"type:uuid"`
	Quantity  string    `gorm:"type:numeric"`
	State     string
}

// TableName specifies the database table name for moves.
func (MoveDTO) TableName() string {
	return "moves"
}

// GormFulfillmentService implements FulfillmentService using GORM.
type GormFulfillmentService struct {
	db *gorm.DB
}

// NewGormFulfillmentService creates a new GORM fulfillment service.
func NewGormFulfillmentService(db *gorm.DB) *GormFulfillmentService {
	return &GormFulfillmentService{db: db}
}

// ConfirmLine generates one transfer with one stock move for a confirmed
// line. The line must already carry its grouping key.
func (r *GormFulfillmentService) ConfirmLine(ctx context.Context, line *order.RequestLine) error {
	if err := line.Validate(); err != nil {
		return err
	}
	key := line.GroupingKey()
	if key == nil {
		return errs.NewValueIsRequiredError("grouping key")
	}

	var existing int64
	if err := r.db.WithContext(ctx).Model(&PickingDTO{}).
		Where("grouping_key_id = ?", key.ID().Bytes()).
		Count(&existing).Error; err != nil {
		return err
	}

	picking := PickingDTO{
		ID:            uuid.New(),
		Name:          fmt.Sprintf("%s/%03d", key.Name(), existing+1),
		LineID:        line.ID().Bytes(),
		GroupingKeyID: key.ID().Bytes(),
		GroupingKey:   key.Name(),
		State:         StateAssigned,
	}
	if err := r.db.WithContext(ctx).Create(&picking).Error; err != nil {
		return err
	}

	move := MoveDTO{
		ID:        uuid.New(),
		PickingID: picking.ID,
		LineID:    line.ID().Bytes(),
		ProductID: line.ProductID().Bytes(),
		Quantity:  line.Quantity().String(),
		State:     StateAssigned,
	}
	return r.db.WithContext(ctx).Create(&move).Error
}

// CancelLine marks every transfer and move of a line cancelled.
func (r *GormFulfillmentService) CancelLine(ctx context.Context, line *order.RequestLine) error {
	if err := line.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Model(&PickingDTO{}).
		Where("line_id = ?", line.ID().Bytes()).
		Update("state", StateCancelled).Error; err != nil {
		return err
	}

	return r.db.WithContext(ctx).Model(&MoveDTO{}).
		Where("line_id = ?", line.ID().Bytes()).
		Update("state", StateCancelled).Error
}

// ResetLine removes the transfers and moves of a line when its order goes
// back to draft. A later confirmation generates fresh ones.
func (r *GormFulfillmentService) ResetLine(ctx context.Context, line *order.RequestLine) error {
	if err := line.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).
		Where("line_id = ?", line.ID().Bytes()).
		Delete(&MoveDTO{}).Error; err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("line_id = ?", line.ID().Bytes()).
		Delete(&PickingDTO{}).Error
}

// GetPickingsOfLines retrieves the transfers of the given lines.
func (r *GormFulfillmentService) GetPickingsOfLines(
	ctx context.Context, lineIDs []kernel.UUID,
) ([]ports.Picking, error) {
	ids, err := rawIDs(lineIDs)
	if err != nil {
		return nil, err
	}

	var dtos []PickingDTO
	if err = r.db.WithContext(ctx).
		Order("name, id").
		Find(&dtos, "line_id IN ?", ids).Error; err != nil {
		return nil, err
	}

	pickings := make([]ports.Picking, 0, len(dtos))
	for _, dto := range dtos {
		id, idErr := kernel.UUIDFromBytes(dto.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		lineID, idErr := kernel.UUIDFromBytes(dto.LineID[:])
		if idErr != nil {
			return nil, idErr
		}
		pickings = append(pickings, ports.Picking{
			ID:          id,
			Name:        dto.Name,
			LineID:      lineID,
			GroupingKey: dto.GroupingKey,
			State:       dto.State,
		})
	}

	return pickings, nil
}

// GetMovesOfLines retrieves the stock moves of the given lines.
func (r *GormFulfillmentService) GetMovesOfLines(
	ctx context.Context, lineIDs []kernel.UUID,
) ([]ports.Move, error) {
	ids, err := rawIDs(lineIDs)
	if err != nil {
		return nil, err
	}

	var dtos []MoveDTO
	if err = r.db.WithContext(ctx).
		Order("id").
		Find(&dtos, "line_id IN ?", ids).Error; err != nil {
		return nil, err
	}

	moves := make([]ports.Move, 0, len(dtos))
	for _, dto := range dtos {
		id, idErr := kernel.UUIDFromBytes(dto.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		lineID, idErr := kernel.UUIDFromBytes(dto.LineID[:])
		if idErr != nil {
			return nil, idErr
		}
		productID, idErr := kernel.UUIDFromBytes(dto.ProductID[:])
		if idErr != nil {
			return nil, idErr
		}
		moves = append(moves, ports.Move{
			ID:        id,
			LineID:    lineID,
			ProductID: productID,
			Quantity:  dto.Quantity,
			State:     dto.State,
		})
	}

	return moves, nil
}

func rawIDs(lineIDs []kernel.UUID) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(lineIDs))
	for _, id := range lineIDs {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		ids = append(ids, id.Bytes())
	}
	return ids, nil
}
