package order

import (
	"errors"
	"fmt"
	"time"

	"stockrequest/internal/core/domain/model/kernel"
	"stockrequest/internal/core/domain/model/warehouse"
	"stockrequest/internal/pkg/errs"
	"stockrequest/internal/pkg/guard"
)

var (
	// ErrOrderHeaderIsNotConstructed is returned when an OrderHeader instance was not
	// created through one of its constructors.
	ErrOrderHeaderIsNotConstructed = errors.New("OrderHeader must be created via NewOrderHeader constructor")
	// ErrNameIsRequired is returned when attempting to create an order without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrNameIsReadOnly is returned when renaming an order that already left draft.
	ErrNameIsReadOnly = errors.New("name can only be changed while the order is in draft")
	// ErrLinesOnlyInDraft is returned when adding lines to a non-draft order.
	ErrLinesOnlyInDraft = errors.New("lines can only be added while the order is in draft")
	// ErrOnlyDraftCanBeDeleted is returned when deleting an order that already left draft.
	ErrOnlyDraftCanBeDeleted = errs.NewUserError("only orders in draft state can be deleted")
)

// SharedAttributes is the snapshot of header attributes every request line
// mirrors. Propagation overwrites the lines' copies with this snapshot;
// lines never author these values themselves.
type SharedAttributes struct {
	WarehouseID    kernel.UUID
	LocationID     kernel.UUID
	CompanyID      kernel.UUID
	ShippingPolicy ShippingPolicy
	ExpectedDate   time.Time
	RequestedBy    kernel.UUID
	GroupingKey    *GroupingKey
}

// OrderHeader is the aggregate root for one stock request order. It owns the
// set of request lines, holds the shared attributes the lines mirror, and
// runs the order-level status lifecycle.
//
// OrderHeader follows these invariants:
//   - name is unique per company (enforced by the persistence layer) and
//     immutable once the order leaves draft
//   - warehouse and location must belong to the order's company
//   - lines always carry the header's current shared attributes after a
//     propagation pass
//   - status transitions follow the rules encoded in Status
//   - deletion is only permitted while the order is in draft
type OrderHeader struct {
	// id uniquely identifies the order
	id kernel.UUID
	// name is the human-readable order number, unique per company
	name string
	// status is the order-level lifecycle state
	status Status
	// requestedBy is the user the goods are requested for
	requestedBy kernel.UUID
	// warehouseID is the warehouse sourcing the request
	warehouseID kernel.UUID
	// locationID is the destination stock location
	locationID kernel.UUID
	// companyID is the owning company
	companyID kernel.UUID
	// groupingKey batches the order's transfers, assigned at confirmation
	groupingKey *GroupingKey
	// expectedDate is when the goods are expected to arrive
	expectedDate time.Time
	// shippingPolicy controls partial versus single-shipment release
	shippingPolicy ShippingPolicy
	// templateID is the request template last used to seed the lines, if any
	templateID *kernel.UUID
	// lines are the request lines owned by this order
	lines []*RequestLine
	// changes accumulates audit entries until the caller drains them
	changes []StatusChange

	guard guard.ConstructorGuard
}

// NewOrderHeader creates a new order in Draft status with no lines.
// The name must already be resolved: callers replace the "/" sentinel through
// the sequence collaborator before constructing the aggregate.
func NewOrderHeader(
	id kernel.UUID,
	name string,
	requestedBy, warehouseID, locationID, companyID kernel.UUID,
	expectedDate time.Time,
	shippingPolicy ShippingPolicy,
) (*OrderHeader, error) {
	header := &OrderHeader{
		status: Draft,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		header.setID(id),
		header.setName(name),
		header.setRequestedBy(requestedBy),
		header.setWarehouseID(warehouseID),
		header.setLocationID(locationID),
		header.setCompanyID(companyID),
		header.setExpectedDate(expectedDate),
		header.setShippingPolicy(shippingPolicy),
	); err != nil {
		return nil, err
	}

	return header, nil
}

// RestoreOrderHeader reconstructs an OrderHeader aggregate from persistent
// storage, including its lines and lifecycle state.
func RestoreOrderHeader(
	id kernel.UUID,
	name string,
	status Status,
	requestedBy, warehouseID, locationID, companyID kernel.UUID,
	groupingKey *GroupingKey,
	expectedDate time.Time,
	shippingPolicy ShippingPolicy,
	templateID *kernel.UUID,
	lines []*RequestLine,
) (*OrderHeader, error) {
	header := &OrderHeader{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		header.setID(id),
		header.setName(name),
		status.Validate(),
		header.setRequestedBy(requestedBy),
		header.setWarehouseID(warehouseID),
		header.setLocationID(locationID),
		header.setCompanyID(companyID),
		header.setExpectedDate(expectedDate),
		header.setShippingPolicy(shippingPolicy),
	); err != nil {
		return nil, err
	}

	if groupingKey != nil {
		if err := groupingKey.Validate(); err != nil {
			return nil, err
		}
		header.groupingKey = groupingKey
	}
	if templateID != nil {
		if err := templateID.Validate(); err != nil {
			return nil, err
		}
		header.templateID = templateID
	}

	header.status = status
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, err
		}
		header.lines = append(header.lines, line)
	}

	return header, nil
}

// Validate ensures the OrderHeader was created through a constructor.
func (h *OrderHeader) Validate() error {
	if h == nil {
		return ErrOrderHeaderIsNotConstructed
	}
	return h.guard.Validate(ErrOrderHeaderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (h *OrderHeader) IsEqual(other *OrderHeader) bool {
	return other != nil && h.id.IsEqual(other.id)
}

// ID returns the order identifier.
func (h *OrderHeader) ID() kernel.UUID {
	return h.id
}

// Name returns the human-readable order number.
func (h *OrderHeader) Name() string {
	return h.name
}

// Status returns the order-level lifecycle state.
func (h *OrderHeader) Status() Status {
	return h.status
}

// RequestedBy returns the requesting user.
func (h *OrderHeader) RequestedBy() kernel.UUID {
	return h.requestedBy
}

// WarehouseID returns the sourcing warehouse.
func (h *OrderHeader) WarehouseID() kernel.UUID {
	return h.warehouseID
}

// LocationID returns the destination stock location.
func (h *OrderHeader) LocationID() kernel.UUID {
	return h.locationID
}

// CompanyID returns the owning company.
func (h *OrderHeader) CompanyID() kernel.UUID {
	return h.companyID
}

// GroupingKey returns the assigned grouping key, or nil before confirmation.
func (h *OrderHeader) GroupingKey() *GroupingKey {
	return h.groupingKey
}

// ExpectedDate returns the expected arrival date.
func (h *OrderHeader) ExpectedDate() time.Time {
	return h.expectedDate
}

// ShippingPolicy returns the shipping policy.
func (h *OrderHeader) ShippingPolicy() ShippingPolicy {
	return h.shippingPolicy
}

// TemplateID returns the request template last applied to this order, or nil.
func (h *OrderHeader) TemplateID() *kernel.UUID {
	return h.templateID
}

// Lines returns the request lines owned by this order.
func (h *OrderHeader) Lines() []*RequestLine {
	return h.lines
}

// RequestCount returns the number of request lines.
func (h *OrderHeader) RequestCount() int {
	return len(h.lines)
}

// SharedAttributes returns the current snapshot of the attributes every line
// mirrors.
func (h *OrderHeader) SharedAttributes() SharedAttributes {
	return SharedAttributes{
		WarehouseID:    h.warehouseID,
		LocationID:     h.locationID,
		CompanyID:      h.companyID,
		ShippingPolicy: h.shippingPolicy,
		ExpectedDate:   h.expectedDate,
		RequestedBy:    h.requestedBy,
		GroupingKey:    h.groupingKey,
	}
}

// PropagateToLines overwrites the header-mirrored attributes of every line
// with the header's current values. Callers suppress the call itself when a
// logical update must not cascade; the method carries no flag of its own.
func (h *OrderHeader) PropagateToLines() {
	shared := h.SharedAttributes()
	for _, line := range h.lines {
		line.applyShared(shared)
	}
}

// Rename changes the order name. Names are immutable once the order leaves
// draft.
func (h *OrderHeader) Rename(name string) error {
	if h.status != Draft {
		return ErrNameIsReadOnly
	}
	if name == "" {
		return ErrNameIsRequired
	}

	h.name = name
	return nil
}

// SetWarehouseID points the header at another warehouse.
// This is a raw field write used by the synchronization engine; it performs
// no cross-field correction and no propagation.
func (h *OrderHeader) SetWarehouseID(id kernel.UUID) error {
	return h.setWarehouseID(id)
}

// SetLocationID points the header at another stock location.
// Raw field write, no correction, no propagation.
func (h *OrderHeader) SetLocationID(id kernel.UUID) error {
	return h.setLocationID(id)
}

// SetCompanyID moves the header to another company.
// Raw field write, no correction, no propagation.
func (h *OrderHeader) SetCompanyID(id kernel.UUID) error {
	return h.setCompanyID(id)
}

// SetRequestedBy changes the requesting user and records an audit entry.
func (h *OrderHeader) SetRequestedBy(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !h.requestedBy.IsEqual(id) {
		h.recordChange(FieldRequestedBy, h.requestedBy.String(), id.String())
	}
	h.requestedBy = id
	return nil
}

// SetExpectedDate changes the expected arrival date.
func (h *OrderHeader) SetExpectedDate(date time.Time) error {
	return h.setExpectedDate(date)
}

// SetShippingPolicy changes the shipping policy.
func (h *OrderHeader) SetShippingPolicy(policy ShippingPolicy) error {
	return h.setShippingPolicy(policy)
}

// AssignGroupingKey attaches a grouping key to the header.
func (h *OrderHeader) AssignGroupingKey(key GroupingKey) error {
	if err := key.Validate(); err != nil {
		return err
	}

	h.groupingKey = &key
	return nil
}

// SetTemplateID records the request template used to seed the lines.
func (h *OrderHeader) SetTemplateID(id *kernel.UUID) error {
	if id == nil {
		h.templateID = nil
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	h.templateID = id
	return nil
}

// AddLine attaches a new request line to the order and propagates the
// header's shared attributes onto it. Lines can only be added in draft;
// template expansion uses ReplaceLines instead.
func (h *OrderHeader) AddLine(line *RequestLine) error {
	if err := line.Validate(); err != nil {
		return err
	}
	if h.status != Draft {
		return ErrLinesOnlyInDraft
	}

	line.attachTo(h.id)
	line.applyShared(h.SharedAttributes())
	h.lines = append(h.lines, line)
	return nil
}

// ReplaceLines discards every existing line and installs the given ones in
// their place. The new lines take the header's shared attributes and the
// header's current status. This is the destructive bulk replace behind
// template expansion; there is no merge with the previous lines.
func (h *OrderHeader) ReplaceLines(lines []*RequestLine) error {
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	shared := h.SharedAttributes()
	h.lines = h.lines[:0]
	for _, line := range lines {
		line.attachTo(h.id)
		line.applyShared(shared)
		line.status = h.status
		h.lines = append(h.lines, line)
	}
	return nil
}

// Confirm transitions the order and every line to Open.
// The grouping key must already be assigned; callers create one named after
// the order when the header has none. After the transition the caller hands
// each line to the fulfillment collaborator.
func (h *OrderHeader) Confirm() error {
	if h.groupingKey == nil {
		return errs.NewValueIsRequiredError("grouping key")
	}

	newStatus, err := h.status.Confirm()
	if err != nil {
		return err
	}

	for _, line := range h.lines {
		if lineErr := line.Confirm(); lineErr != nil {
			return fmt.Errorf("line %s: %w", line.ID(), lineErr)
		}
	}

	h.recordChange(FieldStatus, h.status.String(), newStatus.String())
	h.status = newStatus
	h.PropagateToLines()
	return nil
}

// Cancel transitions the order to Cancelled and cascades the cancellation to
// every line.
func (h *OrderHeader) Cancel() error {
	newStatus, err := h.status.Cancel()
	if err != nil {
		return err
	}

	for _, line := range h.lines {
		line.Cancel()
	}

	h.recordChange(FieldStatus, h.status.String(), newStatus.String())
	h.status = newStatus
	return nil
}

// BackToDraft reverts a confirmed or cancelled order to Draft and cascades
// the reset to every line.
func (h *OrderHeader) BackToDraft() error {
	newStatus, err := h.status.BackToDraft()
	if err != nil {
		return err
	}

	for _, line := range h.lines {
		line.ResetToDraft()
	}

	h.recordChange(FieldStatus, h.status.String(), newStatus.String())
	h.status = newStatus
	return nil
}

// Complete unconditionally sets the order status to Done.
func (h *OrderHeader) Complete() {
	newStatus := h.status.Complete()
	if newStatus != h.status {
		h.recordChange(FieldStatus, h.status.String(), newStatus.String())
	}
	h.status = newStatus
}

// CompleteAll forces every line that is not yet done into Done, then
// completes the order.
func (h *OrderHeader) CompleteAll() {
	for _, line := range h.lines {
		if line.Status() != Done {
			line.MarkDone()
		}
	}
	h.Complete()
}

// CheckCompletion completes the order exactly when no line remains with a
// status other than Done; an order with no lines at all counts as done.
// Returns true when the probe completed the order. The probe is explicit:
// line-status changes do not trigger it, the process updating lines does.
func (h *OrderHeader) CheckCompletion() bool {
	for _, line := range h.lines {
		if line.Status() != Done {
			return false
		}
	}

	h.Complete()
	return true
}

// EnsureCanDelete rejects deletion of any order that already left draft.
func (h *OrderHeader) EnsureCanDelete() error {
	if h.status != Draft {
		return ErrOnlyDraftCanBeDeleted
	}
	return nil
}

// ValidateCompanyConsistency checks that the given warehouse and location
// records belong to the order's company. Unlike the synchronization engine,
// which silently corrects cross-field drift, a company mismatch here is a
// hard validation failure that aborts the triggering mutation. The location
// check is skipped for shared locations without an owning company.
func (h *OrderHeader) ValidateCompanyConsistency(wh *warehouse.Warehouse, loc *warehouse.StockLocation) error {
	if err := wh.Validate(); err != nil {
		return err
	}
	if err := loc.Validate(); err != nil {
		return err
	}

	if !wh.CompanyID().IsEqual(h.companyID) {
		return errs.NewValueIsInvalidErrorWithCause(
			"warehouse",
			fmt.Errorf("the company of the stock request must match that of the warehouse"),
		)
	}
	if locCompany := loc.CompanyID(); locCompany != nil && !locCompany.IsEqual(h.companyID) {
		return errs.NewValueIsInvalidErrorWithCause(
			"location",
			fmt.Errorf("the company of the stock request must match that of the location"),
		)
	}
	return nil
}

// TakeStatusChanges drains and returns the audit entries accumulated by the
// lifecycle operations since the last call.
func (h *OrderHeader) TakeStatusChanges() []StatusChange {
	changes := h.changes
	h.changes = nil
	return changes
}

func (h *OrderHeader) recordChange(field string, oldValue, newValue string) {
	h.changes = append(h.changes, StatusChange{
		Field:     field,
		OldValue:  oldValue,
		NewValue:  newValue,
		ChangedAt: time.Now().UTC(),
	})
}

func (h *OrderHeader) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	h.id = id
	return nil
}

func (h *OrderHeader) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	h.name = name
	return nil
}

func (h *OrderHeader) setRequestedBy(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	h.requestedBy = id
	return nil
}

func (h *OrderHeader) setWarehouseID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	h.warehouseID = id
	return nil
}

func (h *OrderHeader) setLocationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	h.locationID = id
	return nil
}

func (h *OrderHeader) setCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	h.companyID = id
	return nil
}

func (h *OrderHeader) setExpectedDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("expected date")
	}
	h.expectedDate = date
	return nil
}

func (h *OrderHeader) setShippingPolicy(policy ShippingPolicy) error {
	if err := policy.Validate(); err != nil {
		return err
	}
	h.shippingPolicy = policy
	return nil
}
