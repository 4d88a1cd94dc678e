package order

import (
	"errors"

	"stockrequest/internal/core/domain/model/kernel"
	"stockrequest/internal/pkg/errs"
	"stockrequest/internal/pkg/guard"
)

// ErrGroupingKeyIsNotConstructed is returned when using an improperly initialized GroupingKey.
var ErrGroupingKeyIsNotConstructed = errors.New("GroupingKey must be created via NewGroupingKey constructor")

// GroupingKey is an opaque handle the fulfillment subsystem uses to batch the
// transfers generated for one order's lines into a single delivery. The core
// never inspects it beyond identity and name; confirming an order without a
// key creates one named after the order.
type GroupingKey struct {
	id   kernel.UUID
	name string

	guard guard.ConstructorGuard
}

// NewGroupingKey creates a GroupingKey reference.
func NewGroupingKey(id kernel.UUID, name string) (GroupingKey, error) {
	if err := id.Validate(); err != nil {
		return GroupingKey{}, err
	}
	if name == "" {
		return GroupingKey{}, errs.NewValueIsRequiredError("name")
	}

	return GroupingKey{
		id:    id,
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the GroupingKey was created through NewGroupingKey.
func (k GroupingKey) Validate() error {
	return k.guard.Validate(ErrGroupingKeyIsNotConstructed)
}

// ID returns the grouping key identifier.
func (k GroupingKey) ID() kernel.UUID {
	return k.id
}

// Name returns the grouping key name. For keys created at confirmation time
// this equals the order name.
func (k GroupingKey) Name() string {
	return k.name
}

// IsEqual compares two grouping keys by identity.
func (k GroupingKey) IsEqual(other GroupingKey) bool {
	return k.id.IsEqual(other.id)
}
