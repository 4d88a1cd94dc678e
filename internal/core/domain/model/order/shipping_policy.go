package order

import (
	"fmt"

	"stockrequest/internal/pkg/errs"
)

// ShippingPolicy controls how the fulfillment subsystem releases the goods of
// one order: line by line as each product becomes available, or everything in
// a single shipment.
type ShippingPolicy int

const (
	// UnknownPolicy represents an invalid or undefined shipping policy.
	UnknownPolicy ShippingPolicy = iota

	// ReceiveEachWhenAvailable releases each product as soon as it is
	// available. This is the default policy for new orders.
	ReceiveEachWhenAvailable

	// ReceiveAllAtOnce holds every product until the whole order can be
	// shipped together.
	ReceiveAllAtOnce
)

func getShippingPolicyStrings() map[ShippingPolicy]string {
	return map[ShippingPolicy]string{
		UnknownPolicy:            "Unknown",
		ReceiveEachWhenAvailable: "ReceiveEachWhenAvailable",
		ReceiveAllAtOnce:         "ReceiveAllAtOnce",
	}
}

// Validate checks if the ShippingPolicy value is valid.
func (p ShippingPolicy) Validate() error {
	if p != ReceiveEachWhenAvailable && p != ReceiveAllAtOnce {
		return errs.NewValueIsInvalidErrorWithCause(
			"shipping policy is invalid",
			fmt.Errorf("%d is not a valid shipping policy", p),
		)
	}
	return nil
}

// String returns the human-readable name of the policy.
// Returns "Unknown" for invalid values. Implements fmt.Stringer.
func (p ShippingPolicy) String() string {
	if str, ok := getShippingPolicyStrings()[p]; ok {
		return str
	}
	return "Unknown"
}
