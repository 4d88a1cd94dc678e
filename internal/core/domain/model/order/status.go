package order

import (
	"fmt"

	"stockrequest/internal/pkg/errs"
)

// Status represents the lifecycle state of a stock request order and of its
// request lines. It implements a state machine with defined transitions to
// ensure orders follow the correct business workflow.
//
// State transitions:
//
//	Draft ──> Open ──> Done
//	  │         │
//	  └────┬────┘
//	       v
//	   Cancelled ──> Draft
//	(Open may also return to Draft)
//
// Done and Cancelled are terminal for forward transitions; a cancelled or
// in-progress order can be reset to Draft, a done order cannot.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is the initial status. Only draft orders may be renamed,
	// restructured or deleted.
	Draft

	// Open indicates the order has been confirmed and handed to the
	// fulfillment subsystem.
	Open

	// Done indicates every request line has been fulfilled.
	Done

	// Cancelled indicates the order was withdrawn before completion.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Draft:     "Draft",
		Open:      "Open",
		Done:      "Done",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:     "Draft",
		Open:      "Open",
		Done:      "Done",
		Cancelled: "Cancelled",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Draft, Open, Done and Cancelled; Unknown (0) and any
// other values are invalid. Used to vet Status values restored from the
// database or parsed from API input.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Returns "Unknown" for invalid status values. Implements fmt.Stringer and is
// safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Confirm transitions the status to Open.
//
// Valid transitions:
//   - Draft -> Open
//
// Re-confirming an already-open order is rejected rather than treated as a
// no-op, so double confirmation can never hand the same lines to fulfillment
// twice.
func (s Status) Confirm() (Status, error) {
	if s != Draft {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to confirm", s.String()),
		)
	}

	return Open, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Draft -> Cancelled
//   - Open -> Cancelled
//
// Done orders cannot be cancelled: fulfillment has already delivered them.
func (s Status) Cancel() (Status, error) {
	if s != Draft && s != Open {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}

// BackToDraft transitions the status to Draft, reverting a confirmed or
// cancelled order.
//
// Valid transitions:
//   - Open -> Draft
//   - Cancelled -> Draft
func (s Status) BackToDraft() (Status, error) {
	if s != Open && s != Cancelled {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to reset to draft", s.String()),
		)
	}

	return Draft, nil
}

// Complete transitions the status to Done.
// The transition is unconditional: completion is driven by line aggregation,
// and the aggregation rule alone decides when it fires.
func (s Status) Complete() Status {
	return Done
}
