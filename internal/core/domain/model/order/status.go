package order

import (
	"fmt"

	"pizzeria/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Draft ──> Finalized
//	              │
//	              └──> Finalized (repeat finalize re-stamps the timestamp)
//
// There is no transition back to Draft; un-finalizing is not supported.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is the initial status while the order is still being composed.
	// At most one order may be in this status at any time.
	Draft

	// Finalized indicates the order has been submitted.
	// Finalized orders carry a finalization timestamp and form the order history.
	Finalized
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Draft:     "Draft",
		Finalized: "Finalized",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:     "Draft",
		Finalized: "Finalized",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Draft, Finalized.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns "Draft" or "Finalized" for valid statuses and "Unknown" for
// invalid status values. Implements the fmt.Stringer interface and is
// safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateCanHaveFinalizedAt validates the consistency between order status
// and the presence of a finalization timestamp.
//
// Business Rules:
//   - Draft orders must not carry a finalization timestamp
//   - Finalized orders must carry a finalization timestamp
//
// Parameters:
//   - finalizedAt: whether the order carries a finalization timestamp
//
// Returns:
//   - error: validation error if status and timestamp presence are inconsistent
func (s Status) ValidateCanHaveFinalizedAt(finalizedAt bool) error {
	if finalizedAt && s != Finalized {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to have a finalization time", s.String()))
	}

	if !finalizedAt && s == Finalized {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to have no finalization time", s.String()))
	}

	return nil
}

// Finalize transitions the status to Finalized.
//
// Valid transitions:
//   - Draft -> Finalized (submission)
//   - Finalized -> Finalized (repeat finalize; the timestamp is re-stamped)
//
// Invalid transitions:
//   - Unknown -> Finalized (invalid initial state)
//
// Returns:
//   - (Finalized, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
//
// This method is used by Order.Finalize() to enforce state transitions.
func (s Status) Finalize() (Status, error) {
	if s != Draft && s != Finalized {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to finalize", s.String()))
	}

	return Finalized, nil
}
