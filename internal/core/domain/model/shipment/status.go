package shipment

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
//
// State transitions:
//
//	Shipped ────────> Delivered
//	InTransit ──────> Delivered
//
// Shipped is the only initial state. InTransit exists in the vocabulary but
// no guarded operation transitions into it; it is reachable only through the
// raw field overwrite. Delivered is terminal for the delivery workflow,
// though a repeated deliver call is accepted and restamps the delivery date.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Shipped is the initial status assigned at registration.
	Shipped

	// InTransit marks a shipment moving between offices.
	InTransit

	// Delivered marks a shipment handed over to its receiver.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Shipped:   "Shipped",
		InTransit: "InTransit",
		Delivered: "Delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Shipped:   "Shipped",
		InTransit: "InTransit",
		Delivered: "Delivered",
	}
}

// Validate checks that the Status value is one of Shipped, InTransit, Delivered.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status name as it appears on the wire and in
// persisted rows. Matching is exact; unknown names yield an error.
func StatusFromString(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status name", name),
	)
}

// Deliver transitions the status to Delivered.
//
// Any valid status may transition to Delivered, including Delivered itself:
// a repeated deliver call succeeds and the caller restamps the delivery date.
// Only invalid status values are rejected.
func (s Status) Deliver() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	return Delivered, nil
}
