package shipment

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// ValidationPolicy holds the opt-in consistency checks that the creation
// paths do not enforce on their own. The zero value is fully permissive:
// non-positive weights and shipments a client sends to themselves are
// accepted, matching the historical behavior of the system.
//
// The policy is configured once at composition time (STRICT_VALIDATION)
// and applied by the register/create command handlers before persisting.
type ValidationPolicy struct {
	// RequirePositiveWeight rejects shipments with weight <= 0.
	RequirePositiveWeight bool

	// RequireDistinctParties rejects shipments where sender equals receiver.
	RequireDistinctParties bool
}

// StrictValidationPolicy returns a policy with every check enabled.
func StrictValidationPolicy() ValidationPolicy {
	return ValidationPolicy{
		RequirePositiveWeight:  true,
		RequireDistinctParties: true,
	}
}

// Check applies the enabled checks to the shipment.
// A zero-value policy always returns nil.
func (p ValidationPolicy) Check(s *Shipment) error {
	if err := s.Validate(); err != nil {
		return err
	}

	if p.RequirePositiveWeight && s.Weight() <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"weight",
			fmt.Errorf("%v is not greater than 0", s.Weight()),
		)
	}

	if p.RequireDistinctParties && s.SenderID().IsEqual(s.ReceiverID()) {
		return errs.NewValueIsInvalidErrorWithCause(
			"receiver",
			fmt.Errorf("sender and receiver are the same client %s", s.SenderID()),
		)
	}

	return nil
}
