package account

import (
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrCallerIsNotConstructed is returned when a Caller instance was not
// created through the NewCaller factory method.
var ErrCallerIsNotConstructed = fmt.Errorf("Caller must be created via NewCaller")

// Caller is the resolved identity of an incoming request: the role plus the
// employee or client record bound to it. It is resolved per call from the
// username the authentication layer hands over, never cached, and passed
// explicitly into every gated operation.
type Caller struct {
	role       Role
	employeeID *kernel.UUID
	clientID   *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCaller creates a Caller with the given role and entity references.
func NewCaller(role Role, employeeID *kernel.UUID, clientID *kernel.UUID) (Caller, error) {
	if err := role.Validate(); err != nil {
		return Caller{}, err
	}
	if employeeID != nil {
		if err := employeeID.Validate(); err != nil {
			return Caller{}, err
		}
	}
	if clientID != nil {
		if err := clientID.Validate(); err != nil {
			return Caller{}, err
		}
	}

	return Caller{
		role:       role,
		employeeID: employeeID,
		clientID:   clientID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Caller was created through NewCaller.
func (c Caller) Validate() error {
	return c.guard.Validate(ErrCallerIsNotConstructed)
}

// Role returns the caller's role.
func (c Caller) Role() Role {
	return c.role
}

// EmployeeID returns the employee bound to the caller, or nil.
func (c Caller) EmployeeID() *kernel.UUID {
	return c.employeeID
}

// ClientID returns the client bound to the caller, or nil.
func (c Caller) ClientID() *kernel.UUID {
	return c.clientID
}

// RequireEmployee rejects callers whose role is not RoleEmployee.
// The operation name is carried into the error for the boundary to report.
func (c Caller) RequireEmployee(operation string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.role != RoleEmployee {
		return errs.NewNotAuthorizedError(operation)
	}
	return nil
}

// RequireEmployeeRecord rejects callers who are not employees or whose
// identity is not bound to an employee record. Registration stamps the
// registering employee from this reference, so the role alone is not enough.
func (c Caller) RequireEmployeeRecord(operation string) (kernel.UUID, error) {
	if err := c.RequireEmployee(operation); err != nil {
		return kernel.UUID{}, err
	}
	if c.employeeID == nil {
		return kernel.UUID{}, errs.NewNotAuthorizedErrorWithCause(
			operation,
			fmt.Errorf("caller has no employee record"),
		)
	}
	return *c.employeeID, nil
}
