package party

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrEmployeeIsNotConstructed is returned when an Employee instance was not
	// created through the NewEmployee factory method.
	ErrEmployeeIsNotConstructed = errors.New("Employee must be created via NewEmployee")
)

// EmployeeRole distinguishes office workers, who register shipments at a
// desk, from couriers, who carry them out for delivery.
type EmployeeRole int

const (
	// EmployeeRoleUnknown represents an invalid or undefined role.
	EmployeeRoleUnknown EmployeeRole = iota

	// OfficeWorker registers and hands out shipments at an office.
	OfficeWorker

	// Courier picks up and delivers shipments.
	Courier
)

func getEmployeeRoleStrings() map[EmployeeRole]string {
	return map[EmployeeRole]string{
		OfficeWorker: "OfficeWorker",
		Courier:      "Courier",
	}
}

// Validate checks that the role is OfficeWorker or Courier.
func (r EmployeeRole) Validate() error {
	if _, ok := getEmployeeRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("employee role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
func (r EmployeeRole) String() string {
	if str, ok := getEmployeeRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// EmployeeRoleFromString parses a role name. Matching is exact.
func EmployeeRoleFromString(name string) (EmployeeRole, error) {
	for role, str := range getEmployeeRoleStrings() {
		if str == name {
			return role, nil
		}
	}
	return EmployeeRoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"employee role is invalid",
		fmt.Errorf("%q is not a valid role name", name),
	)
}

// Employee is a member of staff attached to an office. Employees register
// shipments and mark them delivered; shipments reference the registering
// employee by ID.
type Employee struct {
	id       kernel.UUID
	name     string
	officeID kernel.UUID
	role     EmployeeRole

	isConstructed bool
}

// NewEmployee creates a new Employee attached to an office.
func NewEmployee(id kernel.UUID, name string, officeID kernel.UUID, role EmployeeRole) (*Employee, error) {
	if err := errors.Join(
		id.Validate(),
		officeID.Validate(),
		role.Validate(),
	); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Employee{
		id:            id,
		name:          name,
		officeID:      officeID,
		role:          role,
		isConstructed: true,
	}, nil
}

// Validate ensures the Employee was created through NewEmployee.
func (e *Employee) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEmployeeIsNotConstructed
	}
	return nil
}

// ID returns the employee's unique identifier.
func (e *Employee) ID() kernel.UUID {
	return e.id
}

// Name returns the employee's display name.
func (e *Employee) Name() string {
	return e.name
}

// OfficeID returns the identifier of the office the employee works at.
func (e *Employee) OfficeID() kernel.UUID {
	return e.officeID
}

// Role returns the employee's role.
func (e *Employee) Role() EmployeeRole {
	return e.role
}

// Reassign moves the employee to a different office and role.
func (e *Employee) Reassign(officeID kernel.UUID, role EmployeeRole) error {
	if err := errors.Join(
		officeID.Validate(),
		role.Validate(),
	); err != nil {
		return err
	}

	e.officeID = officeID
	e.role = role
	return nil
}
