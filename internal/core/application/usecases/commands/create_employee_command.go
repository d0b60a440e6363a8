package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/party"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCreateEmployeeCommandIsNotConstructed = errors.New(
	"CreateEmployeeCommand must be created via NewCreateEmployeeCommand constructor",
)

// CreateEmployeeCommand represents a request to create an employee attached
// to an office.
type CreateEmployeeCommand struct { //nolint:recvcheck //using for validation
	name     string
	officeID kernel.UUID
	role     party.EmployeeRole

	guard guard.ConstructorGuard
}

// NewCreateEmployeeCommand creates a command to create an employee.
func NewCreateEmployeeCommand(
	name string,
	officeID kernel.UUID,
	role party.EmployeeRole,
) (CreateEmployeeCommand, error) {
	if name == "" {
		return CreateEmployeeCommand{}, errs.NewValueIsRequiredError("name")
	}
	if err := errors.Join(
		officeID.Validate(),
		role.Validate(),
	); err != nil {
		return CreateEmployeeCommand{}, err
	}

	return CreateEmployeeCommand{
		name:     name,
		officeID: officeID,
		role:     role,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateEmployeeCommand) Validate() error {
	return c.guard.Validate(ErrCreateEmployeeCommandIsNotConstructed)
}

// Name returns the employee display name.
func (c CreateEmployeeCommand) Name() string {
	return c.name
}

// OfficeID returns the office the employee is attached to.
func (c CreateEmployeeCommand) OfficeID() kernel.UUID {
	return c.officeID
}

// Role returns the employee role.
func (c CreateEmployeeCommand) Role() party.EmployeeRole {
	return c.role
}
