package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCreateOfficeCommandIsNotConstructed = errors.New(
	"CreateOfficeCommand must be created via NewCreateOfficeCommand constructor",
)

// CreateOfficeCommand represents a request to create an office belonging
// to a company.
type CreateOfficeCommand struct { //nolint:recvcheck //using for validation
	address   string
	city      string
	companyID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOfficeCommand creates a command to create an office.
func NewCreateOfficeCommand(address, city string, companyID kernel.UUID) (CreateOfficeCommand, error) {
	if address == "" {
		return CreateOfficeCommand{}, errs.NewValueIsRequiredError("address")
	}
	if city == "" {
		return CreateOfficeCommand{}, errs.NewValueIsRequiredError("city")
	}
	if err := companyID.Validate(); err != nil {
		return CreateOfficeCommand{}, err
	}

	return CreateOfficeCommand{
		address:   address,
		city:      city,
		companyID: companyID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOfficeCommand) Validate() error {
	return c.guard.Validate(ErrCreateOfficeCommandIsNotConstructed)
}

// Address returns the street address of the office.
func (c CreateOfficeCommand) Address() string {
	return c.address
}

// City returns the city of the office.
func (c CreateOfficeCommand) City() string {
	return c.city
}

// CompanyID returns the owning company reference.
func (c CreateOfficeCommand) CompanyID() kernel.UUID {
	return c.companyID
}
