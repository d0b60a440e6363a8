package commands

import (
	"errors"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCreateCompanyCommandIsNotConstructed = errors.New(
	"CreateCompanyCommand must be created via NewCreateCompanyCommand constructor",
)

// CreateCompanyCommand represents a request to create a company.
type CreateCompanyCommand struct { //nolint:recvcheck //using for validation
	name string

	guard guard.ConstructorGuard
}

// NewCreateCompanyCommand creates a command to create a company.
func NewCreateCompanyCommand(name string) (CreateCompanyCommand, error) {
	if name == "" {
		return CreateCompanyCommand{}, errs.NewValueIsRequiredError("name")
	}

	return CreateCompanyCommand{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCompanyCommand) Validate() error {
	return c.guard.Validate(ErrCreateCompanyCommandIsNotConstructed)
}

// Name returns the company name.
func (c CreateCompanyCommand) Name() string {
	return c.name
}
