package commands

import (
	"errors"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCreateClientCommandIsNotConstructed = errors.New(
	"CreateClientCommand must be created via NewCreateClientCommand constructor",
)

// CreateClientCommand represents a request to create a client record.
type CreateClientCommand struct { //nolint:recvcheck //using for validation
	name        string
	email       string
	phoneNumber string

	guard guard.ConstructorGuard
}

// NewCreateClientCommand creates a command to create a client.
func NewCreateClientCommand(name, email, phoneNumber string) (CreateClientCommand, error) {
	if name == "" {
		return CreateClientCommand{}, errs.NewValueIsRequiredError("name")
	}

	return CreateClientCommand{
		name:        name,
		email:       email,
		phoneNumber: phoneNumber,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateClientCommand) Validate() error {
	return c.guard.Validate(ErrCreateClientCommandIsNotConstructed)
}

// Name returns the client display name.
func (c CreateClientCommand) Name() string {
	return c.name
}

// Email returns the contact email.
func (c CreateClientCommand) Email() string {
	return c.email
}

// PhoneNumber returns the contact phone number.
func (c CreateClientCommand) PhoneNumber() string {
	return c.phoneNumber
}
