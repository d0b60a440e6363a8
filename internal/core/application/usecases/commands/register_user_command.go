package commands

import (
	"errors"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand represents a request to create a login identity bound
// to an existing client or employee. The password arrives in plaintext and
// is hashed by the handler before anything touches the store.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	username   string
	password   string
	role       account.Role
	clientID   *kernel.UUID
	employeeID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a user.
// Exactly one of clientID/employeeID must be set, matching the role; the
// full binding check is repeated by the account.User constructor.
func NewRegisterUserCommand(
	username string,
	password string,
	role account.Role,
	clientID *kernel.UUID,
	employeeID *kernel.UUID,
) (RegisterUserCommand, error) {
	if username == "" {
		return RegisterUserCommand{}, errs.NewValueIsRequiredError("username")
	}
	if password == "" {
		return RegisterUserCommand{}, errs.NewValueIsRequiredError("password")
	}
	if err := role.Validate(); err != nil {
		return RegisterUserCommand{}, err
	}

	return RegisterUserCommand{
		username:   username,
		password:   password,
		role:       role,
		clientID:   clientID,
		employeeID: employeeID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// Username returns the login name.
func (c RegisterUserCommand) Username() string {
	return c.username
}

// Password returns the plaintext password to hash.
func (c RegisterUserCommand) Password() string {
	return c.password
}

// Role returns the requested role.
func (c RegisterUserCommand) Role() account.Role {
	return c.role
}

// ClientID returns the client binding, or nil.
func (c RegisterUserCommand) ClientID() *kernel.UUID {
	return c.clientID
}

// EmployeeID returns the employee binding, or nil.
func (c RegisterUserCommand) EmployeeID() *kernel.UUID {
	return c.employeeID
}
