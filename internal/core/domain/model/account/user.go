package account

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not
	// created through the NewUser factory method.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser")
)

// User binds a username to exactly one of a client or an employee.
//
// Invariants:
//   - A client user references a client and no employee
//   - An employee user references an employee and no client
//   - The password hash is opaque; verification is an external concern
type User struct {
	id           kernel.UUID
	username     string
	passwordHash string
	role         Role
	clientID     *kernel.UUID
	employeeID   *kernel.UUID

	isConstructed bool
}

// NewUser creates a new User. Exactly one of clientID/employeeID must be
// set, matching the role.
func NewUser(
	id kernel.UUID,
	username string,
	passwordHash string,
	role Role,
	clientID *kernel.UUID,
	employeeID *kernel.UUID,
) (*User, error) {
	if err := errors.Join(
		id.Validate(),
		role.Validate(),
	); err != nil {
		return nil, err
	}
	if username == "" {
		return nil, errs.NewValueIsRequiredError("username")
	}
	if passwordHash == "" {
		return nil, errs.NewValueIsRequiredError("passwordHash")
	}

	switch role {
	case RoleClient:
		if clientID == nil {
			return nil, errs.NewValueIsRequiredError("clientId")
		}
		if employeeID != nil {
			return nil, errs.NewValueIsInvalidError("employeeId")
		}
		if err := clientID.Validate(); err != nil {
			return nil, err
		}
	case RoleEmployee:
		if employeeID == nil {
			return nil, errs.NewValueIsRequiredError("employeeId")
		}
		if clientID != nil {
			return nil, errs.NewValueIsInvalidError("clientId")
		}
		if err := employeeID.Validate(); err != nil {
			return nil, err
		}
	}

	return &User{
		id:            id,
		username:      username,
		passwordHash:  passwordHash,
		role:          role,
		clientID:      clientID,
		employeeID:    employeeID,
		isConstructed: true,
	}, nil
}

// Validate ensures the User was created through NewUser.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Username returns the login name.
func (u *User) Username() string {
	return u.username
}

// PasswordHash returns the stored password hash.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Role returns the user's role.
func (u *User) Role() Role {
	return u.role
}

// ClientID returns the bound client reference, or nil for employee users.
func (u *User) ClientID() *kernel.UUID {
	return u.clientID
}

// EmployeeID returns the bound employee reference, or nil for client users.
func (u *User) EmployeeID() *kernel.UUID {
	return u.employeeID
}

// Caller derives the capability object for a request authenticated as this
// user. Gated operations take the Caller as an explicit argument.
func (u *User) Caller() (Caller, error) {
	if err := u.Validate(); err != nil {
		return Caller{}, err
	}
	return NewCaller(u.role, u.employeeID, u.clientID)
}
