package account

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Role classifies a login identity as a client or an employee.
// Employees may register shipments, mark them delivered, and view all
// shipments; clients are limited to their own projections.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleClient identifies a customer account.
	RoleClient

	// RoleEmployee identifies a staff account.
	RoleEmployee
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleClient:   "Client",
		RoleEmployee: "Employee",
	}
}

// Validate checks that the role is RoleClient or RoleEmployee.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// RoleFromString parses a role name. Matching is exact.
func RoleFromString(name string) (Role, error) {
	for role, str := range getRoleStrings() {
		if str == name {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role is invalid",
		fmt.Errorf("%q is not a valid role name", name),
	)
}
