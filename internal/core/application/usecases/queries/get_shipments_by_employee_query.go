package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetShipmentsByEmployeeQueryIsNotConstructed = errors.New(
	"GetShipmentsByEmployeeQuery must be created via NewGetShipmentsByEmployeeQuery constructor",
)

// GetShipmentsByEmployeeQuery retrieves the shipments registered by a
// specific employee.
type GetShipmentsByEmployeeQuery struct {
	employeeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentsByEmployeeQuery creates a query filtered by registering employee.
func NewGetShipmentsByEmployeeQuery(employeeID kernel.UUID) (GetShipmentsByEmployeeQuery, error) {
	if err := employeeID.Validate(); err != nil {
		return GetShipmentsByEmployeeQuery{}, err
	}

	return GetShipmentsByEmployeeQuery{
		employeeID: employeeID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentsByEmployeeQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentsByEmployeeQueryIsNotConstructed)
}

// EmployeeID returns the registering employee filter.
func (q GetShipmentsByEmployeeQuery) EmployeeID() kernel.UUID {
	return q.employeeID
}
