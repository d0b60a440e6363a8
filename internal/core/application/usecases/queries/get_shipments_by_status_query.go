package queries

import (
	"errors"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/guard"
)

var ErrGetShipmentsByStatusQueryIsNotConstructed = errors.New(
	"GetShipmentsByStatusQuery must be created via NewGetShipmentsByStatusQuery constructor",
)

// GetShipmentsByStatusQuery retrieves all shipments in a given status.
type GetShipmentsByStatusQuery struct {
	status shipment.Status

	guard guard.ConstructorGuard
}

// NewGetShipmentsByStatusQuery creates a query filtered by status.
func NewGetShipmentsByStatusQuery(status shipment.Status) (GetShipmentsByStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return GetShipmentsByStatusQuery{}, err
	}

	return GetShipmentsByStatusQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentsByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentsByStatusQueryIsNotConstructed)
}

// Status returns the status filter.
func (q GetShipmentsByStatusQuery) Status() shipment.Status {
	return q.status
}
