package queries

import (
	"errors"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/pkg/guard"
)

var ErrGetAllShipmentsQueryIsNotConstructed = errors.New(
	"GetAllShipmentsQuery must be created via NewGetAllShipmentsQuery constructor",
)

// GetAllShipmentsQuery retrieves every shipment in the system.
// The full listing is employee-gated; clients use the per-client projections.
type GetAllShipmentsQuery struct {
	caller account.Caller

	guard guard.ConstructorGuard
}

// NewGetAllShipmentsQuery creates a query to retrieve all shipments.
func NewGetAllShipmentsQuery(caller account.Caller) (GetAllShipmentsQuery, error) {
	if err := caller.Validate(); err != nil {
		return GetAllShipmentsQuery{}, err
	}

	return GetAllShipmentsQuery{
		caller: caller,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllShipmentsQueryIsNotConstructed)
}

// Caller returns the resolved identity of the requesting caller.
func (q GetAllShipmentsQuery) Caller() account.Caller {
	return q.caller
}
