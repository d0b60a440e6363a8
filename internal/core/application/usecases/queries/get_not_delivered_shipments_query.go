package queries

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrGetNotDeliveredShipmentsQueryIsNotConstructed = errors.New(
	"GetNotDeliveredShipmentsQuery must be created via NewGetNotDeliveredShipmentsQuery constructor",
)

// GetNotDeliveredShipmentsQuery retrieves all shipments that have not yet
// been delivered, covering both Shipped and InTransit.
type GetNotDeliveredShipmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetNotDeliveredShipmentsQuery creates a query for undelivered shipments.
func NewGetNotDeliveredShipmentsQuery() GetNotDeliveredShipmentsQuery {
	return GetNotDeliveredShipmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetNotDeliveredShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetNotDeliveredShipmentsQueryIsNotConstructed)
}
