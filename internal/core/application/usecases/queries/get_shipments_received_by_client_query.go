package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetShipmentsReceivedByClientQueryIsNotConstructed = errors.New(
	"GetShipmentsReceivedByClientQuery must be created via NewGetShipmentsReceivedByClientQuery constructor",
)

// GetShipmentsReceivedByClientQuery retrieves the shipments addressed to a client.
type GetShipmentsReceivedByClientQuery struct {
	clientID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentsReceivedByClientQuery creates a query filtered by receiver.
func NewGetShipmentsReceivedByClientQuery(clientID kernel.UUID) (GetShipmentsReceivedByClientQuery, error) {
	if err := clientID.Validate(); err != nil {
		return GetShipmentsReceivedByClientQuery{}, err
	}

	return GetShipmentsReceivedByClientQuery{
		clientID: clientID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentsReceivedByClientQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentsReceivedByClientQueryIsNotConstructed)
}

// ClientID returns the receiver filter.
func (q GetShipmentsReceivedByClientQuery) ClientID() kernel.UUID {
	return q.clientID
}
