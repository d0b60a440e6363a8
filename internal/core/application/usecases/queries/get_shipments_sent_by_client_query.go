package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetShipmentsSentByClientQueryIsNotConstructed = errors.New(
	"GetShipmentsSentByClientQuery must be created via NewGetShipmentsSentByClientQuery constructor",
)

// GetShipmentsSentByClientQuery retrieves the shipments a client has sent.
type GetShipmentsSentByClientQuery struct {
	clientID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentsSentByClientQuery creates a query filtered by sender.
func NewGetShipmentsSentByClientQuery(clientID kernel.UUID) (GetShipmentsSentByClientQuery, error) {
	if err := clientID.Validate(); err != nil {
		return GetShipmentsSentByClientQuery{}, err
	}

	return GetShipmentsSentByClientQuery{
		clientID: clientID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentsSentByClientQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentsSentByClientQueryIsNotConstructed)
}

// ClientID returns the sender filter.
func (q GetShipmentsSentByClientQuery) ClientID() kernel.UUID {
	return q.clientID
}
