package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetShipmentsSentByClientQueryHandler retrieves shipments by sender.
type GetShipmentsSentByClientQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentsSentByClientQueryHandler creates a handler for sender queries.
func NewGetShipmentsSentByClientQueryHandler(db *gorm.DB) GetShipmentsSentByClientQueryHandler {
	return GetShipmentsSentByClientQueryHandler{db: db}
}

// Handle executes the query.
func (h GetShipmentsSentByClientQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentsSentByClientQuery,
) ([]ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+shipmentColumns+`
		FROM shipments
		WHERE sender_id = ?
		ORDER BY registration_date DESC, id
	`, query.ClientID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectShipmentRows(rows)
}
