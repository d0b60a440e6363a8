package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetShipmentsReceivedByClientQueryHandler retrieves shipments by receiver.
type GetShipmentsReceivedByClientQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentsReceivedByClientQueryHandler creates a handler for receiver queries.
func NewGetShipmentsReceivedByClientQueryHandler(db *gorm.DB) GetShipmentsReceivedByClientQueryHandler {
	return GetShipmentsReceivedByClientQueryHandler{db: db}
}

// Handle executes the query.
func (h GetShipmentsReceivedByClientQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentsReceivedByClientQuery,
) ([]ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+shipmentColumns+`
		FROM shipments
		WHERE receiver_id = ?
		ORDER BY registration_date DESC, id
	`, query.ClientID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectShipmentRows(rows)
}
