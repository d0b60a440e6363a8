package queries

import (
	"context"

	"logistics/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

// GetNotDeliveredShipmentsQueryHandler retrieves undelivered shipments.
type GetNotDeliveredShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetNotDeliveredShipmentsQueryHandler creates a handler for undelivered shipment queries.
func NewGetNotDeliveredShipmentsQueryHandler(db *gorm.DB) GetNotDeliveredShipmentsQueryHandler {
	return GetNotDeliveredShipmentsQueryHandler{db: db}
}

// Handle executes the query. The filter is by status, not delivery date:
// a row raw-updated to Delivered without a date does not appear here.
func (h GetNotDeliveredShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetNotDeliveredShipmentsQuery,
) ([]ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+shipmentColumns+`
		FROM shipments
		WHERE status != ?
		ORDER BY registration_date DESC, id
	`, int(shipment.Delivered)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectShipmentRows(rows)
}
