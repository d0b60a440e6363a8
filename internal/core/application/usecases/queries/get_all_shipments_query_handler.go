package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllShipmentsQueryHandler retrieves every shipment row.
type GetAllShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllShipmentsQueryHandler creates a handler for the full shipment listing.
func NewGetAllShipmentsQueryHandler(db *gorm.DB) GetAllShipmentsQueryHandler {
	return GetAllShipmentsQueryHandler{db: db}
}

// Handle executes the query. Non-employee callers are rejected before any
// database access. Results are sorted by registration date, newest first.
func (h GetAllShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetAllShipmentsQuery,
) ([]ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := query.Caller().RequireEmployee("only employees may list all shipments"); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT ` + shipmentColumns + `
		FROM shipments
		ORDER BY registration_date DESC, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectShipmentRows(rows)
}
