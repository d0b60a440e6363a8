package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetShipmentsByStatusQueryHandler retrieves shipments filtered by status.
type GetShipmentsByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentsByStatusQueryHandler creates a handler for status-filtered queries.
func NewGetShipmentsByStatusQueryHandler(db *gorm.DB) GetShipmentsByStatusQueryHandler {
	return GetShipmentsByStatusQueryHandler{db: db}
}

// Handle executes the query. An empty result is a valid outcome.
func (h GetShipmentsByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentsByStatusQuery,
) ([]ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+shipmentColumns+`
		FROM shipments
		WHERE status = ?
		ORDER BY registration_date DESC, id
	`, int(query.Status())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectShipmentRows(rows)
}
