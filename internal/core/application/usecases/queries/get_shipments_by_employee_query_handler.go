package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetShipmentsByEmployeeQueryHandler retrieves shipments registered by an employee.
// An unknown employee id yields an empty list, not an error.
type GetShipmentsByEmployeeQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentsByEmployeeQueryHandler creates a handler for per-employee queries.
func NewGetShipmentsByEmployeeQueryHandler(db *gorm.DB) GetShipmentsByEmployeeQueryHandler {
	return GetShipmentsByEmployeeQueryHandler{db: db}
}

// Handle executes the query.
func (h GetShipmentsByEmployeeQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentsByEmployeeQuery,
) ([]ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+shipmentColumns+`
		FROM shipments
		WHERE registered_by_id = ?
		ORDER BY registration_date DESC, id
	`, query.EmployeeID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectShipmentRows(rows)
}
