package queries

import (
	"context"

	"logistics/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

// CalculateRevenueQueryHandler aggregates revenue over delivered shipments.
//
// The window filters on the stamped delivery date, so shipments raw-updated
// to Delivered without a date never contribute. Prices are recomputed from
// weight and delivery mode; nothing is stored.
type CalculateRevenueQueryHandler struct {
	db *gorm.DB
}

// NewCalculateRevenueQueryHandler creates a handler for revenue queries.
func NewCalculateRevenueQueryHandler(db *gorm.DB) CalculateRevenueQueryHandler {
	return CalculateRevenueQueryHandler{db: db}
}

// Handle executes the revenue aggregation.
// An empty or inverted window yields a zero total, not an error.
func (h CalculateRevenueQueryHandler) Handle(
	ctx context.Context,
	query CalculateRevenueQuery,
) (CalculateRevenueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CalculateRevenueQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			weight,
			to_office
		FROM shipments
		WHERE status = ?
		  AND delivery_date >= ?
		  AND delivery_date <= ?
	`, int(shipment.Delivered), query.Start(), query.End()).Rows()
	if err != nil {
		return CalculateRevenueQueryResponse{}, err
	}
	defer rows.Close()

	var resp CalculateRevenueQueryResponse
	for rows.Next() {
		var weight float64
		var toOffice bool

		if err = rows.Scan(&weight, &toOffice); err != nil {
			return CalculateRevenueQueryResponse{}, err
		}

		resp.TotalRevenue += shipment.CalculatePrice(weight, toOffice)
		resp.ShipmentsCount++
	}

	if err = rows.Err(); err != nil {
		return CalculateRevenueQueryResponse{}, err
	}

	return resp, nil
}
