package queries

import (
	"errors"
	"time"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCalculateRevenueQueryIsNotConstructed = errors.New(
	"CalculateRevenueQuery must be created via NewCalculateRevenueQuery constructor",
)

// CalculateRevenueQuery computes the revenue over delivered shipments whose
// delivery date falls inside the inclusive [start, end] window.
//
// An inverted window (start after end) is not an error: it matches no
// shipments and yields zero revenue.
type CalculateRevenueQuery struct {
	start time.Time
	end   time.Time

	guard guard.ConstructorGuard
}

// NewCalculateRevenueQuery creates a revenue query over a date window.
func NewCalculateRevenueQuery(start, end time.Time) (CalculateRevenueQuery, error) {
	if start.IsZero() {
		return CalculateRevenueQuery{}, errs.NewValueIsRequiredError("startDate")
	}
	if end.IsZero() {
		return CalculateRevenueQuery{}, errs.NewValueIsRequiredError("endDate")
	}

	return CalculateRevenueQuery{
		start: start,
		end:   end,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CalculateRevenueQuery) Validate() error {
	return q.guard.Validate(ErrCalculateRevenueQueryIsNotConstructed)
}

// Start returns the inclusive window start.
func (q CalculateRevenueQuery) Start() time.Time {
	return q.start
}

// End returns the inclusive window end.
func (q CalculateRevenueQuery) End() time.Time {
	return q.end
}

// CalculateRevenueQueryResponse carries the aggregated revenue figure.
type CalculateRevenueQueryResponse struct {
	TotalRevenue   float64
	ShipmentsCount int
}
