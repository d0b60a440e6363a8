// Package ports defines repository interfaces for the logistics domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
// List projections (by status, by employee, by client, delivered-in-window)
// live on the query side; the repository covers the read-modify-write cycle
// of the command handlers.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no such shipment exists.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// Delete removes a shipment by its unique identifier.
	// Deleting a nonexistent id is a no-op.
	Delete(ctx context.Context, id kernel.UUID) error
}
