// Package queries contains read-only operations for retrieving system state.
// Implements the Query side of the CQRS architecture: handlers read
// denormalized rows straight from the database, bypassing the domain
// aggregates and repositories.
package queries

import (
	"database/sql"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentResponse is the shared read model for shipment queries.
// Price is computed from the row, not stored.
type ShipmentResponse struct {
	ID               kernel.UUID
	SenderID         kernel.UUID
	ReceiverID       kernel.UUID
	DeliveryAddress  string
	Weight           float64
	ToOffice         bool
	Status           shipment.Status
	RegistrationDate time.Time
	DeliveryDate     *time.Time
	RegisteredByID   kernel.UUID
	Price            float64
}

// shipmentColumns is the column list every shipment query selects,
// in the order scanShipmentRow consumes them.
const shipmentColumns = `
	id,
	sender_id,
	receiver_id,
	delivery_address,
	weight,
	to_office,
	status,
	registration_date,
	delivery_date,
	registered_by_id`

func scanShipmentRow(rows *sql.Rows) (ShipmentResponse, error) {
	var resp ShipmentResponse
	var id, senderID, receiverID, registeredByID uuid.UUID
	var status int
	var deliveryDate sql.NullTime

	err := rows.Scan(
		&id,
		&senderID,
		&receiverID,
		&resp.DeliveryAddress,
		&resp.Weight,
		&resp.ToOffice,
		&status,
		&resp.RegistrationDate,
		&deliveryDate,
		&registeredByID,
	)
	if err != nil {
		return ShipmentResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return ShipmentResponse{}, err
	}
	if resp.SenderID, err = kernel.UUIDFromBytes(senderID[:]); err != nil {
		return ShipmentResponse{}, err
	}
	if resp.ReceiverID, err = kernel.UUIDFromBytes(receiverID[:]); err != nil {
		return ShipmentResponse{}, err
	}
	if resp.RegisteredByID, err = kernel.UUIDFromBytes(registeredByID[:]); err != nil {
		return ShipmentResponse{}, err
	}

	resp.Status = shipment.Status(status)
	if deliveryDate.Valid {
		resp.DeliveryDate = &deliveryDate.Time
	}
	resp.Price = shipment.CalculatePrice(resp.Weight, resp.ToOffice)

	return resp, nil
}

func collectShipmentRows(rows *sql.Rows) ([]ShipmentResponse, error) {
	shipments := make([]ShipmentResponse, 0)

	for rows.Next() {
		resp, err := scanShipmentRow(rows)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
