// Package shipmentrepo persists shipment aggregates with GORM.
// Handles the mapping between the domain aggregate and its relational
// representation.
package shipmentrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO is the database row for a shipment aggregate.
// Status is stored as its integer value; DeliveryDate is nullable and stays
// NULL until the shipment is delivered.
type ShipmentDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	SenderID         uuid.UUID `gorm:"type:uuid;index"`
	ReceiverID       uuid.UUID `gorm:"type:uuid;index"`
	DeliveryAddress  string
	Weight           float64
	ToOffice         bool
	Status           int `gorm:"index"`
	RegistrationDate time.Time
	DeliveryDate     *time.Time
	RegisteredByID   uuid.UUID `gorm:"type:uuid;index"`
}

// TableName overrides GORM's default naming to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

func fromDomain(s *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:               s.ID().Bytes(),
		SenderID:         s.SenderID().Bytes(),
		ReceiverID:       s.ReceiverID().Bytes(),
		DeliveryAddress:  s.DeliveryAddress(),
		Weight:           s.Weight(),
		ToOffice:         s.ToOffice(),
		Status:           int(s.Status()),
		RegistrationDate: s.RegistrationDate(),
		DeliveryDate:     s.DeliveryDate(),
		RegisteredByID:   s.RegisteredByID().Bytes(),
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	senderID, err := kernel.UUIDFromBytes(dto.SenderID[:])
	if err != nil {
		return nil, err
	}
	receiverID, err := kernel.UUIDFromBytes(dto.ReceiverID[:])
	if err != nil {
		return nil, err
	}
	registeredByID, err := kernel.UUIDFromBytes(dto.RegisteredByID[:])
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(
		id,
		senderID,
		receiverID,
		dto.DeliveryAddress,
		dto.Weight,
		dto.ToOffice,
		shipment.Status(dto.Status),
		dto.RegistrationDate,
		dto.DeliveryDate,
		registeredByID,
	)
}
