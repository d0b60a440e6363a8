package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/guard"
)

var ErrUpdateShipmentCommandIsNotConstructed = errors.New(
	"UpdateShipmentCommand must be created via NewUpdateShipmentCommand constructor",
)

// UpdateShipmentCommand represents a raw overwrite of a shipment's mutable
// fields, including the status. No lifecycle transition is validated and no
// role gate applies; the registration date, delivery date, and registering
// employee are left untouched.
type UpdateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID      kernel.UUID
	senderID        kernel.UUID
	receiverID      kernel.UUID
	deliveryAddress string
	weight          float64
	toOffice        bool
	status          shipment.Status

	guard guard.ConstructorGuard
}

// NewUpdateShipmentCommand creates a command to overwrite a shipment.
func NewUpdateShipmentCommand(
	shipmentID kernel.UUID,
	senderID kernel.UUID,
	receiverID kernel.UUID,
	deliveryAddress string,
	weight float64,
	toOffice bool,
	status shipment.Status,
) (UpdateShipmentCommand, error) {
	cmd := UpdateShipmentCommand{
		weight:   weight,
		toOffice: toOffice,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setSenderID(senderID),
		cmd.setReceiverID(receiverID),
		cmd.setDeliveryAddress(deliveryAddress),
		cmd.setStatus(status),
	); err != nil {
		return UpdateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to overwrite.
func (c UpdateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// SenderID returns the sending client reference.
func (c UpdateShipmentCommand) SenderID() kernel.UUID {
	return c.senderID
}

// ReceiverID returns the receiving client reference.
func (c UpdateShipmentCommand) ReceiverID() kernel.UUID {
	return c.receiverID
}

// DeliveryAddress returns the destination address.
func (c UpdateShipmentCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// Weight returns the parcel weight in kilograms.
func (c UpdateShipmentCommand) Weight() float64 {
	return c.weight
}

// ToOffice reports whether the shipment is delivered to an office.
func (c UpdateShipmentCommand) ToOffice() bool {
	return c.toOffice
}

// Status returns the status to write, taken as-is.
func (c UpdateShipmentCommand) Status() shipment.Status {
	return c.status
}

func (c *UpdateShipmentCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.shipmentID = id
	return nil
}

func (c *UpdateShipmentCommand) setSenderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.senderID = id
	return nil
}

func (c *UpdateShipmentCommand) setReceiverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.receiverID = id
	return nil
}

func (c *UpdateShipmentCommand) setDeliveryAddress(address string) error {
	if address == "" {
		return ErrDeliveryAddressIsRequired
	}

	c.deliveryAddress = address
	return nil
}

func (c *UpdateShipmentCommand) setStatus(status shipment.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
