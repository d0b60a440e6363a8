package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
)

// CreateShipmentCommand represents the unregistered creation path: a direct
// create that forces the Shipped status and the registration date but trusts
// the caller-supplied registering employee as-is, without resolving it from
// an authenticated identity.
//
// This entry point deliberately has a weaker trust contract than
// RegisterShipmentCommand; the two must stay distinct.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	senderID        kernel.UUID
	receiverID      kernel.UUID
	deliveryAddress string
	weight          float64
	toOffice        bool
	registeredByID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command for the unregistered creation path.
// registeredByID is trusted as-is; it is not checked against the employee registry.
func NewCreateShipmentCommand(
	senderID kernel.UUID,
	receiverID kernel.UUID,
	deliveryAddress string,
	weight float64,
	toOffice bool,
	registeredByID kernel.UUID,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		weight:   weight,
		toOffice: toOffice,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSenderID(senderID),
		cmd.setReceiverID(receiverID),
		cmd.setDeliveryAddress(deliveryAddress),
		cmd.setRegisteredByID(registeredByID),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// SenderID returns the sending client reference.
func (c CreateShipmentCommand) SenderID() kernel.UUID {
	return c.senderID
}

// ReceiverID returns the receiving client reference.
func (c CreateShipmentCommand) ReceiverID() kernel.UUID {
	return c.receiverID
}

// DeliveryAddress returns the destination address.
func (c CreateShipmentCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// Weight returns the parcel weight in kilograms.
func (c CreateShipmentCommand) Weight() float64 {
	return c.weight
}

// ToOffice reports whether the shipment is delivered to an office.
func (c CreateShipmentCommand) ToOffice() bool {
	return c.toOffice
}

// RegisteredByID returns the caller-supplied registering employee reference.
func (c CreateShipmentCommand) RegisteredByID() kernel.UUID {
	return c.registeredByID
}

func (c *CreateShipmentCommand) setSenderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.senderID = id
	return nil
}

func (c *CreateShipmentCommand) setReceiverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.receiverID = id
	return nil
}

func (c *CreateShipmentCommand) setDeliveryAddress(address string) error {
	if address == "" {
		return ErrDeliveryAddressIsRequired
	}

	c.deliveryAddress = address
	return nil
}

func (c *CreateShipmentCommand) setRegisteredByID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.registeredByID = id
	return nil
}
