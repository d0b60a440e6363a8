package commands

import (
	"errors"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var (
	ErrRegisterShipmentCommandIsNotConstructed = errors.New(
		"RegisterShipmentCommand must be created via NewRegisterShipmentCommand constructor",
	)
	ErrDeliveryAddressIsRequired = errors.New("delivery address is required")
)

// RegisterShipmentCommand represents a request to register a new shipment on
// behalf of the calling employee. This is the trusted creation path: the
// registering employee is taken from the resolved caller identity, never from
// client input.
//
// Example:
//
//	cmd, err := NewRegisterShipmentCommand(caller, senderID, receiverID, "12 Vitosha Blvd", 2.5, false)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//
//	registered, err := handler.Handle(ctx, cmd)
type RegisterShipmentCommand struct { //nolint:recvcheck //using for validation
	caller          account.Caller
	senderID        kernel.UUID
	receiverID      kernel.UUID
	deliveryAddress string
	weight          float64
	toOffice        bool

	guard guard.ConstructorGuard
}

// NewRegisterShipmentCommand creates a command to register a new shipment.
// Validates the caller object and the shipment references; the role gate
// itself is applied by the handler.
func NewRegisterShipmentCommand(
	caller account.Caller,
	senderID kernel.UUID,
	receiverID kernel.UUID,
	deliveryAddress string,
	weight float64,
	toOffice bool,
) (RegisterShipmentCommand, error) {
	cmd := RegisterShipmentCommand{
		weight:   weight,
		toOffice: toOffice,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setSenderID(senderID),
		cmd.setReceiverID(receiverID),
		cmd.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return RegisterShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterShipmentCommand) Validate() error {
	return c.guard.Validate(ErrRegisterShipmentCommandIsNotConstructed)
}

// Caller returns the resolved identity of the registering caller.
func (c RegisterShipmentCommand) Caller() account.Caller {
	return c.caller
}

// SenderID returns the sending client reference.
func (c RegisterShipmentCommand) SenderID() kernel.UUID {
	return c.senderID
}

// ReceiverID returns the receiving client reference.
func (c RegisterShipmentCommand) ReceiverID() kernel.UUID {
	return c.receiverID
}

// DeliveryAddress returns the destination address.
func (c RegisterShipmentCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// Weight returns the parcel weight in kilograms.
func (c RegisterShipmentCommand) Weight() float64 {
	return c.weight
}

// ToOffice reports whether the shipment is delivered to an office.
func (c RegisterShipmentCommand) ToOffice() bool {
	return c.toOffice
}

func (c *RegisterShipmentCommand) setCaller(caller account.Caller) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *RegisterShipmentCommand) setSenderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.senderID = id
	return nil
}

func (c *RegisterShipmentCommand) setReceiverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.receiverID = id
	return nil
}

func (c *RegisterShipmentCommand) setDeliveryAddress(address string) error {
	if address == "" {
		return ErrDeliveryAddressIsRequired
	}

	c.deliveryAddress = address
	return nil
}
