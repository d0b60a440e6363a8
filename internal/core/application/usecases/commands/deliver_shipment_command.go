package commands

import (
	"errors"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrDeliverShipmentCommandIsNotConstructed = errors.New(
	"DeliverShipmentCommand must be created via NewDeliverShipmentCommand constructor",
)

// DeliverShipmentCommand represents a request to mark a shipment as delivered.
type DeliverShipmentCommand struct { //nolint:recvcheck //using for validation
	caller     account.Caller
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeliverShipmentCommand creates a command to deliver a shipment.
func NewDeliverShipmentCommand(
	caller account.Caller,
	shipmentID kernel.UUID,
) (DeliverShipmentCommand, error) {
	cmd := DeliverShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setShipmentID(shipmentID),
	); err != nil {
		return DeliverShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeliverShipmentCommand) Validate() error {
	return c.guard.Validate(ErrDeliverShipmentCommandIsNotConstructed)
}

// Caller returns the resolved identity of the delivering caller.
func (c DeliverShipmentCommand) Caller() account.Caller {
	return c.caller
}

// ShipmentID returns the identifier of the shipment to deliver.
func (c DeliverShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c *DeliverShipmentCommand) setCaller(caller account.Caller) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *DeliverShipmentCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.shipmentID = id
	return nil
}
