package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
)

// RegisterShipmentCommandHandler handles the role-gated registration of
// shipments. Only callers with the employee role and a bound employee record
// may register; the new shipment starts in Shipped status with the
// registration date stamped from the server clock.
type RegisterShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	policy     shipment.ValidationPolicy
}

// NewRegisterShipmentCommandHandler creates a handler for shipment registration.
// The validation policy carries the opt-in weight/party checks; the zero
// value is permissive.
func NewRegisterShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	policy shipment.ValidationPolicy,
) RegisterShipmentCommandHandler {
	return RegisterShipmentCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the registration command.
// The authorization gate runs before any transaction is opened, so a
// rejected caller performs no store write at all.
func (h *RegisterShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd RegisterShipmentCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	employeeID, err := cmd.Caller().RequireEmployeeRecord("only employees may register shipments")
	if err != nil {
		return nil, err
	}

	s, err := shipment.NewShipment(
		kernel.NewUUID(),
		cmd.SenderID(),
		cmd.ReceiverID(),
		cmd.DeliveryAddress(),
		cmd.Weight(),
		cmd.ToOffice(),
		employeeID,
		time.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = h.policy.Check(s); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ShipmentRepository().Add(ctx, s); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return s, nil
}
