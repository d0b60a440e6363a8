package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
)

// CreateShipmentCommandHandler handles the unregistered creation path.
// No role gate is applied and the registering employee reference is stored
// as supplied; the status and registration date are still forced the same
// way the registered path forces them.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	policy     shipment.ValidationPolicy
}

// NewCreateShipmentCommandHandler creates a handler for direct shipment creation.
func NewCreateShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	policy shipment.ValidationPolicy,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the creation command and returns the stored shipment.
func (h *CreateShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd CreateShipmentCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	s, err := shipment.NewShipment(
		kernel.NewUUID(),
		cmd.SenderID(),
		cmd.ReceiverID(),
		cmd.DeliveryAddress(),
		cmd.Weight(),
		cmd.ToOffice(),
		cmd.RegisteredByID(),
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
