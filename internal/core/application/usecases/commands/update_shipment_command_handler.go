package commands

import (
	"context"

	"logistics/internal/core/domain/model/shipment"
)

// UpdateShipmentCommandHandler applies raw overwrites to stored shipments.
// Returns an ObjectNotFoundError when the shipment does not exist.
type UpdateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	policy     shipment.ValidationPolicy
}

// NewUpdateShipmentCommandHandler creates a handler for shipment overwrites.
func NewUpdateShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	policy shipment.ValidationPolicy,
) UpdateShipmentCommandHandler {
	return UpdateShipmentCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the overwrite command and returns the updated shipment.
func (h *UpdateShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateShipmentCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	s, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	if err = s.Overwrite(
		cmd.SenderID(),
		cmd.ReceiverID(),
		cmd.DeliveryAddress(),
		cmd.Weight(),
		cmd.ToOffice(),
		cmd.Status(),
	); err != nil {
		return nil, err
	}

	if err = h.policy.Check(s); err != nil {
		return nil, err
	}

	if err = uow.ShipmentRepository().Update(ctx, s); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return s, nil
}
