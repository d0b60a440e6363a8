package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/shipment"
)

// DeliverShipmentCommandHandler marks shipments as delivered.
//
// Delivery is employee-gated and not idempotent: delivering an already
// delivered shipment succeeds and restamps the delivery date. Last write
// wins; the read-modify-write runs inside a single transaction.
type DeliverShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewDeliverShipmentCommandHandler creates a handler for shipment delivery.
func NewDeliverShipmentCommandHandler(uowFactory ShipmentUoWFactory) DeliverShipmentCommandHandler {
	return DeliverShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery command and returns the updated shipment.
func (h *DeliverShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd DeliverShipmentCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := cmd.Caller().RequireEmployee("only employees may deliver shipments"); err != nil {
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

	if err = s.Deliver(time.Now()); err != nil {
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
