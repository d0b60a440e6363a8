package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/party"
)

// CreateClientCommandHandler creates client records.
type CreateClientCommandHandler struct {
	uowFactory ClientUoWFactory
}

// NewCreateClientCommandHandler creates a handler for client creation.
func NewCreateClientCommandHandler(uowFactory ClientUoWFactory) CreateClientCommandHandler {
	return CreateClientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the creation command and returns the stored client.
func (h *CreateClientCommandHandler) Handle(
	ctx context.Context,
	cmd CreateClientCommand,
) (*party.Client, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	client, err := party.NewClient(kernel.NewUUID(), cmd.Name(), cmd.Email(), cmd.PhoneNumber())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ClientRepository().Add(ctx, client); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return client, nil
}
