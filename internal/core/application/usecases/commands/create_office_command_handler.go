package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/party"
)

// CreateOfficeCommandHandler creates office records.
// The company reference is verified inside the transaction.
type CreateOfficeCommandHandler struct {
	uowFactory OfficeUoWFactory
}

// NewCreateOfficeCommandHandler creates a handler for office creation.
func NewCreateOfficeCommandHandler(uowFactory OfficeUoWFactory) CreateOfficeCommandHandler {
	return CreateOfficeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the creation command and returns the stored office.
func (h *CreateOfficeCommandHandler) Handle(
	ctx context.Context,
	cmd CreateOfficeCommand,
) (*party.Office, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	office, err := party.NewOffice(kernel.NewUUID(), cmd.Address(), cmd.City(), cmd.CompanyID())
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

	if _, err = uow.CompanyRepository().Get(ctx, cmd.CompanyID()); err != nil {
		return nil, err
	}

	if err = uow.OfficeRepository().Add(ctx, office); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return office, nil
}
