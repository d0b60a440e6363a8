package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/party"
)

// CreateCompanyCommandHandler creates company records.
type CreateCompanyCommandHandler struct {
	uowFactory CompanyUoWFactory
}

// NewCreateCompanyCommandHandler creates a handler for company creation.
func NewCreateCompanyCommandHandler(uowFactory CompanyUoWFactory) CreateCompanyCommandHandler {
	return CreateCompanyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the creation command and returns the stored company.
func (h *CreateCompanyCommandHandler) Handle(
	ctx context.Context,
	cmd CreateCompanyCommand,
) (*party.Company, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	company, err := party.NewCompany(kernel.NewUUID(), cmd.Name())
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

	if err = uow.CompanyRepository().Add(ctx, company); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return company, nil
}
