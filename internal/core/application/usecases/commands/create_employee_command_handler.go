package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/party"
)

// CreateEmployeeCommandHandler creates employee records.
// The office reference is verified inside the transaction, so an employee
// can never be attached to an office that does not exist.
type CreateEmployeeCommandHandler struct {
	uowFactory EmployeeUoWFactory
}

// NewCreateEmployeeCommandHandler creates a handler for employee creation.
func NewCreateEmployeeCommandHandler(uowFactory EmployeeUoWFactory) CreateEmployeeCommandHandler {
	return CreateEmployeeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the creation command and returns the stored employee.
func (h *CreateEmployeeCommandHandler) Handle(
	ctx context.Context,
	cmd CreateEmployeeCommand,
) (*party.Employee, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	employee, err := party.NewEmployee(kernel.NewUUID(), cmd.Name(), cmd.OfficeID(), cmd.Role())
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

	if _, err = uow.OfficeRepository().Get(ctx, cmd.OfficeID()); err != nil {
		return nil, err
	}

	if err = uow.EmployeeRepository().Add(ctx, employee); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return employee, nil
}
