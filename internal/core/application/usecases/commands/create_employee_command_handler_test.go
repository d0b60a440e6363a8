package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/party"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateEmployeeCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	officeID := kernel.NewUUID()
	office, err := party.NewOffice(officeID, "2 Slaveykov Sq", "Sofia", kernel.NewUUID())
	require.NoError(t, err)
	cmd, _ := commands.NewCreateEmployeeCommand("Ivan Petrov", officeID, party.Courier)

	employeeRepo := new(MockEmployeeRepository)
	officeRepo := new(MockOfficeRepository)
	uow := new(MockEmployeeUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OfficeRepository").Return(officeRepo).Once(),
		officeRepo.On("Get", mock.Anything, officeID).Return(office, nil).Once(),
		uow.On("EmployeeRepository").Return(employeeRepo).Once(),
		employeeRepo.On("Add", mock.Anything, mock.AnythingOfType("*party.Employee")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockEmployeeUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateEmployeeCommandHandler(factory)
	employee, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, employee)
	assert.Equal(t, "Ivan Petrov", employee.Name())
	assert.Equal(t, officeID, employee.OfficeID())
	assert.Equal(t, party.Courier, employee.Role())
	employeeRepo.AssertExpectations(t)
	officeRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateEmployeeCommandHandler_Handle_OfficeNotFound(t *testing.T) {
	ctx := t.Context()
	officeID := kernel.NewUUID()
	cmd, _ := commands.NewCreateEmployeeCommand("Ivan Petrov", officeID, party.OfficeWorker)

	officeRepo := new(MockOfficeRepository)
	uow := new(MockEmployeeUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OfficeRepository").Return(officeRepo).Once(),
		officeRepo.On("Get", mock.Anything, officeID).
			Return(nil, errs.NewObjectNotFoundError("officeId", officeID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockEmployeeUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateEmployeeCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	officeRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestNewCreateEmployeeCommand_InvalidRole(t *testing.T) {
	_, err := commands.NewCreateEmployeeCommand("Ivan Petrov", kernel.NewUUID(), party.EmployeeRoleUnknown)
	require.Error(t, err)
}

func TestNewCreateEmployeeCommand_EmptyName(t *testing.T) {
	_, err := commands.NewCreateEmployeeCommand("", kernel.NewUUID(), party.Courier)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
