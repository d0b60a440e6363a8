package commands_test

import (
	"errors"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	employeeID := kernel.NewUUID()
	cmd, _ := commands.NewRegisterShipmentCommand(
		employeeCaller(employeeID), kernel.NewUUID(), kernel.NewUUID(), "12 Vitosha Blvd", 2.5, false)

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterShipmentCommandHandler(factory, shipment.ValidationPolicy{})
	s, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, shipment.Shipped, s.Status())
	assert.Equal(t, employeeID, s.RegisteredByID())
	assert.False(t, s.RegistrationDate().IsZero())
	assert.Nil(t, s.DeliveryDate())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRegisterShipmentCommandHandler_Handle_ClientCallerRejected(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRegisterShipmentCommand(
		clientCaller(kernel.NewUUID()), kernel.NewUUID(), kernel.NewUUID(), "12 Vitosha Blvd", 2.5, false)

	factory := new(MockShipmentUoWFactory)

	h := commands.NewRegisterShipmentCommandHandler(factory, shipment.ValidationPolicy{})
	s, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNotAuthorized)
	assert.Nil(t, s)
	// rejected callers never reach the store
	factory.AssertNotCalled(t, "Create")
}

func TestRegisterShipmentCommandHandler_Handle_StrictPolicyRejectsZeroWeight(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRegisterShipmentCommand(
		employeeCaller(kernel.NewUUID()), kernel.NewUUID(), kernel.NewUUID(), "12 Vitosha Blvd", 0, false)

	factory := new(MockShipmentUoWFactory)

	h := commands.NewRegisterShipmentCommandHandler(factory, shipment.StrictValidationPolicy())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	factory.AssertNotCalled(t, "Create")
}

func TestRegisterShipmentCommandHandler_Handle_PermissivePolicyAcceptsZeroWeight(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRegisterShipmentCommand(
		employeeCaller(kernel.NewUUID()), kernel.NewUUID(), kernel.NewUUID(), "12 Vitosha Blvd", 0, false)

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterShipmentCommandHandler(factory, shipment.ValidationPolicy{})
	_, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
}

func TestRegisterShipmentCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockShipmentUoWFactory)
	h := commands.NewRegisterShipmentCommandHandler(factory, shipment.ValidationPolicy{})
	_, err := h.Handle(ctx, commands.RegisterShipmentCommand{})
	require.Error(t, err)
}

func TestRegisterShipmentCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRegisterShipmentCommand(
		employeeCaller(kernel.NewUUID()), kernel.NewUUID(), kernel.NewUUID(), "12 Vitosha Blvd", 2.5, false)

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterShipmentCommandHandler(factory, shipment.ValidationPolicy{})
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRegisterShipmentCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRegisterShipmentCommand(
		employeeCaller(kernel.NewUUID()), kernel.NewUUID(), kernel.NewUUID(), "12 Vitosha Blvd", 2.5, false)

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterShipmentCommandHandler(factory, shipment.ValidationPolicy{})
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}
