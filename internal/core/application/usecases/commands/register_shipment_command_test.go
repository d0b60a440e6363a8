package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterShipmentCommand_Success(t *testing.T) {
	caller := employeeCaller(kernel.NewUUID())
	sender := kernel.NewUUID()
	receiver := kernel.NewUUID()

	cmd, err := commands.NewRegisterShipmentCommand(caller, sender, receiver, "12 Vitosha Blvd", 2.5, false)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, sender, cmd.SenderID())
	assert.Equal(t, receiver, cmd.ReceiverID())
	assert.Equal(t, "12 Vitosha Blvd", cmd.DeliveryAddress())
	assert.InDelta(t, 2.5, cmd.Weight(), 1e-9)
	assert.False(t, cmd.ToOffice())
}

func TestNewRegisterShipmentCommand_EmptyAddress(t *testing.T) {
	caller := employeeCaller(kernel.NewUUID())

	_, err := commands.NewRegisterShipmentCommand(caller, kernel.NewUUID(), kernel.NewUUID(), "", 2.5, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDeliveryAddressIsRequired)
}

func TestNewRegisterShipmentCommand_InvalidCaller(t *testing.T) {
	_, err := commands.NewRegisterShipmentCommand(
		account.Caller{}, kernel.NewUUID(), kernel.NewUUID(), "12 Vitosha Blvd", 2.5, false)
	require.Error(t, err)
}

func TestNewRegisterShipmentCommand_InvalidSender(t *testing.T) {
	caller := employeeCaller(kernel.NewUUID())

	_, err := commands.NewRegisterShipmentCommand(
		caller, kernel.UUID{}, kernel.NewUUID(), "12 Vitosha Blvd", 2.5, false)
	require.Error(t, err)
}

func TestRegisterShipmentCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.RegisterShipmentCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrRegisterShipmentCommandIsNotConstructed)
}

func TestNewRegisterShipmentCommand_AcceptsNonPositiveWeight(t *testing.T) {
	caller := employeeCaller(kernel.NewUUID())

	cmd, err := commands.NewRegisterShipmentCommand(
		caller, kernel.NewUUID(), kernel.NewUUID(), "12 Vitosha Blvd", -1.0, true)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, cmd.Weight(), 1e-9)
}
