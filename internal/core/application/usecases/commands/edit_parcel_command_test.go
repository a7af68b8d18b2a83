package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/kernel"
)

func TestNewEditParcelCommand_ValidInput(t *testing.T) {
	parcelID := kernel.NewUUID()
	cmd, err := commands.NewEditParcelCommand(
		parcelID, "Bob", "+8801722222222", "14 Hill Street, Sylhet", 4.2)
	require.NoError(t, err)
	assert.Equal(t, parcelID, cmd.ParcelID())
	assert.Equal(t, "Bob", cmd.ReceiverName())
	assert.Equal(t, "+8801722222222", cmd.ReceiverPhone())
	assert.Equal(t, "14 Hill Street, Sylhet", cmd.ReceiverAddress())
	assert.InDelta(t, 4.2, cmd.WeightKg(), 1e-9)
}

func TestNewEditParcelCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewEditParcelCommand(kernel.NewUUID(), "", "", "", 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrReceiverNameIsRequired)
	assert.ErrorIs(t, err, commands.ErrReceiverPhoneIsRequired)
	assert.ErrorIs(t, err, commands.ErrReceiverAddressIsRequired)
	assert.ErrorIs(t, err, commands.ErrWeightIsInvalid)
}

func TestNewEditParcelCommand_InvalidParcelID(t *testing.T) {
	_, err := commands.NewEditParcelCommand(kernel.UUID{}, "Bob", "+880", "addr", 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
