package commands_test

import (
	"testing"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFinalizeOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewFinalizeOrderCommand(7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cmd.OrderID())
	assert.NoError(t, cmd.Validate())
}

func TestNewFinalizeOrderCommand_InvalidOrderID(t *testing.T) {
	for _, id := range []int64{0, -1} {
		_, err := commands.NewFinalizeOrderCommand(id)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	}
}

func TestFinalizeOrderCommand_NotConstructed(t *testing.T) {
	var cmd commands.FinalizeOrderCommand
	err := cmd.Validate()
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrFinalizeOrderCommandIsNotConstructed)
}
