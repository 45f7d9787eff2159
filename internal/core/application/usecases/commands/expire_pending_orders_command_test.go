package commands_test

import (
	"testing"
	"time"

	"logipeek/internal/core/application/usecases/commands"
	"logipeek/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExpirePendingOrdersCommand(t *testing.T) {
	asOf := time.Date(2026, time.March, 11, 9, 0, 0, 0, time.UTC)
	cmd, err := commands.NewExpirePendingOrdersCommand(asOf)
	require.NoError(t, err)
	assert.Equal(t, asOf, cmd.AsOf())
}

func TestNewExpirePendingOrdersCommand_ZeroAsOf(t *testing.T) {
	_, err := commands.NewExpirePendingOrdersCommand(time.Time{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestExpirePendingOrdersCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.ExpirePendingOrdersCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrExpirePendingOrdersCommandIsNotConstructed)
}
