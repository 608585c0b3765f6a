package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pfeifer.dev/refmatch/cereal"
)

func TestSettingsItemCommand(t *testing.T) {
	radius := settingsItem{CommandType: cereal.COMMAND_SET_SEARCH_RADIUS, Type: Int}
	cmd, err := radius.command("-1")
	require.NoError(t, err)
	assert.Equal(t, cereal.Command{Type: cereal.COMMAND_SET_SEARCH_RADIUS, Int: -1}, cmd)

	_, err = radius.command("ten")
	assert.Error(t, err)

	strategy := settingsItem{CommandType: cereal.COMMAND_SET_STRATEGY, Type: String}
	cmd, err = strategy.command("best_segment")
	require.NoError(t, err)
	assert.Equal(t, "best_segment", cmd.Str)
}

func TestValidateFloat(t *testing.T) {
	assert.NoError(t, validateFloat("1.5"))
	assert.Error(t, validateFloat("one"))
}
