package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRenderCommandPrintsParenthetical(t *testing.T) {
	cmd := NewRenderCommand()
	out, err := runCommand(t, cmd, []string{"SELECT id FROM orders"})
	require.NoError(t, err)
	assert.Equal(t, "PROJECTION(id, TABLE_SCAN(orders))\n", out)
}

func TestNewRenderCommandShowFunctions(t *testing.T) {
	cmd := NewRenderCommand()
	out, err := runCommand(t, cmd, []string{"--show-functions", "SELECT id FROM orders"})
	require.NoError(t, err)
	assert.Contains(t, out, "Function")
	assert.Contains(t, out, "UPPER")
}

func TestNewRenderCommandInvalidSQLErrors(t *testing.T) {
	cmd := NewRenderCommand()
	_, err := runCommand(t, cmd, []string{"NOT VALID("})
	assert.Error(t, err)
}
