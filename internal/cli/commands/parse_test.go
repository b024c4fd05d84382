package commands

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestNewParseCommandDefaultTreeFormat(t *testing.T) {
	cmd := NewParseCommand()
	out, err := runCommand(t, cmd, []string{"SELECT id FROM orders"})
	require.NoError(t, err)
	assert.Contains(t, out, "PROJECTION(id)")
	assert.Contains(t, out, "TABLE_SCAN(orders)")
}

func TestNewParseCommandParentheticalFormat(t *testing.T) {
	cmd := NewParseCommand()
	out, err := runCommand(t, cmd, []string{"--format", "parenthetical", "SELECT id FROM orders"})
	require.NoError(t, err)
	assert.Equal(t, "PROJECTION(id, TABLE_SCAN(orders))\n", out)
}

func TestNewParseCommandSQLFormat(t *testing.T) {
	cmd := NewParseCommand()
	out, err := runCommand(t, cmd, []string{"--format", "sql", "SELECT id FROM orders"})
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM orders\n", out)
}

func TestNewParseCommandTableFormat(t *testing.T) {
	cmd := NewParseCommand()
	out, err := runCommand(t, cmd, []string{"--format", "table", "SELECT id FROM orders"})
	require.NoError(t, err)
	assert.Contains(t, out, "Depth")
	assert.Contains(t, out, "Operator")
}

func TestNewParseCommandInvalidSQLReturnsError(t *testing.T) {
	cmd := NewParseCommand()
	_, err := runCommand(t, cmd, []string{"NOT VALID SQL("})
	assert.Error(t, err)
}
