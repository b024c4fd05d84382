package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmdRegistersSubcommands(t *testing.T) {
	root := NewRootCmd()
	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"parse", "validate", "render", "verify", "serve", "repl"} {
		assert.True(t, names[want], "expected subcommand %q to be registered", want)
	}
}

func TestNewRootCmdPersistentFlags(t *testing.T) {
	root := NewRootCmd()
	for _, flag := range []string{"config", "vocabulary-path", "max-distance", "suggestion-cap", "listen-addr", "log-format", "log-level"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), "expected persistent flag %q", flag)
	}
}

func TestRootCmdParseSubcommandRuns(t *testing.T) {
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"parse", "--format", "sql", "SELECT id FROM orders"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "SELECT id FROM orders\n", out.String())
}
