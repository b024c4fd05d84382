package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTextHandlerWritesPlainLines(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "text", "info")
	logger.Info("hello", "key", "value")
	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "key=value")
}

func TestNewJSONHandlerWritesJSONLines(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "json", "info")
	logger.Info("hello", "key", "value")

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "hello", decoded["msg"])
	assert.Equal(t, "value", decoded["key"])
}

func TestNewLevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "text", "info")
	logger.Debug("should not appear")
	assert.Empty(t, buf.String())
}

func TestNewDebugLevelAllowsDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "text", "debug")
	logger.Debug("should appear")
	assert.Contains(t, buf.String(), "should appear")
}
