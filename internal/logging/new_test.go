package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_TextRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, FormatText, "warn")

	log.Info(context.Background(), "hidden")
	log.Warn(context.Background(), "shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestNew_JSONUsesZap(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "JSON", "debug")
	_, ok := log.(*ZapLogger)
	require.True(t, ok, "json format must build a ZapLogger")

	log.With("component", "auth").Debug(context.Background(), "submitted", "path", "/login")

	line := strings.TrimSpace(buf.String())
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "submitted", entry["message"])
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "auth", entry["component"])
	assert.Equal(t, "/login", entry["path"])
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, FormatJSON, "chatty")

	log.Debug(context.Background(), "dbg")
	log.Info(context.Background(), "inf")

	assert.NotContains(t, buf.String(), "dbg")
	assert.Contains(t, buf.String(), "inf")
}
