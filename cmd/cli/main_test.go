package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRun_FullCycle(t *testing.T) {
	path := writeConfig(t, `
service = "passthrough"

parameters {
  Greeting = "hi"
  Message  = "from config"
}
`)
	out := &bytes.Buffer{}
	err := run(out, []string{"-log-level", "debug", "-param", "Message=from override", path})
	require.NoError(t, err)

	logs := out.String()
	assert.Contains(t, logs, "Passthrough loaded.")
	assert.Contains(t, logs, "message=\"from override\"", "override should beat the config parameter")
	assert.Contains(t, logs, "Service disposed.")
}

func TestRun_StartupPanicRecovery(t *testing.T) {
	// A syntax error in the config file panics inside app.NewApp; run must
	// recover it into a clean error.
	path := writeConfig(t, `service = `)
	out := &bytes.Buffer{}
	err := run(out, []string{path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a critical startup error occurred")
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestRun_UnknownService(t *testing.T) {
	path := writeConfig(t, `service = "not-registered"`)
	out := &bytes.Buffer{}
	err := run(out, []string{path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown service identifier")
}

func TestRun_ShouldExit(t *testing.T) {
	out := &bytes.Buffer{}
	err := run(out, []string{"-h"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Usage:")
}

func TestRun_ParseError(t *testing.T) {
	out := &bytes.Buffer{}
	err := run(out, []string{"--this-is-not-a-valid-flag"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flag provided but not defined")
}
