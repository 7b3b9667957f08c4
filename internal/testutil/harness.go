// Package testutil provides shared helpers for exercising a full host
// cycle in tests: thread-safe log capture, temp-dir configuration
// fixtures, and a harness that runs load → process → dispose end to end.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/svchost/internal/app"
	"github.com/vk/svchost/internal/hclconf"
	"github.com/vk/svchost/internal/registry"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// WriteConfig writes a configuration file into a fresh temp dir and
// returns its path. The name's extension picks the syntax (.hcl or .json).
func WriteConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// HarnessResult holds the outcomes of an end-to-end host run.
type HarnessResult struct {
	LogOutput string
	Err       error
	App       *app.App
}

// HarnessOptions tweak the app configuration built by RunHostTest.
type HarnessOptions struct {
	Overrides  map[string]string
	IncludeEnv bool
	HostType   string
}

// RunHostTest runs one complete host cycle against the given configuration
// file content, using the provided service modules. Startup panics are
// recovered into HarnessResult.Err so assertions stay straightforward.
func RunHostTest(t *testing.T, configContent string, opts HarnessOptions, modules ...registry.Module) *HarnessResult {
	t.Helper()

	configPath := WriteConfig(t, "config.hcl", configContent)

	hostType := opts.HostType
	if hostType == "" {
		hostType = app.DefaultHostType
	}
	appConfig, err := app.NewConfig(app.Config{
		ConfigPath: configPath,
		HostType:   hostType,
		Overrides:  opts.Overrides,
		IncludeEnv: opts.IncludeEnv,
		LogFormat:  "text",
		LogLevel:   "debug",
	})
	require.NoError(t, err)

	logBuffer := &SafeBuffer{}

	var testApp *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicErr = r
			}
		}()
		testApp = app.NewApp(logBuffer, appConfig, hclconf.NewLoader(), modules...)
	}()

	if panicErr != nil {
		return &HarnessResult{
			LogOutput: logBuffer.String(),
			Err:       fmt.Errorf("application startup panicked | %v", panicErr),
		}
	}

	runErr := testApp.Run(context.Background())
	return &HarnessResult{
		LogOutput: logBuffer.String(),
		Err:       runErr,
		App:       testApp,
	}
}
