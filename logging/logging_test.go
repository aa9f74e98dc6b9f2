package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLBeforeInitIsNoop(t *testing.T) {
	Use(nil)
	require.NotNil(t, L())
	require.NotNil(t, Component("test"))
	L().Infow("dropped")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zap.DebugLevel, ParseLevel("DEBUG", false))
	assert.Equal(t, zap.WarnLevel, ParseLevel("warning", false))
	assert.Equal(t, zap.ErrorLevel, ParseLevel(" error ", false))
	assert.Equal(t, zap.InfoLevel, ParseLevel("", false))
	assert.Equal(t, zap.DebugLevel, ParseLevel("bogus", true))
}

func TestInitWritesToFile(t *testing.T) {
	t.Setenv(envMode, "dev")
	path := filepath.Join(t.TempDir(), "out.log")

	got, err := Init("wifisim-test", Options{Path: path, Level: "debug"})
	require.NoError(t, err)
	t.Cleanup(func() { Use(nil) })
	require.Equal(t, path, got)

	Component("test").Debugw("hello", "k", "v")
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
	assert.Contains(t, string(data), "component")
}

func TestDefaultPathUsesXDGStateHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)

	got, err := defaultPath("wifisim-test", false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "wifisim-test", "wifisim.log"), got)
}

func TestComponentAddsField(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	Use(zap.New(core))
	t.Cleanup(func() { Use(nil) })

	Component("scanner").Infow("scan started")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "scanner", entries[0].ContextMap()["component"])
}
