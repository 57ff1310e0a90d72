package easylog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a console-only config that passes validation.
func validConfig() *Config {
	return &Config{
		Name:           "app",
		Level:          "debug",
		ConsoleLogging: true,
	}
}

func TestNewFromConfigConsole(t *testing.T) {
	dest := &bufferDestination{}
	SetDefaultDestination(dest)
	defer SetDefaultDestination(nil)

	l, err := NewFromConfig(validConfig())
	require.NoError(t, err)
	require.NotNil(t, l)
	assert.Equal(t, "app", l.Name())
	assert.Equal(t, DEBUG, l.Level())

	l.SetFormat("%N %L: %S")
	l.Debug("configured")
	require.Len(t, dest.lines(), 1)
	assert.Equal(t, "app DEBUG: configured", dest.lines()[0])
}

func TestNewFromConfigValidation(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		l, err := NewFromConfig(nil)
		require.Error(t, err)
		assert.Nil(t, l)
		assert.Contains(t, err.Error(), errMsgNilConfig)
	})

	t.Run("missing name", func(t *testing.T) {
		cfg := validConfig()
		cfg.Name = emptyString
		_, err := NewFromConfig(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), errMsgConfigInvalid)
	})

	t.Run("file logging without path", func(t *testing.T) {
		cfg := validConfig()
		cfg.FileLogging = true
		_, err := NewFromConfig(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), errMsgConfigInvalid)
	})

	t.Run("negative rotation bounds", func(t *testing.T) {
		cfg := validConfig()
		cfg.LogFileMaxBackups = -1
		_, err := NewFromConfig(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), errMsgConfigInvalid)
	})

	t.Run("bad level", func(t *testing.T) {
		cfg := validConfig()
		cfg.Level = "notalevel"
		_, err := NewFromConfig(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), errMsgBadLevel)
	})
}

func TestNewFromConfigFileLogging(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "app.log")

	l, err := NewFromConfig(&Config{
		Name:              "app",
		Level:             "info",
		Format:            "%N %L: %S",
		FileLogging:       true,
		LogFile:           logPath,
		LogFileMaxSizeMB:  5,
		LogFileMaxBackups: 1,
		LogFileMaxAgeDays: 1,
	})
	require.NoError(t, err)

	l.Info("hello file")
	require.NoError(t, l.Flush())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "app INFO: hello file")
	assert.NotContains(t, string(data), "%N")
}

func TestNewFromConfigBothChannels(t *testing.T) {
	console := &bufferDestination{}
	SetDefaultDestination(console)
	defer SetDefaultDestination(nil)

	logPath := filepath.Join(t.TempDir(), "app.log")
	l, err := NewFromConfig(&Config{
		Name:           "app",
		Format:         "%S",
		ConsoleLogging: true,
		FileLogging:    true,
		LogFile:        logPath,
	})
	require.NoError(t, err)

	l.Info("everywhere")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "everywhere")
	assert.Contains(t, console.String(), "everywhere")
}

func TestNewFromConfigDefaults(t *testing.T) {
	dest := &bufferDestination{}
	SetDefaultDestination(dest)
	defer SetDefaultDestination(nil)

	// Neither channel enabled falls back to the console; empty level and
	// format keep the package defaults.
	l, err := NewFromConfig(&Config{Name: "app"})
	require.NoError(t, err)
	assert.Equal(t, INFO, l.Level())
	assert.Equal(t, DefaultFormat, l.Format())

	l.Info("fallback")
	require.Len(t, dest.lines(), 1)
}
