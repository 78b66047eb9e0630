package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treelabs/toolbelt/config"
	"github.com/treelabs/toolbelt/core"
	"github.com/treelabs/toolbelt/logger"
)

func TestDefault_IsValid(t *testing.T) {
	assert.NoError(t, config.Default().Validate())
}

func TestValidate_RejectsUnknownLevel(t *testing.T) {
	cfg := config.Default()
	cfg.Level = "verbose"
	assert.Error(t, cfg.Validate())
}

func TestValidate_RejectsUnknownFileFormat(t *testing.T) {
	cfg := config.Default()
	cfg.File.Format = "xml"
	assert.Error(t, cfg.Validate())
}

func TestValidate_RequiresADestination(t *testing.T) {
	cfg := config.Default()
	cfg.Console.Enabled = false
	assert.Error(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logging.yaml")
	content := `
level: debug
template: "{level} {logger}: {message}"
console:
  enabled: true
  stderr: true
file:
  path: /tmp/app.log
  format: json
  level: error
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := config.LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, "{level} {logger}: {message}", cfg.Template)
	assert.True(t, cfg.Console.Stderr)
	assert.Equal(t, "json", cfg.File.Format)
	assert.Equal(t, "error", cfg.File.Level)
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	_, err := config.LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logging.yaml")
	require.NoError(t, os.WriteFile(path, []byte("level: info\n"), 0644))

	t.Setenv("LOG_LEVEL", "critical")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "critical", cfg.Level)
}

func TestLoad_NoFileUsesDefaultsAndEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Level)
	assert.True(t, cfg.Console.Enabled)
}

func TestApply_WiresRegistry(t *testing.T) {
	cfg := config.Default()
	cfg.Level = "debug"
	cfg.File.Path = filepath.Join(t.TempDir(), "app.log")
	cfg.File.Level = "error"

	reg := logger.NewRegistry()
	require.NoError(t, cfg.Apply(reg))
	defer reg.Close()

	root := reg.Root()
	assert.Equal(t, core.DebugLevel, root.Level())
	// One console handler plus one file handler.
	require.Len(t, root.Handlers(), 2)
	assert.Equal(t, core.DebugLevel, root.Handlers()[0].MinLevel())
	assert.Equal(t, core.ErrorLevel, root.Handlers()[1].MinLevel())
}

func TestApply_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Level = "nope"
	assert.Error(t, cfg.Apply(logger.NewRegistry()))
}
