// Package config loads logging-facility configuration from a YAML file
// with environment-variable overrides, and applies it to a registry.
package config

import (
	"fmt"
	"os"

	"github.com/treelabs/toolbelt/core"
	"github.com/treelabs/toolbelt/formatter"
	"github.com/treelabs/toolbelt/handler"
	"github.com/treelabs/toolbelt/logger"
)

// Config describes the logging setup: root threshold, text layout, and
// the configured destinations. Environment variables override file
// values field by field.
type Config struct {
	Level           string        `yaml:"level" env:"LOG_LEVEL"`
	Template        string        `yaml:"template" env:"LOG_TEMPLATE"`
	TimestampFormat string        `yaml:"timestamp_format" env:"LOG_TIMESTAMP_FORMAT"`
	Console         ConsoleConfig `yaml:"console"`
	File            FileConfig    `yaml:"file"`
}

// ConsoleConfig holds console destination settings
type ConsoleConfig struct {
	Enabled bool   `yaml:"enabled" env:"LOG_CONSOLE"`
	Stderr  bool   `yaml:"stderr" env:"LOG_CONSOLE_STDERR"`
	Colors  bool   `yaml:"colors" env:"LOG_CONSOLE_COLORS"`
	Level   string `yaml:"level" env:"LOG_CONSOLE_LEVEL"`
}

// FileConfig holds file destination settings
type FileConfig struct {
	Path       string `yaml:"path" env:"LOG_FILE"`
	Format     string `yaml:"format" env:"LOG_FILE_FORMAT"` // "text" or "json"
	Level      string `yaml:"level" env:"LOG_FILE_LEVEL"`
	MaxSizeMB  int    `yaml:"max_size_mb" env:"LOG_FILE_MAX_SIZE_MB"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Default returns the default configuration: WARNING to the console,
// default text template, no file destination.
func Default() *Config {
	return &Config{
		Level: "warning",
		Console: ConsoleConfig{
			Enabled: true,
		},
		File: FileConfig{
			Format: "text",
		},
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	for _, lvl := range []string{c.Level, c.Console.Level, c.File.Level} {
		if _, ok := core.ParseLevel(lvl); !ok {
			return fmt.Errorf("unknown level %q", lvl)
		}
	}
	if c.File.Format != "" && c.File.Format != "text" && c.File.Format != "json" {
		return fmt.Errorf("unknown file format %q (want \"text\" or \"json\")", c.File.Format)
	}
	if !c.Console.Enabled && c.File.Path == "" {
		return fmt.Errorf("no destination configured")
	}
	return nil
}

// Apply configures the registry's root logger: threshold plus one
// handler per enabled destination.
func (c *Config) Apply(reg *logger.Registry) error {
	if err := c.Validate(); err != nil {
		return err
	}

	fmtCfg := formatter.Config{
		Template:        c.Template,
		TimestampFormat: c.TimestampFormat,
	}

	root := reg.Root()
	level, _ := core.ParseLevel(c.Level)
	root.SetLevel(level)

	if c.Console.Enabled {
		writer := os.Stdout
		if c.Console.Stderr {
			writer = os.Stderr
		}
		minLevel, _ := core.ParseLevel(c.Console.Level)
		root.AddHandler(handler.NewConsoleHandler(handler.ConsoleConfig{
			Writer:    writer,
			Formatter: formatter.NewTextFormatter(fmtCfg),
			MinLevel:  minLevel,
			Colors:    c.Console.Colors,
		}))
	}

	if c.File.Path != "" {
		var f formatter.Formatter
		if c.File.Format == "json" {
			f = formatter.NewJSONFormatter(fmtCfg)
		} else {
			f = formatter.NewTextFormatter(fmtCfg)
		}
		minLevel, _ := core.ParseLevel(c.File.Level)
		fh, err := handler.NewFileHandler(handler.FileConfig{
			Filename:   c.File.Path,
			Formatter:  f,
			MinLevel:   minLevel,
			MaxSizeMB:  c.File.MaxSizeMB,
			MaxBackups: c.File.MaxBackups,
			MaxAgeDays: c.File.MaxAgeDays,
		})
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		root.AddHandler(fh)
	}

	return nil
}
