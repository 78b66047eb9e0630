package logger

import (
	"sync"

	"github.com/treelabs/toolbelt/core"
)

var (
	defaultRegistry = NewRegistry()
	defaultMu       sync.RWMutex
)

// Default returns the process-wide default registry
func Default() *Registry {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultRegistry
}

// SetDefault replaces the process-wide default registry
func SetDefault(r *Registry) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultRegistry = r
}

// GetLogger returns the named logger from the default registry,
// creating it on first request
func GetLogger(name string) (*Logger, error) {
	return Default().Get(name)
}

// Root returns the default registry's root logger
func Root() *Logger {
	return Default().Root()
}

// ConfigureOnce performs the default registry's one-shot configuration
func ConfigureOnce(opts Options) error {
	return Default().ConfigureOnce(opts)
}

// Package-level convenience functions delegating to the root logger

// Debug logs a debug message on the root logger
func Debug(format string, args ...any) {
	Root().Log(core.DebugLevel, format, args...)
}

// Info logs an info message on the root logger
func Info(format string, args ...any) {
	Root().Log(core.InfoLevel, format, args...)
}

// Warning logs a warning message on the root logger
func Warning(format string, args ...any) {
	Root().Log(core.WarningLevel, format, args...)
}

// Error logs an error message on the root logger
func Error(format string, args ...any) {
	Root().Log(core.ErrorLevel, format, args...)
}

// Critical logs a critical message on the root logger
func Critical(format string, args ...any) {
	Root().Log(core.CriticalLevel, format, args...)
}

// Exception logs err with its stack trace at ERROR on the root logger
func Exception(err error, format string, args ...any) {
	Root().Exception(err, format, args...)
}
