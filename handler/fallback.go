package handler

import (
	"os"
	"sync"

	"github.com/treelabs/toolbelt/formatter"
)

var (
	fallbackMu      sync.RWMutex
	fallbackHandler Handler
)

// Fallback returns the process-wide last-resort handler. It receives
// records that passed logger-level filtering but found no handler
// anywhere along the propagation chain, and the notices emitted when a
// regular handler faults. By default it writes plain text to stderr
// with no filter of its own.
func Fallback() Handler {
	fallbackMu.RLock()
	h := fallbackHandler
	fallbackMu.RUnlock()
	if h != nil {
		return h
	}

	fallbackMu.Lock()
	defer fallbackMu.Unlock()
	if fallbackHandler == nil {
		fallbackHandler = NewConsoleHandler(ConsoleConfig{
			Writer:    os.Stderr,
			Formatter: formatter.NewTextFormatter(formatter.Config{}),
		})
	}
	return fallbackHandler
}

// SetFallback replaces the last-resort handler. Passing nil restores the
// stderr default on the next use. Intended for tests and for embedders
// that redirect diagnostics.
func SetFallback(h Handler) {
	fallbackMu.Lock()
	fallbackHandler = h
	fallbackMu.Unlock()
}
