package handler

import (
	"go.uber.org/multierr"

	"github.com/treelabs/toolbelt/core"
)

// MultiHandler fans a record out to multiple handlers. Each child applies
// its own level filter; errors are collected rather than short-circuiting
// so one failing child never starves the others.
type MultiHandler struct {
	handlers []Handler
}

// NewMultiHandler creates a new multi-handler
func NewMultiHandler(handlers ...Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

// MinLevel returns the lowest minimum level among the children, since a
// record at that level will be written by at least one of them.
func (h *MultiHandler) MinLevel() core.Level {
	if len(h.handlers) == 0 {
		return core.DebugLevel
	}
	min := h.handlers[0].MinLevel()
	for _, child := range h.handlers[1:] {
		if l := child.MinLevel(); l < min {
			min = l
		}
	}
	return min
}

// Handle passes the record to every child handler
func (h *MultiHandler) Handle(rec *core.Record) error {
	var err error
	for _, child := range h.handlers {
		err = multierr.Append(err, child.Handle(rec))
	}
	return err
}

// Close closes all child handlers
func (h *MultiHandler) Close() error {
	var err error
	for _, child := range h.handlers {
		err = multierr.Append(err, child.Close())
	}
	return err
}
