package logger

import (
	"fmt"
	"sync"

	"github.com/treelabs/toolbelt/core"
	"github.com/treelabs/toolbelt/handler"
)

// Logger is a named node in the registry's hierarchy. It filters
// emissions against its effective threshold and routes the resulting
// records to every handler reachable by walking up the name chain.
type Logger struct {
	registry *Registry
	name     string

	mu       sync.RWMutex
	level    core.Level
	handlers []handler.Handler
}

// Name returns the logger's dot-separated name; empty for the root
func (l *Logger) Name() string {
	return l.name
}

// SetLevel sets the explicit threshold. LevelNotSet restores inheritance
// from the nearest ancestor with an explicit threshold.
func (l *Logger) SetLevel(level core.Level) {
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
}

// Level returns the explicit threshold; LevelNotSet means "inherit"
func (l *Logger) Level() core.Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

// EffectiveLevel resolves the threshold the logger acts on: its own
// explicit level if set, otherwise the nearest ancestor's, defaulting to
// WARNING when nothing is set anywhere up to the root.
func (l *Logger) EffectiveLevel() core.Level {
	for cur := l; cur != nil; cur = cur.parent() {
		if lvl := cur.Level(); lvl != core.LevelNotSet {
			return lvl
		}
	}
	return core.WarningLevel
}

// parent returns the nearest materialized ancestor, skipping names that
// were never requested; nil for the root.
func (l *Logger) parent() *Logger {
	if l.name == rootName {
		return nil
	}
	name := l.name
	for {
		name = parentName(name)
		if p := l.registry.lookup(name); p != nil {
			return p
		}
		// The root always exists, so the loop terminates before this
		// point can be reached with name == rootName.
	}
}

// AddHandler appends a handler to the logger. No de-duplication is done;
// attaching the same handler twice delivers each record twice. Order
// only fixes output ordering among this logger's handlers.
func (l *Logger) AddHandler(h handler.Handler) {
	l.mu.Lock()
	l.handlers = append(l.handlers, h)
	l.mu.Unlock()
}

// RemoveHandler removes the first occurrence of h, by identity
func (l *Logger) RemoveHandler(h handler.Handler) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, attached := range l.handlers {
		if attached == h {
			l.handlers = append(l.handlers[:i], l.handlers[i+1:]...)
			return
		}
	}
}

// Handlers returns a copy of the logger's handler list
func (l *Logger) Handlers() []handler.Handler {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]handler.Handler, len(l.handlers))
	copy(out, l.handlers)
	return out
}

// Log emits a record at the given level. Emissions below the effective
// threshold return before any allocation. Once the gate passes, one
// record is built and delivered to this logger's handlers and then to
// each ancestor's, nearest first, root last; ancestor thresholds never
// re-filter, only each handler's own minimum level applies.
func (l *Logger) Log(level core.Level, format string, args ...any) {
	if level < l.EffectiveLevel() {
		return
	}
	l.dispatch(core.NewRecord(l.name, level, format, args...))
}

// Exception emits at ERROR with err's stack trace captured into the
// record. The error is passed explicitly; there is no ambient
// "currently propagating" failure to inspect.
func (l *Logger) Exception(err error, format string, args ...any) {
	if core.ErrorLevel < l.EffectiveLevel() {
		return
	}
	rec := core.NewRecord(l.name, core.ErrorLevel, format, args...)
	l.dispatch(rec.WithExc(core.Capture(err)))
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...any) {
	l.Log(core.DebugLevel, format, args...)
}

// Info logs an info message
func (l *Logger) Info(format string, args ...any) {
	l.Log(core.InfoLevel, format, args...)
}

// Warning logs a warning message
func (l *Logger) Warning(format string, args ...any) {
	l.Log(core.WarningLevel, format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...any) {
	l.Log(core.ErrorLevel, format, args...)
}

// Critical logs a critical message
func (l *Logger) Critical(format string, args ...any) {
	l.Log(core.CriticalLevel, format, args...)
}

// dispatch walks the chain and delivers the record. When no handler is
// attached anywhere, including the root, the record goes to the
// last-resort fallback handler instead of being lost silently.
func (l *Logger) dispatch(rec *core.Record) {
	reachable := false
	for cur := l; cur != nil; cur = cur.parent() {
		for _, h := range cur.Handlers() {
			reachable = true
			deliver(h, rec)
		}
	}
	if !reachable {
		deliver(handler.Fallback(), rec)
	}
}

// deliver hands the record to one handler, isolating faults: an error
// or panic is reported to the fallback stream and skips only this
// handler for this record. Emitting code never sees handler failures.
func deliver(h handler.Handler, rec *core.Record) {
	defer func() {
		if r := recover(); r != nil {
			reportFault(h, rec, fmt.Errorf("panic: %v", r))
		}
	}()
	if err := h.Handle(rec); err != nil {
		reportFault(h, rec, err)
	}
}

func reportFault(h handler.Handler, rec *core.Record, err error) {
	fb := handler.Fallback()
	if fb == h {
		// The fallback itself faulted; there is nowhere left to report.
		return
	}
	notice := core.NewRecord(rec.Logger, core.ErrorLevel,
		"log handler %T failed for record %s: %v", h, rec.ID, err)
	defer func() {
		_ = recover()
	}()
	_ = fb.Handle(notice)
}
