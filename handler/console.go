package handler

import (
	"io"
	"os"
	"sync"

	"github.com/fatih/color"

	"github.com/treelabs/toolbelt/core"
	"github.com/treelabs/toolbelt/formatter"
)

// ConsoleHandler writes log records synchronously to a stream, by default
// stdout. Writes are serialized by a mutex so a single handler instance
// can be shared across loggers and goroutines.
type ConsoleHandler struct {
	writer          io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	minLevel        core.Level
	colors          bool
	mu              sync.Mutex
	stats           *Stats
}

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// MinLevel is the handler's own filter (default: DebugLevel, no-op)
	MinLevel core.Level
	// Colors enables per-level ANSI coloring of the output line
	Colors bool
}

// levelColors maps severity to the color of the whole output line.
var levelColors = map[core.Level]*color.Color{
	core.DebugLevel:    color.New(color.FgHiBlack),
	core.InfoLevel:     color.New(color.FgCyan),
	core.WarningLevel:  color.New(color.FgYellow),
	core.ErrorLevel:    color.New(color.FgRed),
	core.CriticalLevel: color.New(color.FgRed, color.Bold),
}

// NewConsoleHandler creates a new console handler
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}

	h := &ConsoleHandler{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
		minLevel:  cfg.MinLevel,
		colors:    cfg.Colors,
		stats:     NewStats(),
	}

	// Cache WriterFormatter for the direct-write path
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)

	return h
}

// MinLevel returns the handler's effective minimum level
func (h *ConsoleHandler) MinLevel() core.Level {
	return effectiveMin(h.minLevel)
}

// Handle formats and writes a record, skipping it when below the
// handler's own level filter
func (h *ConsoleHandler) Handle(rec *core.Record) error {
	if rec.Level < h.MinLevel() {
		h.stats.IncrementSkipped()
		return nil
	}

	err := h.write(rec)
	if err != nil {
		h.stats.IncrementFaulted()
		return err
	}
	h.stats.IncrementProcessed()
	return nil
}

// write formats and writes a record
func (h *ConsoleHandler) write(rec *core.Record) error {
	if h.colors {
		// Coloring needs the full line as a string; skip the direct path.
		data, err := h.formatter.Format(rec)
		if err != nil {
			return err
		}
		c, ok := levelColors[rec.Level]
		if !ok {
			c = levelColors[core.InfoLevel]
		}
		h.mu.Lock()
		_, writeErr := c.Fprint(h.writer, string(data))
		h.mu.Unlock()
		return writeErr
	}

	if h.writerFormatter != nil {
		h.mu.Lock()
		err := h.writerFormatter.FormatTo(rec, h.writer)
		h.mu.Unlock()
		return err
	}

	data, err := h.formatter.Format(rec)
	if err != nil {
		return err
	}

	h.mu.Lock()
	_, writeErr := h.writer.Write(data)
	h.mu.Unlock()
	return writeErr
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() Snapshot {
	return h.stats.GetSnapshot()
}

// Close closes the handler. The underlying writer is not owned by the
// handler and stays open.
func (h *ConsoleHandler) Close() error {
	return nil
}
