package handler

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/treelabs/toolbelt/core"
	"github.com/treelabs/toolbelt/formatter"
)

// FileHandler appends log records to a file. The file is opened in
// append mode and never truncated, so content survives process restarts.
// With MaxSizeMB set, writes go through a rotating writer instead of a
// plain file handle.
type FileHandler struct {
	filename        string
	writer          io.WriteCloser
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	minLevel        core.Level
	mu              sync.Mutex
	stats           *Stats
}

// FileConfig holds configuration for file handler
type FileConfig struct {
	// Filename is the path to the log file
	Filename string
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// MinLevel is the handler's own filter (default: DebugLevel, no-op)
	MinLevel core.Level
	// MaxSizeMB enables size-based rotation when > 0 (megabytes)
	MaxSizeMB int
	// MaxBackups is the number of rotated files to retain (0 = keep all)
	MaxBackups int
	// MaxAgeDays is the age limit for rotated files (0 = no limit)
	MaxAgeDays int
}

// NewFileHandler creates a new file handler
func NewFileHandler(cfg FileConfig) (*FileHandler, error) {
	if cfg.Filename == "" {
		return nil, fmt.Errorf("filename is required")
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(cfg.Filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	var writer io.WriteCloser
	if cfg.MaxSizeMB > 0 {
		// lumberjack appends to an existing file and rotates by size
		writer = &lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
		}
	} else {
		file, err := os.OpenFile(cfg.Filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, err
		}
		writer = file
	}

	h := &FileHandler{
		filename:  cfg.Filename,
		writer:    writer,
		formatter: cfg.Formatter,
		minLevel:  cfg.MinLevel,
		stats:     NewStats(),
	}

	// Cache WriterFormatter for the direct-write path
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)

	return h, nil
}

// MinLevel returns the handler's effective minimum level
func (h *FileHandler) MinLevel() core.Level {
	return effectiveMin(h.minLevel)
}

// Handle formats and appends a record, skipping it when below the
// handler's own level filter
func (h *FileHandler) Handle(rec *core.Record) error {
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

func (h *FileHandler) write(rec *core.Record) error {
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
func (h *FileHandler) Stats() Snapshot {
	return h.stats.GetSnapshot()
}

// Close closes the underlying file or rotating writer
func (h *FileHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.writer.Close()
}
