package handler

import (
	"sync/atomic"

	"github.com/treelabs/toolbelt/core"
)

// Handler defines the interface for log record sinks. A handler carries
// its own minimum level, independent of any logger threshold; records
// below it are skipped at delivery time.
type Handler interface {
	// Handle writes a log record to the handler's destination, applying
	// the handler's own level filter first.
	Handle(rec *core.Record) error

	// MinLevel returns the handler's effective minimum level. Handlers
	// without an explicit filter report DebugLevel.
	MinLevel() core.Level

	// Close closes the handler and releases resources
	Close() error
}

// effectiveMin maps the unset sentinel to the no-op DEBUG filter.
func effectiveMin(l core.Level) core.Level {
	if l == core.LevelNotSet {
		return core.DebugLevel
	}
	return l
}

// Stats tracks per-handler delivery counters
type Stats struct {
	// ProcessedTotal counts records formatted and written
	ProcessedTotal uint64
	// SkippedTotal counts records below the handler's min level
	SkippedTotal uint64
	// FaultedTotal counts records that failed to format or write
	FaultedTotal uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementProcessed atomically increments the processed counter
func (s *Stats) IncrementProcessed() {
	atomic.AddUint64(&s.ProcessedTotal, 1)
}

// IncrementSkipped atomically increments the skipped counter
func (s *Stats) IncrementSkipped() {
	atomic.AddUint64(&s.SkippedTotal, 1)
}

// IncrementFaulted atomically increments the faulted counter
func (s *Stats) IncrementFaulted() {
	atomic.AddUint64(&s.FaultedTotal, 1)
}

// Snapshot is a point-in-time copy of the counters
type Snapshot struct {
	Processed uint64
	Skipped   uint64
	Faulted   uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		Processed: atomic.LoadUint64(&s.ProcessedTotal),
		Skipped:   atomic.LoadUint64(&s.SkippedTotal),
		Faulted:   atomic.LoadUint64(&s.FaultedTotal),
	}
}
