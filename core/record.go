package core

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/xid"
)

// Record represents a single log event. It is created once per emission,
// after the logger-level gate has passed, and is never mutated afterwards.
// Every handler along the propagation chain sees the same Record.
type Record struct {
	// ID uniquely identifies the record within and across processes.
	ID string
	// Time is the emission timestamp.
	Time time.Time
	// Level is the severity the record was emitted at.
	Level Level
	// Logger is the dot-separated name of the originating logger.
	Logger string
	// Exc carries captured exception information, when present.
	Exc *ExcInfo

	format string
	args   []any

	renderOnce sync.Once
	rendered   string
}

// NewRecord creates a Record for the given logger name and level. The
// message is stored unrendered; args are interpolated into format on the
// first call to Message.
func NewRecord(loggerName string, level Level, format string, args ...any) *Record {
	return &Record{
		ID:     xid.New().String(),
		Time:   time.Now(),
		Level:  level,
		Logger: loggerName,
		format: format,
		args:   args,
	}
}

// WithExc returns the record with captured exception information attached.
// It must be called before the record is handed to any handler.
func (r *Record) WithExc(exc *ExcInfo) *Record {
	r.Exc = exc
	return r
}

// Message renders the record's message. Rendering is deferred until a
// handler actually needs the text and happens at most once, so records
// filtered out by every handler never pay for interpolation.
func (r *Record) Message() string {
	r.renderOnce.Do(func() {
		if len(r.args) == 0 {
			r.rendered = r.format
			return
		}
		r.rendered = fmt.Sprintf(r.format, r.args...)
	})
	return r.rendered
}
