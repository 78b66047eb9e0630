package formatter

import (
	"bytes"
	"io"
	"strings"
	"time"

	"github.com/treelabs/toolbelt/core"
)

// DefaultTemplate is the text layout used when none is configured.
const DefaultTemplate = "{time} [{level}] {logger}: {message}"

// rootDisplayName is what the root logger's empty name renders as.
const rootDisplayName = "root"

type segmentKind uint8

const (
	segLiteral segmentKind = iota
	segTime
	segLevel
	segLogger
	segMessage
	segID
)

type segment struct {
	kind    segmentKind
	literal string
}

// TextFormatter formats log records as human-readable text following a
// "{field}" template. The template is compiled once at construction.
type TextFormatter struct {
	Config
	segments []segment
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.Template == "" {
		cfg.Template = DefaultTemplate
	}
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	return &TextFormatter{
		Config:   cfg,
		segments: compileTemplate(cfg.Template),
	}
}

// compileTemplate splits a template into literal and field segments.
// Unknown "{name}" placeholders are kept as literals.
func compileTemplate(tpl string) []segment {
	var segs []segment
	for len(tpl) > 0 {
		open := strings.IndexByte(tpl, '{')
		if open < 0 {
			segs = append(segs, segment{kind: segLiteral, literal: tpl})
			break
		}
		end := strings.IndexByte(tpl[open:], '}')
		if end < 0 {
			segs = append(segs, segment{kind: segLiteral, literal: tpl})
			break
		}
		end += open
		if open > 0 {
			segs = append(segs, segment{kind: segLiteral, literal: tpl[:open]})
		}
		switch tpl[open+1 : end] {
		case "time":
			segs = append(segs, segment{kind: segTime})
		case "level":
			segs = append(segs, segment{kind: segLevel})
		case "logger":
			segs = append(segs, segment{kind: segLogger})
		case "message":
			segs = append(segs, segment{kind: segMessage})
		case "id":
			segs = append(segs, segment{kind: segID})
		default:
			segs = append(segs, segment{kind: segLiteral, literal: tpl[open : end+1]})
		}
		tpl = tpl[end+1:]
	}
	return segs
}

// Format formats a record as text
func (f *TextFormatter) Format(rec *core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(rec, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats a record and writes it directly to the writer
func (f *TextFormatter) FormatTo(rec *core.Record, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(rec, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// formatToBuffer writes the formatted record into the given buffer
func (f *TextFormatter) formatToBuffer(rec *core.Record, buf *bytes.Buffer) {
	for _, seg := range f.segments {
		switch seg.kind {
		case segLiteral:
			buf.WriteString(seg.literal)
		case segTime:
			// AppendFormat avoids the intermediate string allocation
			buf.Write(rec.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
		case segLevel:
			buf.WriteString(rec.Level.String())
		case segLogger:
			if rec.Logger == "" {
				buf.WriteString(rootDisplayName)
			} else {
				buf.WriteString(rec.Logger)
			}
		case segMessage:
			buf.WriteString(rec.Message())
		case segID:
			buf.WriteString(rec.ID)
		}
	}

	// Exception trace goes on the following lines
	if rec.Exc != nil {
		buf.WriteByte('\n')
		buf.WriteString(rec.Exc.Trace())
	}

	buf.WriteByte('\n')
}
