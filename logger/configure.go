package logger

import (
	"io"

	"github.com/treelabs/toolbelt/core"
	"github.com/treelabs/toolbelt/formatter"
	"github.com/treelabs/toolbelt/handler"
)

// Options configures the one-shot setup of a registry's root logger.
type Options struct {
	// Level is the root threshold (default: WARNING)
	Level core.Level
	// Template is the text layout (default: formatter.DefaultTemplate)
	Template string
	// TimestampFormat overrides the RFC3339 default
	TimestampFormat string
	// Destination receives the output (default: os.Stdout via the
	// console handler). Ignored when FilePath is set.
	Destination io.Writer
	// FilePath switches output to an append-only file
	FilePath string
}

// ConfigureOnce performs the registry's one-shot global configuration:
// it sets the root level and attaches a single console or file handler
// with a text formatter. Only the first call in the registry's lifetime
// has any effect; later calls are silently ignored and return nil.
func (r *Registry) ConfigureOnce(opts Options) error {
	var err error
	r.configureOnce.Do(func() {
		err = r.configure(opts)
	})
	return err
}

func (r *Registry) configure(opts Options) error {
	level := opts.Level
	if level == core.LevelNotSet {
		level = core.WarningLevel
	}

	f := formatter.NewTextFormatter(formatter.Config{
		Template:        opts.Template,
		TimestampFormat: opts.TimestampFormat,
	})

	var h handler.Handler
	if opts.FilePath != "" {
		fh, err := handler.NewFileHandler(handler.FileConfig{
			Filename:  opts.FilePath,
			Formatter: f,
		})
		if err != nil {
			return err
		}
		h = fh
	} else {
		h = handler.NewConsoleHandler(handler.ConsoleConfig{
			Writer:    opts.Destination,
			Formatter: f,
		})
	}

	root := r.Root()
	root.SetLevel(level)
	root.AddHandler(h)
	return nil
}
