package logger

import (
	"io"
	"testing"

	"github.com/treelabs/toolbelt/core"
	"github.com/treelabs/toolbelt/handler"
)

func BenchmarkLogger_FilteredOut(b *testing.B) {
	r := NewRegistry()
	l, _ := r.Get("bench")
	l.AddHandler(handler.NewConsoleHandler(handler.ConsoleConfig{Writer: io.Discard}))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Below the default WARNING threshold: the gate short-circuits
		// before any record is built.
		l.Debug("dropped %d", i)
	}
}

func BenchmarkLogger_Delivered(b *testing.B) {
	r := NewRegistry()
	l, _ := r.Get("bench")
	l.SetLevel(core.DebugLevel)
	l.AddHandler(handler.NewConsoleHandler(handler.ConsoleConfig{Writer: io.Discard}))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info("delivered %d", i)
	}
}

func BenchmarkLogger_DeepHierarchyFiltered(b *testing.B) {
	r := NewRegistry()
	l, _ := r.Get("a.b.c.d.e.f")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Cost of the ancestor walk when nothing is delivered.
		l.Debug("dropped")
	}
}
