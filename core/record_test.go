package core

import (
	"errors"
	"strings"
	"testing"
	"time"

	pkgerrors "github.com/pkg/errors"
)

func TestRecord_MessageDeferred(t *testing.T) {
	r := NewRecord("app.sub", InfoLevel, "user %s logged in %d times", "ada", 3)

	if r.Logger != "app.sub" {
		t.Errorf("Logger = %q, want %q", r.Logger, "app.sub")
	}
	if r.Level != InfoLevel {
		t.Errorf("Level = %v, want %v", r.Level, InfoLevel)
	}
	if got := r.Message(); got != "user ada logged in 3 times" {
		t.Errorf("Message() = %q", got)
	}
	// Rendering is cached; a second call returns the same string.
	if got := r.Message(); got != "user ada logged in 3 times" {
		t.Errorf("second Message() = %q", got)
	}
}

func TestRecord_MessageWithoutArgs(t *testing.T) {
	r := NewRecord("app", WarningLevel, "plain message with a stray %d verb")
	if got := r.Message(); got != "plain message with a stray %d verb" {
		t.Errorf("Message() = %q, format must pass through untouched without args", got)
	}
}

func TestRecord_UniqueIDs(t *testing.T) {
	a := NewRecord("app", InfoLevel, "x")
	b := NewRecord("app", InfoLevel, "x")
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("record IDs must be unique and non-empty, got %q and %q", a.ID, b.ID)
	}
}

func TestRecord_Timestamp(t *testing.T) {
	before := time.Now()
	r := NewRecord("app", InfoLevel, "x")
	after := time.Now()
	if r.Time.Before(before) || r.Time.After(after) {
		t.Errorf("Time = %v outside [%v, %v]", r.Time, before, after)
	}
}

func TestCapture_NilError(t *testing.T) {
	if Capture(nil) != nil {
		t.Error("Capture(nil) must return nil")
	}
}

func TestCapture_AddsStack(t *testing.T) {
	exc := Capture(errors.New("boom"))
	trace := exc.Trace()
	if !strings.Contains(trace, "boom") {
		t.Errorf("Trace() = %q, want the error message", trace)
	}
	// WithStack renders the call site of Capture on the following lines.
	if !strings.Contains(trace, "core.TestCapture_AddsStack") {
		t.Errorf("Trace() missing stack frames:\n%s", trace)
	}
}

func TestCapture_KeepsExistingStack(t *testing.T) {
	err := pkgerrors.New("already traced")
	exc := Capture(err)
	if exc.Err != err {
		t.Error("Capture must not re-wrap an error that already carries a stack")
	}
}
