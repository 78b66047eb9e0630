package core

import (
	"fmt"

	"github.com/pkg/errors"
)

// ExcInfo holds a captured error and its stack trace for inclusion in
// formatted output.
type ExcInfo struct {
	Err error
}

// stackTracer is implemented by errors created or wrapped by
// github.com/pkg/errors.
type stackTracer interface {
	StackTrace() errors.StackTrace
}

// Capture records err together with a stack trace. If err already carries
// one (anywhere in its chain) it is kept as-is; otherwise the trace is
// taken at the call site. Capture returns nil for a nil error.
func Capture(err error) *ExcInfo {
	if err == nil {
		return nil
	}
	if !hasStack(err) {
		err = errors.WithStack(err)
	}
	return &ExcInfo{Err: err}
}

func hasStack(err error) bool {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if _, ok := e.(stackTracer); ok {
			return true
		}
	}
	return false
}

// Trace returns the multi-line rendering of the captured error, including
// its stack trace when one is attached.
func (e *ExcInfo) Trace() string {
	if e == nil || e.Err == nil {
		return ""
	}
	return fmt.Sprintf("%+v", e.Err)
}
