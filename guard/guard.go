// Package guard implements scoped acquisition: a setup/teardown bracket
// around a block of work where teardown always runs, no matter how the
// block exits.
//
// A Manager pairs Enter, which acquires and returns the bound value,
// with Exit, which releases it. Exit receives the block's outcome — nil,
// the block's error, or a *GuardedBlockError wrapping a panic — and
// decides suppression purely through its return value: true absorbs the
// failure, false lets it continue unchanged. Exit never re-raises the
// failure itself.
package guard

import "fmt"

// Manager brackets a block of work around a value of type T.
type Manager[T any] interface {
	// Enter performs setup and returns the value bound to the block
	Enter() (T, error)

	// Exit performs teardown. It always runs once Enter has succeeded,
	// receives the block's failure (nil when the block completed), and
	// returns true to suppress that failure.
	Exit(err error) bool
}

// GuardedBlockError wraps a panic raised inside a guarded block so it
// can be handed to Exit as an ordinary error.
type GuardedBlockError struct {
	// Value is the original panic value
	Value any
}

func (e *GuardedBlockError) Error() string {
	return fmt.Sprintf("panic in guarded block: %v", e.Value)
}

// With runs fn bracketed by m. Enter runs first; if it fails, fn never
// runs, Exit is not called, and the error is returned. Otherwise Exit
// always runs after fn — also when fn panics, in which case Exit
// receives the panic wrapped in *GuardedBlockError.
//
// When Exit returns true the failure is absorbed: With returns nil and
// a suppressed panic does not resume. When Exit returns false the
// block's error is returned unchanged, and a panic resumes with its
// original value after Exit has completed.
func With[T any](m Manager[T], fn func(T) error) error {
	bound, err := m.Enter()
	if err != nil {
		return err
	}

	var blockErr error
	var panicked *GuardedBlockError

	func() {
		defer func() {
			if r := recover(); r != nil {
				panicked = &GuardedBlockError{Value: r}
			}
		}()
		blockErr = fn(bound)
	}()

	outcome := blockErr
	if panicked != nil {
		outcome = panicked
	}

	if m.Exit(outcome) {
		return nil
	}
	if panicked != nil {
		panic(panicked.Value)
	}
	return blockErr
}

// FuncManager adapts two closures into a Manager. A nil OnEnter binds
// the zero value; a nil OnExit never suppresses.
type FuncManager[T any] struct {
	OnEnter func() (T, error)
	OnExit  func(err error) bool
}

// Enter implements Manager
func (m FuncManager[T]) Enter() (T, error) {
	if m.OnEnter == nil {
		var zero T
		return zero, nil
	}
	return m.OnEnter()
}

// Exit implements Manager
func (m FuncManager[T]) Exit(err error) bool {
	if m.OnExit == nil {
		return false
	}
	return m.OnExit(err)
}
