package logger

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/multierr"

	"github.com/treelabs/toolbelt/handler"
)

// Registry owns a hierarchy of named loggers. Requesting the same name
// twice returns the same instance; loggers live as long as the registry.
// The registry is created at process start (or explicitly via
// NewRegistry) and torn down with Close at process exit.
type Registry struct {
	mu      sync.RWMutex
	loggers map[string]*Logger

	configureOnce sync.Once
}

// NewRegistry creates a registry holding only the root logger, which is
// registered under the empty sentinel name.
func NewRegistry() *Registry {
	r := &Registry{loggers: make(map[string]*Logger)}
	r.loggers[rootName] = &Logger{registry: r, name: rootName}
	return r
}

// rootName is the sentinel name of the distinguished root logger.
const rootName = ""

// Root returns the distinguished root logger
func (r *Registry) Root() *Logger {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loggers[rootName]
}

// Get returns the logger registered under name, creating it on first
// request. Ancestors are not materialized eagerly; the hierarchy is
// implied by the dot-separated name. The empty name returns the root.
func (r *Registry) Get(name string) (*Logger, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	r.mu.RLock()
	l, ok := r.loggers[name]
	r.mu.RUnlock()
	if ok {
		return l, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok := r.loggers[name]; ok {
		return l, nil
	}
	l = &Logger{registry: r, name: name}
	r.loggers[name] = l
	return l, nil
}

// lookup returns the logger registered under name without creating it
func (r *Registry) lookup(name string) *Logger {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loggers[name]
}

// Close closes every handler attached anywhere in the hierarchy. A
// handler attached to several loggers is shared by reference and closed
// exactly once.
func (r *Registry) Close() error {
	r.mu.RLock()
	seen := make(map[handler.Handler]struct{})
	var handlers []handler.Handler
	for _, l := range r.loggers {
		for _, h := range l.Handlers() {
			if _, dup := seen[h]; dup {
				continue
			}
			seen[h] = struct{}{}
			handlers = append(handlers, h)
		}
	}
	r.mu.RUnlock()

	var err error
	for _, h := range handlers {
		err = multierr.Append(err, h.Close())
	}
	return err
}

// validateName checks that name is the root sentinel or a dot-separated
// sequence of non-empty segments.
func validateName(name string) error {
	if name == rootName {
		return nil
	}
	for _, seg := range strings.Split(name, ".") {
		if seg == "" {
			return fmt.Errorf("invalid logger name %q: empty segment", name)
		}
	}
	return nil
}

// parentName returns the name of the nearest ancestor: "a.b.c" -> "a.b",
// "a" -> root. Calling it on the root name is invalid.
func parentName(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[:i]
	}
	return rootName
}
