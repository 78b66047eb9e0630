// Package logger is the public API of the toolbelt logging facility.
// Most users only need to import this package.
//
// Loggers are named nodes in a dot-separated hierarchy owned by a
// Registry: "app.db.pool" is a descendant of "app.db", "app", and the
// distinguished root (empty name). Requesting the same name twice
// returns the same instance. Ancestors are implied by the name and are
// only materialized when requested themselves.
//
// A logger without an explicit level inherits its effective threshold
// from the nearest ancestor that has one, bottoming out at WARNING.
// The threshold gates emission: a filtered-out call costs only the
// hierarchy walk, no record is built and no handler runs.
//
// Once a record passes the gate it propagates unconditionally: this
// logger's handlers run first, then each ancestor's, nearest ancestor
// first, root last. Ancestor thresholds do not re-filter; only each
// handler's own minimum level decides whether it writes. If no handler
// is attached anywhere along the chain, the record is written by the
// last-resort fallback handler (stderr) so it is never lost silently.
//
// Handler failures are isolated. An error or panic while formatting or
// writing is reported to the fallback stream and skips only that
// handler for that record; the code that emitted the record never sees
// logging-infrastructure failures.
//
// Simple programs use the default registry through the package-level
// functions:
//
//	logger.ConfigureOnce(logger.Options{Level: logger.InfoLevel})
//	log, _ := logger.GetLogger("app.db")
//	log.Info("connected to %s", addr)
//
// ConfigureOnce is idempotent: only the first call in the registry's
// lifetime takes effect.
package logger
