// Package handler provides the Handler interface and its built-in
// implementations for dispatching log records to various outputs.
//
// Every handler carries its own minimum level, independent of any
// logger threshold. The logger decides whether a record is emitted at
// all; the handler decides whether it writes that record. An unset
// minimum acts as DEBUG, a no-op filter.
//
// All handlers are synchronous. A mutex serializes writes to the
// destination, so one handler instance can be attached to several
// loggers and used from several goroutines; output lines never
// interleave.
//
// Built-in handlers:
//
//   - ConsoleHandler writes formatted records to any io.Writer
//     (default: stdout), optionally colored per level.
//   - FileHandler appends to a file that is never truncated on open,
//     with optional size-based rotation via lumberjack.
//   - MultiHandler fans a single record out to multiple children.
//   - ZapHandler forwards records into a zap.Logger pipeline.
//
// Fallback returns the process-wide last-resort handler (stderr). It
// catches records that found no handler along the propagation chain,
// so a configured-but-handlerless hierarchy never loses messages
// silently, and it receives the notices produced when a regular
// handler faults.
//
// Handlers count processed, skipped, and faulted records via the Stats
// type, which can be queried at runtime for monitoring.
package handler
