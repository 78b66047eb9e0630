// Package core defines the shared types used across the toolbelt logging
// facility.
//
// It provides the Level type for severity filtering, the Record type that
// represents a single log event, and ExcInfo for captured errors with
// stack traces.
//
// Levels use a fixed numeric scale (DEBUG=10 up to CRITICAL=50) so that
// any comparison in the system is a plain integer comparison. The zero
// value LevelNotSet is reserved for loggers that inherit their threshold
// from an ancestor.
//
// A Record stores its message unrendered. Interpolation of the format
// arguments happens lazily, at most once, when a handler first asks for
// the text. Records emitted below every reachable handler's filter
// therefore never pay for string formatting.
package core
