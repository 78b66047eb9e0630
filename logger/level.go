package logger

import "github.com/treelabs/toolbelt/core"

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	LevelNotSet   = core.LevelNotSet
	DebugLevel    = core.DebugLevel
	InfoLevel     = core.InfoLevel
	WarningLevel  = core.WarningLevel
	ErrorLevel    = core.ErrorLevel
	CriticalLevel = core.CriticalLevel
)

// ParseLevel converts a string to a Level
func ParseLevel(s string) (Level, bool) {
	return core.ParseLevel(s)
}
