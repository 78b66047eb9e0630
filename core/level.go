package core

import "strings"

// Level represents the severity of a log record. The numeric values form
// a fixed ascending scale; all filtering compares these numbers directly.
type Level int8

const (
	// LevelNotSet marks a logger without an explicit threshold; the
	// effective threshold is inherited from the nearest ancestor.
	LevelNotSet Level = 0
	// DebugLevel for detailed debugging information
	DebugLevel Level = 10
	// InfoLevel for general informational messages
	InfoLevel Level = 20
	// WarningLevel for warning messages (default effective threshold)
	WarningLevel Level = 30
	// ErrorLevel for error messages
	ErrorLevel Level = 40
	// CriticalLevel for critical failures
	CriticalLevel Level = 50
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarningLevel:
		return "WARNING"
	case ErrorLevel:
		return "ERROR"
	case CriticalLevel:
		return "CRITICAL"
	case LevelNotSet:
		return "NOTSET"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a string to a Level. The second return value is
// false when the string names no known level.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return DebugLevel, true
	case "INFO":
		return InfoLevel, true
	case "WARN", "WARNING":
		return WarningLevel, true
	case "ERROR":
		return ErrorLevel, true
	case "CRITICAL", "FATAL":
		return CriticalLevel, true
	case "NOTSET", "":
		return LevelNotSet, true
	default:
		return LevelNotSet, false
	}
}
