package core

import "testing"

func TestLevel_Ordering(t *testing.T) {
	ordered := []Level{DebugLevel, InfoLevel, WarningLevel, ErrorLevel, CriticalLevel}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1] >= ordered[i] {
			t.Errorf("expected %v < %v", ordered[i-1], ordered[i])
		}
	}
}

func TestLevel_String(t *testing.T) {
	cases := map[Level]string{
		DebugLevel:    "DEBUG",
		InfoLevel:     "INFO",
		WarningLevel:  "WARNING",
		ErrorLevel:    "ERROR",
		CriticalLevel: "CRITICAL",
		LevelNotSet:   "NOTSET",
		Level(99):     "UNKNOWN",
	}
	for level, want := range cases {
		if got := level.String(); got != want {
			t.Errorf("Level(%d).String() = %q, want %q", level, got, want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
		ok   bool
	}{
		{"debug", DebugLevel, true},
		{"INFO", InfoLevel, true},
		{"warn", WarningLevel, true},
		{"Warning", WarningLevel, true},
		{"error", ErrorLevel, true},
		{"critical", CriticalLevel, true},
		{"fatal", CriticalLevel, true},
		{"", LevelNotSet, true},
		{"verbose", LevelNotSet, false},
	}
	for _, tt := range tests {
		got, ok := ParseLevel(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseLevel(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
