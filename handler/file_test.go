package handler

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/treelabs/toolbelt/core"
)

func TestFileHandler_RequiresFilename(t *testing.T) {
	if _, err := NewFileHandler(FileConfig{}); err == nil {
		t.Fatal("NewFileHandler should reject an empty filename")
	}
}

func TestFileHandler_WritesAndCloses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	h, err := NewFileHandler(FileConfig{Filename: path})
	if err != nil {
		t.Fatalf("NewFileHandler() error = %v", err)
	}

	if err := h.Handle(core.NewRecord("app", core.ErrorLevel, "disk on fire")); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if err := h.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "disk on fire") {
		t.Errorf("Expected message in file, got: %s", data)
	}
}

func TestFileHandler_AppendsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	h1, err := NewFileHandler(FileConfig{Filename: path})
	if err != nil {
		t.Fatalf("NewFileHandler() error = %v", err)
	}
	_ = h1.Handle(core.NewRecord("app", core.WarningLevel, "first run"))
	_ = h1.Close()

	// Reopening must preserve existing content, never truncate.
	h2, err := NewFileHandler(FileConfig{Filename: path})
	if err != nil {
		t.Fatalf("NewFileHandler() reopen error = %v", err)
	}
	_ = h2.Handle(core.NewRecord("app", core.WarningLevel, "second run"))
	_ = h2.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "first run") || !strings.Contains(content, "second run") {
		t.Errorf("File must hold both runs, got: %s", content)
	}
	if strings.Index(content, "first run") > strings.Index(content, "second run") {
		t.Errorf("Appended lines out of order: %s", content)
	}
}

func TestFileHandler_MinLevelLeavesFileUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	h, err := NewFileHandler(FileConfig{Filename: path, MinLevel: core.ErrorLevel})
	if err != nil {
		t.Fatalf("NewFileHandler() error = %v", err)
	}
	defer h.Close()

	if err := h.Handle(core.NewRecord("app", core.WarningLevel, "discarded")); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("File should stay empty for filtered records, size = %d", info.Size())
	}
}

func TestFileHandler_RotationWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rotated.log")

	h, err := NewFileHandler(FileConfig{Filename: path, MaxSizeMB: 1})
	if err != nil {
		t.Fatalf("NewFileHandler() error = %v", err)
	}

	if err := h.Handle(core.NewRecord("app", core.InfoLevel, "through lumberjack")); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if err := h.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "through lumberjack") {
		t.Errorf("Expected message in rotated file, got: %s", data)
	}
}
