package logging

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phydon/sp/pkg/config"
)

func TestPath(t *testing.T) {
	got := Path(filepath.Join("some", "dir"))
	want := filepath.Join("some", "dir", "sp.log")
	if got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}

func TestSetupWritesToFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sp")
	defer log.SetOutput(os.Stderr)

	cfg := config.LogConfig{MaxSizeMB: 1, MaxBackups: 1, MaxAgeDays: 1}
	if err := Setup(dir, cfg); err != nil {
		t.Fatalf("Setup() error = %v", err)
	}

	log.Print("message under test")

	content, found, err := Read(dir)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !found {
		t.Fatal("Read() found = false, want true after logging")
	}
	if !strings.Contains(content, "message under test") {
		t.Errorf("log content = %q, want it to contain the logged message", content)
	}
}

func TestSetupCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "sp")
	defer log.SetOutput(os.Stderr)

	if err := Setup(dir, config.LogConfig{}); err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if !info.IsDir() {
		t.Errorf("%s is not a directory", dir)
	}
}

func TestReadMissingFile(t *testing.T) {
	content, found, err := Read(t.TempDir())
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if found {
		t.Error("Read() found = true, want false for missing file")
	}
	if content != "" {
		t.Errorf("Read() content = %q, want empty", content)
	}
}
