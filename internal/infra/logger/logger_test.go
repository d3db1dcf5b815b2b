package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupWritesJSONLines(t *testing.T) {
	root := t.TempDir()

	if err := IsReady(); err == nil {
		t.Fatalf("expected logger not ready before Setup")
	}

	cleanup, err := Setup(Config{Root: root, Debug: true, App: "fundingcall"})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}

	wantPath := filepath.Join(root, ".fundingcall", "logs", "fundingcall.log")
	if Path() != wantPath {
		t.Fatalf("expected log path %s, got %s", wantPath, Path())
	}
	if err := IsReady(); err != nil {
		t.Fatalf("expected ready logger: %v", err)
	}

	With("tui").Debug("repository.loaded", "records", 2)

	if err := cleanup(); err != nil {
		t.Fatalf("cleanup error: %v", err)
	}

	b, err := os.ReadFile(wantPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected init and event lines, got %d:\n%s", len(lines), b)
	}

	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &rec); err != nil {
		t.Fatalf("expected JSON line: %v", err)
	}
	if rec["msg"] != "repository.loaded" || rec["component"] != "tui" || rec["app"] != "fundingcall" {
		t.Fatalf("unexpected record %v", rec)
	}
	if _, ok := rec["source"]; !ok {
		t.Fatalf("expected source attribute in debug mode")
	}

	if Path() != "" {
		t.Fatalf("expected path reset after cleanup")
	}
}
