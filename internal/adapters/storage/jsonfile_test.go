package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestReadDocumentMissingFile tests that an absent file reports found=false
// without touching the target value.
func TestReadDocumentMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "settings.json")
	v := map[string]any{"keep": true}
	found, err := ReadDocument(path, &v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Error("expected found=false for missing file")
	}
	if _, ok := v["keep"]; !ok {
		t.Error("expected target value untouched")
	}
}

// TestWriteThenReadRoundTrip tests wholesale save and load.
func TestWriteThenReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "menu.json")
	in := []map[string]any{{"id": "m1", "price": float64(500)}}
	if err := WriteDocument(path, in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var out []map[string]any
	found, err := ReadDocument(path, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found {
		t.Fatal("expected found=true")
	}
	if len(out) != 1 || out[0]["id"] != "m1" || out[0]["price"] != float64(500) {
		t.Errorf("round trip mismatch: %v", out)
	}
}

// TestWriteDocumentHumanReadable tests indentation and trailing newline.
func TestWriteDocumentHumanReadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := WriteDocument(path, map[string]bool{"maintenance": false}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := string(raw)
	if !strings.Contains(text, "\n  ") {
		t.Errorf("expected indented output, got %q", text)
	}
	if !strings.HasSuffix(text, "\n") {
		t.Error("expected trailing newline")
	}
}

// TestWriteDocumentLeavesNoTempFiles tests that the atomic replace cleans up.
func TestWriteDocumentLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "banners.json")
	if err := WriteDocument(path, []string{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "banners.json" {
		t.Errorf("expected only banners.json, got %v", entries)
	}
}

// TestReadDocumentMalformed tests that corrupt content surfaces as an error.
func TestReadDocumentMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var v any
	if _, err := ReadDocument(path, &v); err == nil {
		t.Error("expected decode error for malformed file")
	}
}
