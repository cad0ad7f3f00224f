// Copyright 2025 Certen Protocol

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadManifestFillsMissingIDs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.yaml")
	content := "digest: sha256\nleaves:\n  - id: holder-a\n    public_key_hex: \"aa\"\n  - public_key_hex: \"bb\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if len(m.Leaves) != 2 {
		t.Fatalf("expected 2 leaves, got %d", len(m.Leaves))
	}
	if m.Leaves[0].ID != "holder-a" {
		t.Fatalf("explicit ID overwritten: got %q", m.Leaves[0].ID)
	}
	if m.Leaves[1].ID == "" {
		t.Fatalf("missing ID was not filled in")
	}
}

func TestLoadManifestRejectsEmptyLeaves(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.yaml")
	if err := os.WriteFile(path, []byte("digest: sha256\nleaves: []\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := LoadManifest(path); err == nil {
		t.Fatalf("expected error for manifest with no leaves")
	}
}

func TestLoadManifestMissingFile(t *testing.T) {
	if _, err := LoadManifest("/nonexistent/path.yaml"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
