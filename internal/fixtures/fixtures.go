// Package fixtures loads multi-file Toolman source fixtures for tests from
// txtar archives, so a single testdata file can hold an entire small
// import graph (a root module plus the files it imports) without a
// directory per test case.
package fixtures

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/tools/txtar"
)

// Load parses the txtar archive at path and materializes each of its files
// under a fresh temporary directory, preserving their relative paths so
// import statements between them resolve normally. It returns the absolute
// path to rootName within that directory.
func Load(t *testing.T, path, rootName string) string {
	t.Helper()

	dir := t.TempDir()
	arc, err := txtar.ParseFile(path)
	if err != nil {
		t.Fatalf("fixtures: parse %s: %v", path, err)
	}

	var rootPath string
	for _, f := range arc.Files {
		full := filepath.Join(dir, f.Name)
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("fixtures: create dir for %s: %v", f.Name, err)
		}
		if err := os.WriteFile(full, f.Data, 0o644); err != nil {
			t.Fatalf("fixtures: write %s: %v", f.Name, err)
		}
		if f.Name == rootName {
			rootPath = full
		}
	}
	if rootPath == "" {
		t.Fatalf("fixtures: archive %s has no file named %q", path, rootName)
	}
	return rootPath
}

// MustParse parses the txtar archive at path without materializing its
// files, for callers outside a *testing.T context (e.g. a benchmark's setup
// helper); a parse failure comes back as a wrapped error naming path.
func MustParse(path string) (*txtar.Archive, error) {
	arc, err := txtar.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixtures: parse %s: %w", path, err)
	}
	return arc, nil
}
