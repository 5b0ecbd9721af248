package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// ExampleBank is a one-category bank with a single valid question.
const ExampleBank = `{"math":[{"question":"2+2?","choices":[{"prompt":"4","is_correct":true},{"prompt":"5","is_correct":false}]}]}`

// WriteBank writes contents to questions.json in a fresh temp dir and returns its path.
func WriteBank(t testing.TB, contents string) string {
	t.Helper()
	return WriteFile(t, t.TempDir(), "questions.json", contents)
}

// WriteFile writes contents to dir/name and returns the path.
func WriteFile(t testing.TB, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create dir for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
