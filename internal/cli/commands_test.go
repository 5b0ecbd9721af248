package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"qedit/internal/testutil"
)

const validBank = `{"math":[{"question":"2+2?","choices":[{"prompt":"4","is_correct":true},{"prompt":"5","is_correct":false}]}],"history":[{"question":"Year?","choices":[{"prompt":"1066","is_correct":true}]}]}`

const invalidBank = `{"math":[{"question":"2+2?","choices":[{"prompt":"4","is_correct":true},{"prompt":"5","is_correct":true}]},{"question":"3+3?","choices":[{"prompt":"6","is_correct":true}]}],"empty":[{"question":"None?","choices":[{"prompt":"no","is_correct":false}]}]}`

func plainOutput(t *testing.T) {
	t.Helper()
	original := isTerminal
	isTerminal = func(io.Writer) bool { return false }
	t.Cleanup(func() { isTerminal = original })
}

func TestValidateCommandAcceptsBank(t *testing.T) {
	plainOutput(t)
	var stdout, stderr bytes.Buffer
	code := Run([]string{"validate", "-f", testutil.WriteBank(t, validBank)}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("expected exit ok, got %d: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Bank OK: 2 categories, 2 questions") {
		t.Fatalf("unexpected output: %q", stdout.String())
	}
}

func TestValidateCommandListsIssues(t *testing.T) {
	plainOutput(t)
	var stdout, stderr bytes.Buffer
	code := Run([]string{"validate", "-f", testutil.WriteBank(t, invalidBank)}, &stdout, &stderr)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	output := stderr.String()
	for _, want := range []string{
		"Validation failed:",
		"math Question 1: must have exactly one correct answer",
		"empty Question 1: must have exactly one correct answer",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected %q in output:\n%s", want, output)
		}
	}
	if strings.Contains(output, "math Question 2") {
		t.Fatalf("valid question reported:\n%s", output)
	}
}

func TestValidateCommandMissingBank(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"validate", "-f", filepath.Join(t.TempDir(), "missing.json")}, &stdout, &stderr)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(stderr.String(), "Bank error") {
		t.Fatalf("expected bank error, got %q", stderr.String())
	}
}

func TestListCommandPrintsSummary(t *testing.T) {
	plainOutput(t)
	var stdout, stderr bytes.Buffer
	code := Run([]string{"list", "-f", testutil.WriteBank(t, invalidBank)}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("expected exit ok, got %d: %s", code, stderr.String())
	}
	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and two rows, got:\n%s", stdout.String())
	}
	if !strings.HasPrefix(lines[0], "Category") {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if fields := strings.Fields(lines[1]); len(fields) != 3 || fields[0] != "math" || fields[1] != "2" || fields[2] != "1" {
		t.Fatalf("unexpected math row: %q", lines[1])
	}
	if fields := strings.Fields(lines[2]); len(fields) != 3 || fields[0] != "empty" || fields[1] != "1" || fields[2] != "1" {
		t.Fatalf("unexpected empty row: %q", lines[2])
	}
}

func TestListCommandEmptyBank(t *testing.T) {
	plainOutput(t)
	var stdout, stderr bytes.Buffer
	code := Run([]string{"list", "-f", testutil.WriteBank(t, "{}")}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("expected exit ok, got %d: %s", code, stderr.String())
	}
	if strings.TrimSpace(stdout.String()) != "No categories" {
		t.Fatalf("unexpected output: %q", stdout.String())
	}
}

func TestGenerateCommandWritesSite(t *testing.T) {
	out := filepath.Join(t.TempDir(), "public")
	var stdout, stderr bytes.Buffer
	code := Run([]string{"generate", "--out", out, "--title", "Arcade"}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("expected exit ok, got %d: %s", code, stderr.String())
	}
	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	if !strings.Contains(string(index), "<title>Arcade</title>") {
		t.Fatalf("expected title in page:\n%s", index)
	}
	if _, err := os.Stat(filepath.Join(out, "assets", "editor.js")); err != nil {
		t.Fatalf("expected script asset: %v", err)
	}
	if !strings.Contains(stdout.String(), "index.html") {
		t.Fatalf("expected written files listed, got %q", stdout.String())
	}
}

func TestInitCommandScaffoldsConfig(t *testing.T) {
	target := filepath.Join(t.TempDir(), "qedit.yml")
	var stdout, stderr bytes.Buffer
	code := Run([]string{"init", "--out", target}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("expected exit ok, got %d: %s", code, stderr.String())
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file: %v", err)
	}

	stdout.Reset()
	stderr.Reset()
	code = Run([]string{"init", "--out", target}, &stdout, &stderr)
	if code != ExitError {
		t.Fatalf("expected exit %d on overwrite, got %d", ExitError, code)
	}
	if !strings.Contains(stderr.String(), "already exists") {
		t.Fatalf("expected exists error, got %q", stderr.String())
	}
}

func TestOutputStylesPlainWhenNotTTY(t *testing.T) {
	plainOutput(t)
	styles := newOutputStyles(&bytes.Buffer{})
	if got := styles.fail.Render("x"); got != "x" {
		t.Fatalf("expected plain output, got %q", got)
	}
}
