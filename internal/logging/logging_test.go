package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

// TestNewProdWritesJSON verifies prod logs are JSON at info level.
func TestNewProdWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(EnvProd, &buf)
	log.Debug("hidden")
	log.Info("saved", Err(errors.New("boom")))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %q", buf.String())
	}
	var record map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &record); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if record["msg"] != "saved" || record["error"] != "boom" {
		t.Fatalf("unexpected record: %v", record)
	}
}

// TestNewLocalWritesText verifies local logs are text at debug level.
func TestNewLocalWritesText(t *testing.T) {
	var buf bytes.Buffer
	New("", &buf).Debug("visible")
	if !strings.Contains(buf.String(), "msg=visible") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}
