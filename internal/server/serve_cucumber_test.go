//go:build cucumber

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/cucumber/godog"
)

// TestEditorAPIScenarios runs the editor API feature scenarios.
func TestEditorAPIScenarios(t *testing.T) {
	featurePath := filepath.Join("..", "..", "features", "editor-api.feature")
	suite := godog.TestSuite{
		Name:                "editor-api",
		ScenarioInitializer: InitializeEditorScenario,
		Options: &godog.Options{
			Format:    "pretty",
			Paths:     []string{featurePath},
			Strict:    true,
			TestingT:  t,
			Randomize: 0,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

// InitializeEditorScenario wires steps for editor API scenarios.
func InitializeEditorScenario(ctx *godog.ScenarioContext) {
	state := &editorScenarioState{}
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})
	ctx.After(func(ctx context.Context, _ *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, err
	})

	ctx.Step(`^a question bank file containing:$`, state.givenBankFile)
	ctx.Step(`^a question bank path that does not exist$`, state.givenMissingBank)
	ctx.Step(`^I start the editor server$`, state.whenIStartTheServer)
	ctx.Step(`^I request GET "([^"]+)"$`, state.whenIGet)
	ctx.Step(`^I post the last response body to "([^"]+)"$`, state.whenIPostLastBody)
	ctx.Step(`^the response status is (\d+)$`, state.thenResponseStatus)
	ctx.Step(`^the response body contains "([^"]+)"$`, state.thenResponseBodyContains)
	ctx.Step(`^the response JSON equals the bank file$`, state.thenResponseEqualsFile)
	ctx.Step(`^the response JSON equals:$`, state.thenResponseEquals)
}

// editorScenarioState holds scenario state for editor API feature tests.
type editorScenarioState struct {
	dir      string
	bankPath string
	contents []byte
	handler  http.Handler
	response *httptest.ResponseRecorder
}

// reset clears scenario state.
func (s *editorScenarioState) reset() {
	s.dir = ""
	s.bankPath = ""
	s.contents = nil
	s.handler = nil
	s.response = nil
}

// cleanup removes scenario files.
func (s *editorScenarioState) cleanup() {
	if s.dir != "" {
		_ = os.RemoveAll(s.dir)
	}
}

func (s *editorScenarioState) tempDir() (string, error) {
	if s.dir != "" {
		return s.dir, nil
	}
	dir, err := os.MkdirTemp("", "qedit-feature-*")
	if err != nil {
		return "", err
	}
	s.dir = dir
	return dir, nil
}

// givenBankFile writes the doc string as the bank file.
func (s *editorScenarioState) givenBankFile(doc *godog.DocString) error {
	dir, err := s.tempDir()
	if err != nil {
		return err
	}
	s.bankPath = filepath.Join(dir, "questions.json")
	s.contents = []byte(doc.Content)
	return os.WriteFile(s.bankPath, s.contents, 0o644)
}

// givenMissingBank points the server at a path that was never created.
func (s *editorScenarioState) givenMissingBank() error {
	dir, err := s.tempDir()
	if err != nil {
		return err
	}
	s.bankPath = filepath.Join(dir, "missing.json")
	return nil
}

// whenIStartTheServer builds the editor handler with the scenario config.
func (s *editorScenarioState) whenIStartTheServer() error {
	if s.bankPath == "" {
		return fmt.Errorf("bank path is not set")
	}
	handler, err := NewHandler(Config{BankPath: s.bankPath})
	if err != nil {
		return err
	}
	s.handler = handler
	return nil
}

func (s *editorScenarioState) do(method, path string, body []byte) error {
	if s.handler == nil {
		return fmt.Errorf("handler not initialized")
	}
	req := httptest.NewRequest(method, "http://example.com"+path, bytes.NewReader(body))
	recorder := httptest.NewRecorder()
	s.handler.ServeHTTP(recorder, req)
	s.response = recorder
	return nil
}

// whenIGet sends a GET request to the editor handler.
func (s *editorScenarioState) whenIGet(path string) error {
	return s.do(http.MethodGet, path, nil)
}

// whenIPostLastBody posts the previous response body back, as the browser does after no edits.
func (s *editorScenarioState) whenIPostLastBody(path string) error {
	if s.response == nil {
		return fmt.Errorf("response not recorded")
	}
	body := append([]byte(nil), s.response.Body.Bytes()...)
	return s.do(http.MethodPost, path, body)
}

// thenResponseStatus asserts the HTTP response status code.
func (s *editorScenarioState) thenResponseStatus(expected int) error {
	if s.response == nil {
		return fmt.Errorf("response not recorded")
	}
	if s.response.Code != expected {
		return fmt.Errorf("expected status %d, got %d", expected, s.response.Code)
	}
	return nil
}

// thenResponseBodyContains asserts the response body includes the given substring.
func (s *editorScenarioState) thenResponseBodyContains(snippet string) error {
	if s.response == nil {
		return fmt.Errorf("response not recorded")
	}
	if !strings.Contains(s.response.Body.String(), snippet) {
		return fmt.Errorf("expected response to contain %q", snippet)
	}
	return nil
}

// thenResponseEqualsFile asserts the response is the same JSON as the bank file.
func (s *editorScenarioState) thenResponseEqualsFile() error {
	return s.thenResponseEquals(&godog.DocString{Content: string(s.contents)})
}

// thenResponseEquals asserts the response is JSON-equivalent to the doc string.
func (s *editorScenarioState) thenResponseEquals(doc *godog.DocString) error {
	if s.response == nil {
		return fmt.Errorf("response not recorded")
	}
	var want, got any
	if err := json.Unmarshal([]byte(doc.Content), &want); err != nil {
		return fmt.Errorf("decode expected json: %w", err)
	}
	if err := json.Unmarshal(s.response.Body.Bytes(), &got); err != nil {
		return fmt.Errorf("decode response json: %w", err)
	}
	if !reflect.DeepEqual(want, got) {
		return fmt.Errorf("response JSON differs: %s", s.response.Body.String())
	}
	return nil
}
