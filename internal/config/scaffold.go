package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const scaffoldHeader = `# qedit configuration.
# Every value can be overridden with the QEDIT_* environment variables;
# command line flags override both.
`

// Default returns the configuration written by Scaffold.
func Default() Config {
	return Config{
		Env: "local",
		Server: ServerConfig{
			Addr: "127.0.0.1:3000",
		},
		Bank: BankConfig{
			Path: "questions.json",
		},
		Editor: EditorConfig{
			Title: "Question Bank Editor",
		},
	}
}

// Scaffold writes a default config file to path. An existing file is never overwritten.
func Scaffold(path string) error {
	if path == "" {
		return fmt.Errorf("config path is required")
	}
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", path)
		}
		return fmt.Errorf("config file already exists at %q", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(scaffoldHeader)
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(Default()); err != nil {
		return fmt.Errorf("render config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("render config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
