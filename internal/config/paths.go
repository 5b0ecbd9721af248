package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config path constants used by the CLI and loaders.
const (
	ConfigFileName = "qedit.yml"
	DefaultBankRel = "../../player-content/questions-test.json"
)

// executable is a test seam for locating the running binary.
var executable = os.Executable

// DefaultBankPath resolves DefaultBankRel against the directory of the running binary.
func DefaultBankPath() (string, error) {
	exe, err := executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Clean(filepath.Join(filepath.Dir(exe), filepath.FromSlash(DefaultBankRel))), nil
}

// ResolveConfigPath returns the absolute form of explicit, or qedit.yml in dir
// when it exists. An empty result means no config file is used.
func ResolveConfigPath(explicit, dir string) (string, error) {
	if strings.TrimSpace(explicit) != "" {
		abs, err := filepath.Abs(explicit)
		if err != nil {
			return "", fmt.Errorf("resolve config path: %w", err)
		}
		return abs, nil
	}
	if strings.TrimSpace(dir) == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		dir = wd
	}
	candidate := filepath.Join(dir, ConfigFileName)
	info, err := os.Stat(candidate)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("stat config path %q: %w", candidate, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("config path %q is a directory", candidate)
	}
	return candidate, nil
}
