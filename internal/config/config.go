package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the qedit configuration loaded from an optional YAML file and the environment.
type Config struct {
	Env    string       `yaml:"env" env:"QEDIT_ENV" env-default:"local" env-description:"log format: local, dev or prod"`
	Server ServerConfig `yaml:"server"`
	Bank   BankConfig   `yaml:"bank"`
	Editor EditorConfig `yaml:"editor"`
}

// ServerConfig configures the HTTP listener and static assets.
type ServerConfig struct {
	Addr          string `yaml:"addr" env:"QEDIT_ADDR" env-default:"127.0.0.1:3000" env-description:"listen address"`
	AssetsBaseURL string `yaml:"assets_base_url" env:"QEDIT_ASSETS_BASE_URL" env-description:"external base URL for editor assets"`
	PublicDir     string `yaml:"public_dir" env:"QEDIT_PUBLIC_DIR" env-description:"serve a generated editor from this directory"`
	Watch         bool   `yaml:"watch" env:"QEDIT_WATCH" env-description:"log changes of the bank file made outside the editor"`
}

// BankConfig points at the question bank file.
type BankConfig struct {
	Path string `yaml:"path" env:"QEDIT_BANK" env-description:"question bank file (.json, .yml or .yaml)"`
}

// EditorConfig configures the generated page.
type EditorConfig struct {
	Title string `yaml:"title" env:"QEDIT_TITLE" env-default:"Question Bank Editor" env-description:"editor page title"`
}

// Load reads configPath (when set) and applies environment overrides and defaults.
// A relative bank path in a config file is resolved against the file's directory;
// a missing bank path falls back to DefaultBankPath.
func Load(configPath string) (Config, error) {
	var cfg Config
	configPath = strings.TrimSpace(configPath)
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return Config{}, fmt.Errorf("read config env: %w", err)
		}
	} else {
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if cfg.Bank.Path != "" && !filepath.IsAbs(cfg.Bank.Path) {
			cfg.Bank.Path = filepath.Join(filepath.Dir(configPath), cfg.Bank.Path)
		}
	}
	if cfg.Bank.Path == "" {
		path, err := DefaultBankPath()
		if err != nil {
			return Config{}, err
		}
		cfg.Bank.Path = path
	}
	return cfg, nil
}

// Usage describes the environment variables Load understands.
func Usage() (string, error) {
	var cfg Config
	return cleanenv.GetDescription(&cfg, nil)
}
