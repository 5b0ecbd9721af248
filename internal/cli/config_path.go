package cli

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"qedit/internal/bank"
	"qedit/internal/config"
	"qedit/internal/store"
)

// bankSource holds the -f and -config flags of commands that open the bank.
type bankSource struct {
	bankPath   string
	configPath string
}

func addBankSource(flags *flag.FlagSet) *bankSource {
	src := &bankSource{}
	flags.StringVar(&src.bankPath, "f", "", "Path to the question bank file")
	flags.StringVar(&src.configPath, "config", "", "Path to config file (default: ./qedit.yml when present)")
	return src
}

// config resolves the config file (explicit or qedit.yml in the working directory)
// and applies the bank path flag on top of it.
func (s *bankSource) config() (config.Config, error) {
	resolved, err := config.ResolveConfigPath(s.configPath, "")
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(resolved)
	if err != nil {
		return config.Config{}, err
	}
	if bankPath := strings.TrimSpace(s.bankPath); bankPath != "" {
		abs, err := filepath.Abs(bankPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Bank.Path = abs
	}
	return cfg, nil
}

// read loads the configured bank file and reports failures on stderr.
func (s *bankSource) read(stderr io.Writer) (bank.Bank, int) {
	cfg, err := s.config()
	if err != nil {
		fmt.Fprintf(stderr, "Config error: %v\n", err)
		return bank.Bank{}, ExitError
	}
	bankStore, err := store.New(cfg.Bank.Path)
	if err != nil {
		fmt.Fprintf(stderr, "Bank error: %v\n", err)
		return bank.Bank{}, ExitError
	}
	b, err := bankStore.Read()
	if err != nil {
		fmt.Fprintf(stderr, "Bank error: %v\n", err)
		return bank.Bank{}, ExitError
	}
	return b, ExitOK
}
