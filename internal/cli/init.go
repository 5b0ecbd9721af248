package cli

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"

	"qedit/internal/config"
)

func defineInit(flags *flag.FlagSet) action {
	out := flags.String("out", config.ConfigFileName, "Path of the config file to create")
	return func(stdout, stderr io.Writer) int {
		target, err := filepath.Abs(*out)
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		if err := config.Scaffold(target); err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Created %s\n", target)
		return ExitOK
	}
}
