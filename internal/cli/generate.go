package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"qedit/internal/editor"
)

// defineGenerate writes a static editor site that can be served with serve --public-dir.
func defineGenerate(flags *flag.FlagSet) action {
	out := flags.String("out", "public", "Output directory")
	title := flags.String("title", editor.DefaultTitle, "Editor page title")
	return func(stdout, stderr io.Writer) int {
		written, err := editor.Generate(context.Background(), *out, editor.Options{Title: *title})
		if err != nil {
			fmt.Fprintf(stderr, "Generate failed: %v\n", err)
			return ExitError
		}
		for _, path := range written {
			fmt.Fprintf(stdout, "Wrote %s\n", path)
		}
		return ExitOK
	}
}
