package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"qedit/internal/logging"
	"qedit/internal/server"
)

// serveEditor is a test seam for running the editor server.
var serveEditor = server.Serve

// defineServe overlays serve flags on the loaded config and runs the editor
// until SIGINT or SIGTERM.
func defineServe(flags *flag.FlagSet) action {
	src := addBankSource(flags)
	addr := flags.String("addr", "", "Address to listen on (default 127.0.0.1:3000)")
	title := flags.String("title", "", "Editor page title")
	assetsBaseURL := flags.String("assets-base-url", "", "Base URL for editor assets")
	publicDir := flags.String("public-dir", "", "Serve a generated editor from this directory")
	watchBank := flags.Bool("watch", false, "Log changes of the bank file made outside the editor")
	return func(stdout, stderr io.Writer) int {
		cfg, err := src.config()
		if err != nil {
			fmt.Fprintf(stderr, "Config error: %v\n", err)
			return ExitError
		}
		if *addr != "" {
			cfg.Server.Addr = *addr
		}
		if *title != "" {
			cfg.Editor.Title = *title
		}
		if *assetsBaseURL != "" {
			cfg.Server.AssetsBaseURL = *assetsBaseURL
		}
		if *publicDir != "" {
			cfg.Server.PublicDir = *publicDir
		}
		if *watchBank {
			cfg.Server.Watch = true
		}
		if cfg.Server.PublicDir != "" {
			if info, err := os.Stat(cfg.Server.PublicDir); err != nil || !info.IsDir() {
				fmt.Fprintf(stderr, "Public directory not found: %s\n", cfg.Server.PublicDir)
				return ExitError
			}
		}

		serverCfg := server.Config{
			Addr:          cfg.Server.Addr,
			BankPath:      cfg.Bank.Path,
			Title:         cfg.Editor.Title,
			AssetsBaseURL: cfg.Server.AssetsBaseURL,
			PublicDir:     cfg.Server.PublicDir,
			Watch:         cfg.Server.Watch,
			Logger:        logging.New(cfg.Env, stderr),
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Fprintf(stdout, "Serving editor for %s at http://%s\n", serverCfg.BankPath, serverCfg.Addr)
		if err := serveEditor(ctx, serverCfg); err != nil {
			fmt.Fprintf(stderr, "Server error: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
