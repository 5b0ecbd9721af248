package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"qedit/internal/logging"
	"qedit/internal/watch"
)

// Config captures the settings for serving the question bank editor.
type Config struct {
	Addr          string
	BankPath      string
	Title         string
	AssetsBaseURL string
	PublicDir     string
	Watch         bool
	Logger        *slog.Logger
}

// Serve starts an HTTP server that hosts the editor page and the questions API.
// It returns when ctx is cancelled or the listener fails.
func Serve(ctx context.Context, cfg Config) error {
	const op = "server.Serve"

	if ctx == nil {
		return errors.New("server: context is nil")
	}
	if cfg.Addr == "" {
		return errors.New("server: addr is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Discard()
	}
	log := cfg.Logger.With(slog.String("op", op))

	listener, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	var onWrite func([]byte)
	if cfg.Watch {
		w, err := newBankWatcher(cfg.BankPath, cfg.Logger)
		if err != nil {
			_ = listener.Close()
			return err
		}
		onWrite = w.Expect
		go func() {
			_ = w.Run(ctx)
		}()
	}
	handler, err := newHandler(cfg, onWrite)
	if err != nil {
		_ = listener.Close()
		return err
	}

	server := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(listener)
	}()
	log.Info("editor is running",
		slog.String("addr", listener.Addr().String()),
		slog.String("bank", cfg.BankPath),
	)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Info("stopping editor")
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancelShutdown()
		_ = server.Shutdown(shutdownCtx)
		err := <-errCh
		if errors.Is(err, http.ErrServerClosed) || err == nil {
			return nil
		}
		return err
	}
}

// newBankWatcher reports edits of the bank file. Saves made through the editor
// are announced with Expect and logged at debug level only.
func newBankWatcher(path string, log *slog.Logger) (*watch.Watcher, error) {
	return watch.New(path, log, func(change watch.Change) {
		switch {
		case change.Removed:
			log.Warn("bank file removed", slog.String("path", change.Path))
		case change.Own:
			log.Debug("bank file saved by editor",
				slog.String("path", change.Path),
				slog.String("sha256", change.Hash),
			)
		default:
			log.Info("bank file changed on disk",
				slog.String("path", change.Path),
				slog.String("sha256", change.Hash),
			)
		}
	})
}
