package server

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"qedit/internal/editor"
	"qedit/internal/logging"
	"qedit/internal/store"
)

// QuestionsPath is the endpoint shared by the read and save operations.
const QuestionsPath = "/questions"

// NewHandler builds the HTTP handler for the editor page and the questions API.
func NewHandler(cfg Config) (http.Handler, error) {
	return newHandler(cfg, nil)
}

// newHandler is NewHandler with a hook that sees every payload a save writes.
func newHandler(cfg Config, onWrite func([]byte)) (http.Handler, error) {
	if cfg.BankPath == "" {
		return nil, errors.New("server: bank path is required")
	}
	bankStore, err := store.New(cfg.BankPath)
	if err != nil {
		return nil, err
	}
	if onWrite != nil {
		bankStore.OnWrite(onWrite)
	}
	log := cfg.Logger
	if log == nil {
		log = logging.Discard()
	}

	h := &handler{store: bankStore, log: log}

	router := mux.NewRouter()
	router.Use(requestLogger(log))
	router.HandleFunc("/healthz", serveHealth).Methods(http.MethodGet)
	router.HandleFunc(QuestionsPath, h.getQuestions).Methods(http.MethodGet)
	router.HandleFunc(QuestionsPath, h.saveQuestions).Methods(http.MethodPost)
	router.HandleFunc(QuestionsPath+"/{category}", h.getCategory).Methods(http.MethodGet)

	if strings.TrimSpace(cfg.PublicDir) != "" {
		router.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.PublicDir))).Methods(http.MethodGet, http.MethodHead)
		return router, nil
	}

	page, err := renderPage(cfg)
	if err != nil {
		return nil, err
	}
	assets, err := editor.AssetsFS()
	if err != nil {
		return nil, err
	}
	router.PathPrefix("/assets/").Handler(http.StripPrefix("/assets/", http.FileServer(http.FS(assets)))).Methods(http.MethodGet, http.MethodHead)
	router.Handle("/", servePage(page)).Methods(http.MethodGet, http.MethodHead)
	router.Handle("/index.html", servePage(page)).Methods(http.MethodGet, http.MethodHead)
	return router, nil
}

type handler struct {
	store *store.Store
	log   *slog.Logger
}

// renderPage renders the editor shell once; it does not change while the server runs.
func renderPage(cfg Config) ([]byte, error) {
	data, err := editor.NewPageData(editor.Options{
		Title:         cfg.Title,
		Endpoint:      QuestionsPath,
		AssetsBaseURL: cfg.AssetsBaseURL,
	})
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := editor.Render(context.Background(), &buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// servePage writes the pre-rendered editor page.
func servePage(page []byte) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(page)
	})
}

func serveHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok")
}
