package watch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"qedit/internal/logging"
)

// Change describes a content change of the watched file.
// Own is set when the new content was announced through Expect.
type Change struct {
	Path    string
	Hash    string
	Removed bool
	Own     bool
	At      time.Time
}

// Watcher reports content changes of a single file.
// The parent directory is watched so replace-by-rename saves are seen too.
type Watcher struct {
	path     string
	log      *slog.Logger
	onChange func(Change)
	fs       *fsnotify.Watcher
	lastHash string

	mu       sync.Mutex
	expected map[string]int
}

// New creates a watcher for path. onChange runs on the watcher goroutine.
func New(path string, log *slog.Logger, onChange func(Change)) (*Watcher, error) {
	const op = "watch.New"

	if path == "" {
		return nil, errors.New("watch: path is required")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	hash, _ := fileHash(abs)
	if onChange == nil {
		onChange = func(Change) {}
	}
	if log == nil {
		log = logging.Discard()
	}
	return &Watcher{
		path:     abs,
		log:      log.With(slog.String("op", op), slog.String("path", abs)),
		onChange: onChange,
		fs:       fsw,
		lastHash: hash,
		expected: make(map[string]int),
	}, nil
}

// Expect announces content this process is about to write, so the resulting
// change is reported as Own. Safe for concurrent use.
func (w *Watcher) Expect(payload []byte) {
	sum := sha256.Sum256(payload)
	w.mu.Lock()
	w.expected[hex.EncodeToString(sum[:])]++
	w.mu.Unlock()
}

func (w *Watcher) consumeExpected(hash string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.expected[hash] == 0 {
		return false
	}
	w.expected[hash]--
	if w.expected[hash] == 0 {
		delete(w.expected, hash)
	}
	return true
}

// Run processes events until ctx is done. It closes the underlying watcher on return.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fs.Close()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			w.handle(event)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", logging.Err(err))
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	hash, err := fileHash(w.path)
	if err != nil {
		if os.IsNotExist(err) && w.lastHash != "" {
			w.lastHash = ""
			w.onChange(Change{Path: w.path, Removed: true, At: time.Now()})
			return
		}
		w.log.Debug("hash failed", slog.String("event", event.Op.String()), logging.Err(err))
		return
	}
	if hash == w.lastHash {
		return
	}
	w.lastHash = hash
	w.onChange(Change{Path: w.path, Hash: hash, Own: w.consumeExpected(hash), At: time.Now()})
}

// fileHash returns the SHA-256 of a file's contents.
func fileHash(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	hash := sha256.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", err
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}
