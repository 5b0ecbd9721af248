package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"qedit/internal/bank"
)

var (
	// ErrUnreadable covers every read failure: missing file, permissions, malformed content.
	ErrUnreadable = errors.New("file unreadable")
	// ErrUnwritable covers every write failure.
	ErrUnwritable = errors.New("file unwritable")
)

// Store reads and overwrites one question bank file.
// Nothing is cached: every Read goes to disk and every Write replaces the whole file.
type Store struct {
	path    string
	format  format
	onWrite func(payload []byte)
}

// New creates a store for the bank file at path.
func New(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("bank path is required")
	}
	return &Store{path: path, format: formatForPath(path)}, nil
}

// Path returns the configured bank file path.
func (s *Store) Path() string {
	return s.path
}

// Read loads and parses the bank file.
func (s *Store) Read() (bank.Bank, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return bank.Bank{}, fmt.Errorf("%w: %s: %w", ErrUnreadable, s.path, err)
	}
	b, err := s.format.decode(data)
	if err != nil {
		return bank.Bank{}, fmt.Errorf("%w: %s: %w", ErrUnreadable, s.path, err)
	}
	return b, nil
}

// OnWrite registers fn to receive every payload just before it replaces the file.
func (s *Store) OnWrite(fn func(payload []byte)) {
	s.onWrite = fn
}

// Write replaces the bank file with a pretty-printed serialization of b.
func (s *Store) Write(b bank.Bank) error {
	payload, err := s.format.encode(b)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrUnwritable, s.path, err)
	}
	if s.onWrite != nil {
		s.onWrite(payload)
	}
	if err := writeFileAtomic(s.path, payload); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrUnwritable, s.path, err)
	}
	return nil
}

// writeFileAtomic writes through a uniquely named temp file in the same directory and
// renames it into place. Overlapping writes never share a temp file, so the last
// rename wins with a complete document.
func writeFileAtomic(path string, payload []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("%s is a directory", path)
		}
		mode = info.Mode().Perm()
	}
	file, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := file.Name()
	cleanup := func(err error) error {
		_ = file.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := file.Chmod(mode); err != nil {
		return cleanup(err)
	}
	if _, err := file.Write(payload); err != nil {
		return cleanup(err)
	}
	if err := file.Sync(); err != nil {
		return cleanup(err)
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}
