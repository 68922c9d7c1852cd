// Package csvfile keeps the transaction set and the profile as flat files in a
// data directory: transactions.csv in the export schema and profile.json.
package csvfile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

const (
	TransactionsFile = "transactions.csv"
	ProfileFile      = "profile.json"
)

// Store guards every file in dir with one lock. Each write replaces its file
// atomically, so a crash leaves either the old or the new content.
type Store struct {
	dir string
	mu  sync.RWMutex
}

func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Transactions() *TransactionsTable {
	return &TransactionsTable{store: s}
}

func (s *Store) Profiles() *ProfileTable {
	return &ProfileTable{store: s}
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

// read opens name for fn. ok is false when the file does not exist yet.
func (s *Store) read(name string, fn func(io.Reader) error) (ok bool, err error) {
	f, err := os.Open(s.path(name))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	defer f.Close()
	return true, fn(f)
}

func (s *Store) write(name string, fn func(io.Writer) error) error {
	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := fn(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path(name))
}
