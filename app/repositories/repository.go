package repositories

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dgraph-io/badger/v4"
)

// BadgerStore owns the Badger database backing the default stores.
type BadgerStore struct {
	db     *badger.DB
	dbPath string
}

// OpenBadger opens (creating if needed) the Badger database at path. An
// empty path opens an in-memory database.
func OpenBadger(path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path).
		WithLogger(nil).
		WithNumVersionsToKeep(1)
	if path == "" {
		opts = opts.WithInMemory(true)
	} else if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %q: %w", path, err)
	}
	return &BadgerStore{db: db, dbPath: path}, nil
}

// DB exposes the underlying handle.
func (s *BadgerStore) DB() *badger.DB {
	return s.db
}

// Stores returns the post, saved post and user stores sharing this database.
func (s *BadgerStore) Stores() Stores {
	return Stores{
		Posts:      NewBadgerPostRepository(s.db),
		SavedPosts: NewBadgerSavedPostRepository(s.db),
		Users:      NewBadgerUserRepository(s.db),
		Health:     s,
	}
}

// Ping fails once the database has been closed.
func (s *BadgerStore) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.db.IsClosed() {
		return fmt.Errorf("badger database is closed")
	}
	return s.db.View(func(txn *badger.Txn) error { return nil })
}

// Clear drops every key.
func (s *BadgerStore) Clear() error {
	return s.db.DropAll()
}

// Backup writes a full backup to w.
func (s *BadgerStore) Backup(w io.Writer) error {
	if _, err := s.db.Backup(w, 0); err != nil {
		return fmt.Errorf("backup: %w", err)
	}
	return nil
}

// Restore loads a backup previously written by Backup.
func (s *BadgerStore) Restore(r io.Reader) error {
	if err := s.db.Load(r, 256); err != nil {
		return fmt.Errorf("restore: %w", err)
	}
	return nil
}

func (s *BadgerStore) Close() error {
	return s.db.Close()
}
