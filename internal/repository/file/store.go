// Package file implements the repository interfaces on a flat file layout:
// one JSON document per user at <root>/users/<username>.json, with the
// user's programs embedded in the document, and the exercise catalog as a
// single array at <root>/exercises.json.
package file

import (
	"bpump/fitness-backend/internal/repository"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Store owns the data directory and the single lock serialising access to
// it. All repositories created from one Store share that lock, so a
// multi-write transaction observes no interleaved writers.
type Store struct {
	root string
	mu   sync.RWMutex
}

// NewStore prepares the data directory and returns a Store rooted there.
func NewStore(root string) (*Store, error) {
	if err := os.MkdirAll(filepath.Join(root, "users"), 0o755); err != nil {
		return nil, err
	}
	return &Store{root: root}, nil
}

func (s *Store) userPath(username string) string {
	return filepath.Join(s.root, "users", username+".json")
}

func (s *Store) exercisesPath() string {
	return filepath.Join(s.root, "exercises.json")
}

// validKey rejects names that would escape the data directory when used as
// a file name. The service layer validates usernames before they get here;
// this is the last line.
func validKey(name string) bool {
	return name != "" && name != "." && name != ".." &&
		!strings.ContainsAny(name, "/\\")
}

// --- Transactions ---

type txKey struct{}

// txJournal records the pre-image of every file touched inside a
// transaction. A nil entry means the file did not exist before.
type txJournal struct {
	pre map[string][]byte
}

func (j *txJournal) record(path string) {
	if _, seen := j.pre[path]; seen {
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		j.pre[path] = nil
		return
	}
	j.pre[path] = data
}

func (j *txJournal) rollback() {
	for path, data := range j.pre {
		if data == nil {
			_ = os.Remove(path)
			continue
		}
		_ = writeAtomic(path, data)
	}
}

func journalFrom(ctx context.Context) *txJournal {
	j, _ := ctx.Value(txKey{}).(*txJournal)
	return j
}

// WithinTx implements repository.TxRunner. It holds the store lock for the
// whole unit and journals the pre-image of every file the unit writes or
// removes; when fn errors, the journal is replayed so the directory looks
// exactly as it did before the unit started.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	journal := &txJournal{pre: make(map[string][]byte)}
	if err := fn(context.WithValue(ctx, txKey{}, journal)); err != nil {
		journal.rollback()
		return err
	}
	return nil
}

// lock acquires the store lock unless the context carries a transaction,
// in which case WithinTx already holds it.
func (s *Store) lock(ctx context.Context) func() {
	if journalFrom(ctx) != nil {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *Store) rlock(ctx context.Context) func() {
	if journalFrom(ctx) != nil {
		return func() {}
	}
	s.mu.RLock()
	return s.mu.RUnlock
}

// --- File primitives (callers must hold the lock) ---

func (s *Store) readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

func (s *Store) writeFile(ctx context.Context, path string, data []byte) error {
	if j := journalFrom(ctx); j != nil {
		j.record(path)
	}
	return writeAtomic(path, data)
}

func (s *Store) removeFile(ctx context.Context, path string) error {
	if j := journalFrom(ctx); j != nil {
		j.record(path)
	}
	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return repository.ErrNotFound
		}
		return err
	}
	return nil
}

// writeAtomic writes via a temp file in the same directory plus rename, so
// a crashed write never leaves a truncated document behind.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}
