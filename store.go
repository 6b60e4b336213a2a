package pos

import (
	"fmt"
	"os"
	"path/filepath"
)

// Names of the three persisted records. Each one is an independent
// JSON document; there is no transactional guarantee across them.
const (
	RecordMenu         = "menu"
	RecordTransactions = "transactions"
	RecordCart         = "cart"
)

// Store persists named records as JSON documents in a folder, one
// file per record, in a way that is human-readable and git-friendly.
//
// Loads fail soft: callers treat a missing or unreadable record as
// absent and fall back to an empty default. Saves are best-effort: a
// write error means durability is lost for that write, and must never
// abort the user-visible action.
type Store struct {
	dir string
}

// NewStore returns a store over the given data folder. The folder is
// created lazily on the first write.
func NewStore(dir string) *Store { return &Store{dir: dir} }

// Dir returns the data folder backing this store.
func (s *Store) Dir() string { return s.dir }

func (s *Store) path(record string) string {
	return filepath.Join(s.dir, record+".json")
}

// Read returns the raw bytes of a record. The error is typically
// fs.ErrNotExist before the first write; callers degrade to a
// default rather than surfacing it.
func (s *Store) Read(record string) ([]byte, error) {
	data, err := os.ReadFile(s.path(record))
	if err != nil {
		return nil, fmt.Errorf("cannot read record %q: %w", record, err)
	}
	return data, nil
}

// Write replaces the record's document in full. Each mutating
// operation persists the whole record, never a partial update.
func (s *Store) Write(record string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("cannot create data folder %q: %w", s.dir, err)
	}
	if err := os.WriteFile(s.path(record), data, 0644); err != nil {
		return fmt.Errorf("cannot write record %q: %w", record, err)
	}
	return nil
}
