package ratetable

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/goccy/go-json"
)

// Load reads a rating table from a JSON file. Callers are expected to
// fail open: on error, a nil *Table prices everything with the
// hardcoded fallbacks, so a missing or corrupt table degrades to
// default pricing instead of refusing to quote.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rating table %s: %w", path, err)
	}
	var t Table
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse rating table %s: %w", path, err)
	}
	return &t, nil
}

// Store holds the active rating table for long-lived processes.
// Reloads swap the whole table reference atomically, so a concurrent
// calculation never observes a half-updated table.
type Store struct {
	table atomic.Pointer[Table]
}

// NewStore creates a store holding t (which may be nil).
func NewStore(t *Table) *Store {
	s := &Store{}
	s.table.Store(t)
	return s
}

// Current returns the active table; nil means default pricing.
func (s *Store) Current() *Table {
	return s.table.Load()
}

// Swap installs t as the active table.
func (s *Store) Swap(t *Table) {
	s.table.Store(t)
}

// ReloadFromFile loads path and swaps it in. On failure the previous
// table stays active and the error is returned for logging.
func (s *Store) ReloadFromFile(path string) error {
	t, err := Load(path)
	if err != nil {
		return err
	}
	s.table.Store(t)
	return nil
}
