// Package records keeps the best score per character class on disk.
package records

import (
	"encoding/json"
	"fmt"
	"log"

	cfg "github.com/automoto/throne-wars/config"
	"github.com/automoto/throne-wars/session"
	"github.com/quasilyte/gdata"
)

// Record is the best run stored for one class
type Record struct {
	Score        int `json:"score"`
	LevelReached int `json:"levelReached"`
}

// ItemStore is the slice of gdata.Manager the records need
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Store reads and writes records. A nil *Store ignores every call.
type Store struct {
	items ItemStore
}

// Open opens the per-user data directory for appName.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open save data: %w", err)
	}
	return NewStore(m), nil
}

// NewStore wraps any item store
func NewStore(items ItemStore) *Store {
	return &Store{items: items}
}

func itemKey(class cfg.ClassID) string {
	return "best_" + class.String()
}

// Best returns the stored record for class, or the zero record when none is saved.
func (s *Store) Best(class cfg.ClassID) Record {
	if s == nil {
		return Record{}
	}
	data, err := s.items.LoadItem(itemKey(class))
	if err != nil {
		log.Printf("Warning: Could not load record for %s: %v", class, err)
		return Record{}
	}
	if len(data) == 0 {
		return Record{}
	}

	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		log.Printf("Warning: Could not parse record for %s: %v", class, err)
		return Record{}
	}
	return r
}

// Submit stores summary when it beats the current best. It returns the best record after the
// call and whether summary set it.
func (s *Store) Submit(class cfg.ClassID, summary session.Summary) (Record, bool) {
	best := s.Best(class)
	if s == nil || summary.Score <= best.Score {
		return best, false
	}

	r := Record{Score: summary.Score, LevelReached: summary.LevelReached}
	data, err := json.Marshal(r)
	if err != nil {
		log.Printf("Warning: Could not serialize record: %v", err)
		return best, false
	}
	if err := s.items.SaveItem(itemKey(class), data); err != nil {
		log.Printf("Warning: Could not save record for %s: %v", class, err)
		return best, false
	}
	return r, true
}
