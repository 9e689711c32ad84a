package history

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/Rorical/EmotionAnalyzer/internal/models"
)

const (
	// SlotKey is the slot holding the serialized recent analyses
	SlotKey = "recentAnalyses"
	// MaxEntries bounds the history length
	MaxEntries = 5
)

// Store is the bounded most-recent-first list of past analyses
type Store struct {
	mu      sync.Mutex
	slot    Slot
	once    sync.Once
	entries []models.HistoryEntry
}

func NewStore(slot Slot) *Store {
	return &Store{slot: slot}
}

// Load reads the slot the first time it is called; later calls return the
// in-memory list. Absent or unreadable payloads yield an empty history.
func (s *Store) Load() []models.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadLocked()
	return s.copyLocked()
}

func (s *Store) loadLocked() {
	s.once.Do(func() {
		s.entries = readEntries(s.slot)
	})
}

func readEntries(slot Slot) []models.HistoryEntry {
	data, ok, err := slot.Get(SlotKey)
	if err != nil {
		log.Printf("[WARN] can't read history, starting empty: %v", err)
		return nil
	}
	if !ok || len(data) == 0 {
		return nil
	}

	var entries []models.HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Printf("[WARN] malformed history payload, starting empty: %v", err)
		return nil
	}
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}
	log.Printf("[DEBUG] loaded %d history entries", len(entries))
	return entries
}

// Append prepends entry, keeps at most MaxEntries, and rewrites the slot.
// The in-memory list is updated even when the write fails; the write error
// is returned so the caller can report it.
func (s *Store) Append(entry models.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadLocked()

	keep := s.entries
	if len(keep) > MaxEntries-1 {
		keep = keep[:MaxEntries-1]
	}
	updated := make([]models.HistoryEntry, 0, len(keep)+1)
	updated = append(updated, entry)
	updated = append(updated, keep...)
	s.entries = updated

	data, err := json.Marshal(updated)
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	if err := s.slot.Set(SlotKey, data); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}

// Entries returns a copy of the current history, newest first
func (s *Store) Entries() []models.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadLocked()
	return s.copyLocked()
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadLocked()
	return len(s.entries)
}

func (s *Store) copyLocked() []models.HistoryEntry {
	out := make([]models.HistoryEntry, len(s.entries))
	copy(out, s.entries)
	return out
}
