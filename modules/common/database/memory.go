package database

import (
	"context"
	"sort"
	"sync"

	"creatiq-server/modules/common/model"
)

// MemoryStore - in-process HistoryStore. Used by tests and as the degraded
// mode when Supabase is not configured. Append is atomic under the mutex, so
// queries never observe a partially written entry.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []model.HistoryEntry
}

// NewMemoryStore - empty in-memory history store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Append - record an entry. Insertion order is retained so that entries with
// equal timestamps still come back in a deterministic newest-first order.
func (m *MemoryStore) Append(ctx context.Context, entry model.HistoryEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entry)
	return nil
}

// QueryRecent - newest-first entries for a feature, at most limit (0 = all)
func (m *MemoryStore) QueryRecent(ctx context.Context, feature string, limit int) ([]model.HistoryEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	matched := m.newestFirst(func(e model.HistoryEntry) bool {
		return e.Feature == feature
	})
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

// QueryExact - newest-first entries whose primary text matches exactly
func (m *MemoryStore) QueryExact(ctx context.Context, feature string, text string) ([]model.HistoryEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.newestFirst(func(e model.HistoryEntry) bool {
		return e.Feature == feature && e.PrimaryText == text
	}), nil
}

// Delete - remove one entry by id
func (m *MemoryStore) Delete(ctx context.Context, feature string, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, e := range m.entries {
		if e.Feature == feature && e.ID == id {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return nil
		}
	}
	return nil
}

// newestFirst - filtered copy sorted newest-first; timestamp ties keep
// reverse insertion order (the later insert is the newer entry). Caller must
// hold at least a read lock.
func (m *MemoryStore) newestFirst(match func(model.HistoryEntry) bool) []model.HistoryEntry {
	out := make([]model.HistoryEntry, 0)
	for i := len(m.entries) - 1; i >= 0; i-- {
		if match(m.entries[i]) {
			out = append(out, m.entries[i])
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].CreatedAt.After(out[b].CreatedAt)
	})
	return out
}
