// Package cartstore persists full-state cart snapshots. Writes are
// best-effort: losing one costs at most the latest mutation, never a
// torn record, because every payload is a complete serialization.
package cartstore

import "sync"

// Store saves and restores a session's snapshot payload.
type Store interface {
	Save(sessionID string, payload []byte) error
	Load(sessionID string) ([]byte, bool, error)
	Delete(sessionID string) error
}

// MemoryStore keeps snapshots in process memory. Used in tests and as
// the fallback when no database is configured.
type MemoryStore struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snapshots: make(map[string][]byte)}
}

func (s *MemoryStore) Save(sessionID string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	buf := make([]byte, len(payload))
	copy(buf, payload)
	s.snapshots[sessionID] = buf
	return nil
}

func (s *MemoryStore) Load(sessionID string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	payload, ok := s.snapshots[sessionID]
	if !ok {
		return nil, false, nil
	}
	buf := make([]byte, len(payload))
	copy(buf, payload)
	return buf, true, nil
}

func (s *MemoryStore) Delete(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.snapshots, sessionID)
	return nil
}
