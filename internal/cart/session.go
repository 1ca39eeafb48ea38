package cart

import (
	"sync"

	"github.com/google/uuid"
)

// Manager hands out one cart per session id, restoring persisted
// snapshots when a session reappears.
type Manager struct {
	deps Deps

	mu    sync.Mutex
	carts map[string]*Cart
}

func NewManager(deps Deps) *Manager {
	return &Manager{deps: deps, carts: make(map[string]*Cart)}
}

// NewSession creates an empty cart under a fresh session id.
func (m *Manager) NewSession() *Cart {
	id := uuid.NewString()
	c := New(id, m.deps)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.carts[id] = c
	return c
}

// Get returns the session's cart, materializing it from its snapshot
// if the process has not seen the session yet.
func (m *Manager) Get(sessionID string) *Cart {
	m.mu.Lock()
	if c, ok := m.carts[sessionID]; ok {
		m.mu.Unlock()
		return c
	}
	m.mu.Unlock()

	c := New(sessionID, m.deps)
	c.restore()

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.carts[sessionID]; ok {
		return existing
	}
	m.carts[sessionID] = c
	return c
}
