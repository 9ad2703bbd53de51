package session

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"catalog-browser-api/internal/catalog"
)

// Manager hosts the live browse sessions for the HTTP layer. Each
// session has exactly one controller; the manager only guards the
// registry itself.
type Manager struct {
	mu       sync.RWMutex
	store    *catalog.Store
	sessions map[string]*Controller
	seq      atomic.Uint64
}

func NewManager(store *catalog.Store) *Manager {
	return &Manager{
		store:    store,
		sessions: make(map[string]*Controller),
	}
}

// Create opens a new session seeded from rawQuery (may be empty).
func (m *Manager) Create(rawQuery string) *Controller {
	id := fmt.Sprintf("s-%d-%d", time.Now().UnixNano(), m.seq.Add(1))
	c := NewController(id, m.store, rawQuery)

	m.mu.Lock()
	m.sessions[id] = c
	m.mu.Unlock()

	return c
}

func (m *Manager) Get(id string) (*Controller, bool) {
	m.mu.RLock()
	c, ok := m.sessions[id]
	m.mu.RUnlock()
	return c, ok
}

func (m *Manager) Delete(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return false
	}
	delete(m.sessions, id)
	return true
}

func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
