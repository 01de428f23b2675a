package store

import (
	"sync"
	"time"

	"github.com/htoohtoo/storefront/pkg/metrics"
	"github.com/htoohtoo/storefront/pkg/snapshot"
)

// Container bundles the per-session stores.
type Container struct {
	Cart *CartStore
	Auth *AuthStore

	mu       sync.Mutex
	lastSeen time.Time
}

func (c *Container) touch() {
	c.mu.Lock()
	c.lastSeen = time.Now()
	c.mu.Unlock()
}

func (c *Container) LastSeen() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastSeen
}

// Manager hands out store containers keyed by session id, building one on
// first sight of a session and restoring any persisted identity into it.
type Manager struct {
	mu         sync.Mutex
	containers map[string]*Container
	accounts   *Accounts
	snapshots  snapshot.Store
}

func NewManager(accounts *Accounts, snapshots snapshot.Store) *Manager {
	return &Manager{
		containers: map[string]*Container{},
		accounts:   accounts,
		snapshots:  snapshots,
	}
}

// Get returns the container for sessionID, creating it if needed. Every call
// refreshes the container's last-seen time.
func (m *Manager) Get(sessionID string) *Container {
	m.mu.Lock()
	c, ok := m.containers[sessionID]
	if !ok {
		c = &Container{
			Cart: NewCartStore(),
			Auth: NewAuthStore(sessionID, m.accounts, m.snapshots),
		}
		m.containers[sessionID] = c
		metrics.ActiveSessions.Set(float64(len(m.containers)))
	}
	m.mu.Unlock()

	c.touch()
	return c
}

// Accounts exposes the shared registry for admin views.
func (m *Manager) Accounts() *Accounts { return m.accounts }

// Count returns the number of live containers.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.containers)
}

// EvictStale drops containers idle longer than ttl and returns how many
// went. Carts are session-scoped, so eviction discards them; the identity
// snapshot stays in its store and is restored if the session returns.
func (m *Manager) EvictStale(ttl time.Duration) int {
	cutoff := time.Now().Add(-ttl)

	m.mu.Lock()
	defer m.mu.Unlock()

	evicted := 0
	for id, c := range m.containers {
		if c.LastSeen().Before(cutoff) {
			delete(m.containers, id)
			evicted++
		}
	}
	metrics.ActiveSessions.Set(float64(len(m.containers)))
	return evicted
}
