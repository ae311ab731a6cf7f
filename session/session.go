package session

import (
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Sudarshan-939/vimala-2/cart"
	"github.com/Sudarshan-939/vimala-2/checkout"
)

// TTL matches the guest token lifetime: carts older than this are
// swept. Nothing durable is lost, bookings live at the gateway.
const TTL = 24 * time.Hour

// Session holds one visitor's cart and checkout machine.
type Session struct {
	ID        string
	Cart      *cart.Store
	Checkout  *checkout.Machine
	ExpiresAt time.Time
}

// Manager keeps sessions in memory, keyed by the session id carried
// in the guest JWT. A restart drops all carts, which matches the
// page-session lifetime of the site.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	gw       checkout.Gateway
}

func NewManager(gw checkout.Gateway) *Manager {
	m := &Manager{
		sessions: make(map[string]*Session),
		gw:       gw,
	}
	go m.sweep()
	return m
}

// GetOrCreate returns the session for id, creating a fresh empty one
// if it does not exist or has expired. Tokens outlive restarts, so a
// valid token with no session simply gets a new empty cart.
func (m *Manager) GetOrCreate(id string) *Session {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if ok && time.Now().Before(s.ExpiresAt) {
		return s
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok && time.Now().Before(s.ExpiresAt) {
		return s
	}

	store := cart.NewStore()
	s = &Session{
		ID:        id,
		Cart:      store,
		Checkout:  checkout.NewMachine(store, m.gw),
		ExpiresAt: time.Now().Add(TTL),
	}
	m.sessions[id] = s
	return s
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *Manager) sweep() {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		var removed int

		m.mu.Lock()
		for id, s := range m.sessions {
			if now.After(s.ExpiresAt) {
				delete(m.sessions, id)
				removed++
			}
		}
		m.mu.Unlock()

		if removed > 0 {
			log.WithField("removed", removed).Info("Swept expired sessions")
		}
	}
}
