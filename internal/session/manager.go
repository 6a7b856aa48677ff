package session

import (
	"sync"

	"github.com/julianstephens/plantcheck/internal/config"
	"github.com/julianstephens/plantcheck/internal/errors"
)

// Manager hosts many sessions. Sessions share nothing but configuration.
type Manager struct {
	mu       sync.RWMutex
	cfg      *config.Config
	opts     []Option
	sessions map[string]*Session
}

func NewManager(cfg *config.Config, opts ...Option) *Manager {
	return &Manager{
		cfg:      cfg,
		opts:     opts,
		sessions: make(map[string]*Session),
	}
}

func (m *Manager) Create() (*Session, error) {
	s, err := New(m.cfg, m.opts...)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s, nil
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, errors.NotFound("session", id)
	}
	return s, nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Close ends one session.
func (m *Manager) Close(id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return errors.NotFound("session", id)
	}
	return s.Close()
}

// CloseAll ends every session and returns the first error.
func (m *Manager) CloseAll() error {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	var first error
	for _, s := range sessions {
		if err := s.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
