package session

import "sync"

// Manager owns one Queue per user, created lazily on first use.
// Concurrent commands for different users proceed independently (spec
// §5); Manager only serializes the map access itself, never a user's
// command evaluation.
type Manager struct {
	mu     sync.Mutex
	queues map[string]*Queue
}

// NewManager returns an empty Manager.
func NewManager() *Manager {
	return &Manager{queues: make(map[string]*Queue)}
}

// Queue returns the named user's Queue, creating it if this is the
// first time that user has been seen.
func (m *Manager) Queue(userID string) *Queue {
	m.mu.Lock()
	defer m.mu.Unlock()

	q, ok := m.queues[userID]
	if !ok {
		q = NewQueue()
		m.queues[userID] = q
	}
	return q
}
