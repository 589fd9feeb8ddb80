package store

import "sync"

// Memory is an in-process Store, used by tests and one-shot commands.
type Memory struct {
	mu    sync.Mutex
	snap  Snapshot
	saved bool
	Saves int
	Err   error
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Save records snap unless Err is set.
func (m *Memory) Save(snap Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}
	m.snap = snap
	m.saved = true
	m.Saves++
	return nil
}

// Load returns the last saved snapshot.
func (m *Memory) Load() (Snapshot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.snap, m.saved
}
