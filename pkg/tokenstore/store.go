// Package tokenstore persists the bearer credential the session manager
// holds between runs. Absence is modelled as an empty string rather than an
// error, mirroring the get/set/delete contract of a browser's local storage.
package tokenstore

import "sync"

// Store durably holds a single token value. Implementations must be safe
// for concurrent use.
type Store interface {
	// Get returns the stored token, or "" when no token is stored.
	Get() (string, error)

	// Set replaces the stored token.
	Set(token string) error

	// Delete removes the stored token. Deleting an absent token is a no-op.
	Delete() error
}

// Memory is an in-process Store for tests and ephemeral sessions.
type Memory struct {
	mu    sync.Mutex
	token string
}

func NewMemory() *Memory { return &Memory{} }

func (m *Memory) Get() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *Memory) Set(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *Memory) Delete() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}
