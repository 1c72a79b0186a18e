// Package store holds per-process session state. Sessions live for the
// lifetime of the process: no expiry, no eviction, no size bound.
package store

import (
	"sync"

	"chatrelay/internal/models"
)

// Store is the session mapping consumed by the chat service. Injecting it
// lets the in-memory map be swapped for a different backend without
// touching the service.
type Store interface {
	// Create materializes an empty session for the id if absent.
	Create(id string)
	// Get returns a snapshot of the session, or false if unknown.
	Get(id string) (models.Session, bool)
	// Update runs fn against the session (creating it first if absent)
	// while holding that session's lock. Mutations made by fn are kept
	// even when fn returns an error; fn decides what to touch.
	Update(id string, fn func(*models.Session) error) error
}

type entry struct {
	mu      sync.Mutex
	session models.Session
}

// Memory is the in-process Store implementation. The map lock guards
// membership only; each session carries its own lock so one chat's
// read-append sequence cannot interleave with another submit against the
// same id, while distinct sessions proceed concurrently.
type Memory struct {
	mu       sync.RWMutex
	sessions map[string]*entry
}

func NewMemory() *Memory {
	return &Memory{sessions: make(map[string]*entry)}
}

func (m *Memory) getOrCreate(id string) *entry {
	m.mu.RLock()
	e, ok := m.sessions[id]
	m.mu.RUnlock()
	if ok {
		return e
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok = m.sessions[id]; ok {
		return e
	}
	e = &entry{session: models.Session{ID: id, Messages: []models.Message{}}}
	m.sessions[id] = e
	return e
}

func (m *Memory) Create(id string) {
	m.getOrCreate(id)
}

func (m *Memory) Get(id string) (models.Session, bool) {
	m.mu.RLock()
	e, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return models.Session{}, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.Clone(), true
}

func (m *Memory) Update(id string, fn func(*models.Session) error) error {
	e := m.getOrCreate(id)
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(&e.session)
}
