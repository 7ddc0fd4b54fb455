package referee

import (
	"sync"

	"github.com/google/uuid"
)

// Registry holds live scoring sessions keyed by an opaque id. Sessions are
// created on demand and removed explicitly; nothing is persisted across
// process restarts.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	factory  func() *Session
	newID    func() string
}

// NewRegistry builds a registry that creates sessions via factory.
func NewRegistry(factory func() *Session) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		factory:  factory,
		newID:    uuid.NewString,
	}
}

// Create makes a fresh session and returns its id.
func (r *Registry) Create() (string, *Session) {
	session := r.factory()
	id := r.newID()

	r.mu.Lock()
	r.sessions[id] = session
	r.mu.Unlock()
	return id, session
}

// Get looks up a session by id.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[id]
	return session, ok
}

// Delete drops a session. Deleting an unknown id is a no-op.
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
