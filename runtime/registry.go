package runtime

import (
	"recipe-live/contract"
	"sort"
	"sync"
)

type registration struct {
	conn contract.Connection
	seq  uint64
}

// Registry is the set of open connections, iterated in registration order.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]registration // map connection -> registration
	nextSeq  uint64
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]registration)}
}

// Subscribe registers a connection. It reports false if the id is already registered.
func (r *Registry) Subscribe(conn contract.Connection) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[conn.ID()]; ok {
		return false
	}
	r.nextSeq++
	r.sessions[conn.ID()] = registration{conn: conn, seq: r.nextSeq}
	return true
}

// Unsubscribe removes a connection and returns it, if it was registered.
func (r *Registry) Unsubscribe(connID string) (contract.Connection, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	reg, ok := r.sessions[connID]
	if !ok {
		return nil, false
	}
	delete(r.sessions, connID)
	return reg.conn, true
}

func (r *Registry) Get(connID string) (contract.Connection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reg, ok := r.sessions[connID]
	return reg.conn, ok
}

// Connections returns the registered connections sorted by registration order,
// so that every broadcast visits them in the same sequence.
func (r *Registry) Connections() []contract.Connection {
	r.mu.RLock()
	regs := make([]registration, 0, len(r.sessions))
	for _, reg := range r.sessions {
		regs = append(regs, reg)
	}
	r.mu.RUnlock()

	sort.Slice(regs, func(i, j int) bool {
		return regs[i].seq < regs[j].seq
	})
	conns := make([]contract.Connection, len(regs))
	for i, reg := range regs {
		conns[i] = reg.conn
	}
	return conns
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
