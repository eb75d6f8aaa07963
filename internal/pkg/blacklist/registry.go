package blacklist

import "sync"

// Registry is a process-lifetime set of revoked token strings. Entries are
// added at logout and never expire before the process restarts; memory grows
// with logout count, which is a known and accepted property of this scope.
// Prune exists as a hook for an eventual TTL sweep.
type Registry struct {
	mu     sync.RWMutex
	tokens map[string]struct{}
}

func NewRegistry() *Registry {
	return &Registry{tokens: make(map[string]struct{})}
}

// Add records token as revoked.
func (r *Registry) Add(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[token] = struct{}{}
}

// Contains reports whether token has been revoked.
func (r *Registry) Contains(token string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.tokens[token]
	return ok
}

// Len returns the number of revoked tokens currently held.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tokens)
}

// Prune removes tokens for which keep returns false.
func (r *Registry) Prune(keep func(token string) bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for token := range r.tokens {
		if !keep(token) {
			delete(r.tokens, token)
		}
	}
}
