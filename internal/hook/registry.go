package hook

import (
	"sort"
	"sync"
)

// Registry manages save hooks with priority-based ordering.
// It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	hooks []Hook
}

// NewRegistry creates an empty hook registry.
func NewRegistry() *Registry {
	return &Registry{
		hooks: make([]Hook, 0),
	}
}

// Register adds a hook. If a hook with the same name is already
// registered it is replaced, so repeated registration is idempotent.
func (r *Registry) Register(h Hook) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.hooks {
		if existing.Name() == h.Name() {
			r.hooks[i] = h
			r.sortHooks()
			return
		}
	}

	r.hooks = append(r.hooks, h)
	r.sortHooks()
}

// Unregister removes a hook by name.
// It reports whether a hook was removed.
func (r *Registry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, h := range r.hooks {
		if h.Name() == name {
			r.hooks = append(r.hooks[:i], r.hooks[i+1:]...)
			return true
		}
	}
	return false
}

// Registered reports whether a hook with the given name exists.
func (r *Registry) Registered(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, h := range r.hooks {
		if h.Name() == name {
			return true
		}
	}
	return false
}

// Emit delivers a save event to all hooks in priority order.
// A panicking hook does not prevent the remaining hooks from running.
func (r *Registry) Emit(event SaveEvent) {
	r.mu.RLock()
	hooks := make([]Hook, len(r.hooks))
	copy(hooks, r.hooks)
	r.mu.RUnlock()

	for _, h := range hooks {
		safeCall(h, event)
	}
}

// Count returns the number of registered hooks.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.hooks)
}

// Names returns the hook names in execution order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.hooks))
	for i, h := range r.hooks {
		names[i] = h.Name()
	}
	return names
}

// Clear removes all hooks.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hooks = r.hooks[:0]
}

// sortHooks orders hooks by priority descending (higher first).
func (r *Registry) sortHooks() {
	sort.SliceStable(r.hooks, func(i, j int) bool {
		return r.hooks[i].Priority() > r.hooks[j].Priority()
	})
}

// safeCall invokes a hook with panic recovery.
func safeCall(h Hook, event SaveEvent) {
	defer func() {
		_ = recover()
	}()
	h.OnSave(event)
}
