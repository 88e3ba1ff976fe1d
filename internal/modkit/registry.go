package modkit

import (
	"sort"
	"sync"
)

// Registry maps module names to their port sets for cross wiring during bootstrap
type Registry struct {
	mu    sync.RWMutex
	ports map[string]any
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry { return &Registry{ports: map[string]any{}} }

// Register stores ports for name, replacing any earlier value
func (r *Registry) Register(name string, ports any) {
	r.mu.Lock()
	r.ports[name] = ports
	r.mu.Unlock()
}

// Names lists registered module names in sorted order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.ports))
	for n := range r.ports {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// PortsAs fetches the ports registered for name as T
func PortsAs[T any](r *Registry, name string) (T, bool) {
	r.mu.RLock()
	v, ok := r.ports[name]
	r.mu.RUnlock()
	if !ok {
		var zero T
		return zero, false
	}
	out, ok := v.(T)
	return out, ok
}
