package connector

import (
	"fmt"
	"sync"
)

// Registry dispatches geocodes to registered connectors in registration
// order. It implements Source.
type Registry struct {
	mu         sync.RWMutex
	connectors []Connector
	names      map[string]struct{}
}

// NewRegistry creates an empty connector registry.
func NewRegistry() *Registry {
	return &Registry{names: make(map[string]struct{})}
}

// Register adds a connector. Registration order is dispatch order.
func (r *Registry) Register(c Connector) error {
	if c == nil {
		return ErrNilConnector
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.names[c.Name()]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicate, c.Name())
	}
	r.names[c.Name()] = struct{}{}
	r.connectors = append(r.connectors, c)
	return nil
}

// ConnectorFor returns the first registered connector claiming geocode,
// or Unknown() when none does. It never returns nil.
func (r *Registry) ConnectorFor(geocode string) Connector {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.connectors {
		if c.CanHandle(geocode) {
			return c
		}
	}
	return Unknown()
}

// Names returns the registered connector names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.connectors))
	for _, c := range r.connectors {
		names = append(names, c.Name())
	}
	return names
}

var _ Source = (*Registry)(nil)
