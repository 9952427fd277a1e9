package rpc

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"
)

// TransportFactory creates a Transport from configuration.
type TransportFactory func(cfg map[string]any) (Transport, error)

// Registry manages transport factories so embedding systems can register
// alternative wire protocols alongside the built-in HTTP one.
type Registry struct {
	mu         sync.RWMutex
	transports map[string]TransportFactory
}

// NewRegistry creates a new transport registry.
func NewRegistry() *Registry {
	return &Registry{transports: make(map[string]TransportFactory)}
}

// Register adds a transport factory.
func (r *Registry) Register(name string, factory TransportFactory) error {
	if name == "" || factory == nil {
		return errors.New("invalid transport registration")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.transports[name]; exists {
		return fmt.Errorf("transport %q already registered", name)
	}

	r.transports[name] = factory
	return nil
}

// Create instantiates a transport by name.
func (r *Registry) Create(name string, cfg map[string]any) (Transport, error) {
	r.mu.RLock()
	factory, ok := r.transports[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("transport %q not found", name)
	}

	return factory(cfg)
}

// List returns registered transport names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.transports))
	for name := range r.transports {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry is the global transport registry with built-in factories.
var DefaultRegistry = NewRegistry()

func init() {
	_ = DefaultRegistry.Register("http", func(cfg map[string]any) (Transport, error) {
		config := HTTPConfig{}

		baseURL, ok := cfg["base_url"].(string)
		if !ok || baseURL == "" {
			return nil, errors.New("http transport requires base_url")
		}
		config.BaseURL = baseURL

		if timeout, ok := cfg["timeout"].(string); ok {
			d, err := time.ParseDuration(timeout)
			if err != nil {
				return nil, fmt.Errorf("http transport timeout: %w", err)
			}
			config.Timeout = d
		}

		return NewHTTPTransport(config), nil
	})
}
