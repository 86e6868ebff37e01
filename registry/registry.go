// Package registry resolves package-style module names to values.
//
// It is the host resolution facility the default loader consults for
// references that do not start with the relative prefix: callers install
// providers by name at startup and the injector looks them up during
// resolution. A process-wide default registry is provided for the common
// case; construct a private Registry when isolation matters (tests,
// embedded hosts).
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Provider produces the value registered under a name. It is called on
// every resolution; providers that should behave like cached modules must
// memoize internally.
type Provider func() (any, error)

// Registry maintains named providers.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{providers: map[string]Provider{}}
}

// Register installs a provider. Returns an error if the name already exists.
func (r *Registry) Register(name string, provider Provider) error {
	if name == "" {
		return fmt.Errorf("registry: name is required")
	}
	if provider == nil {
		return fmt.Errorf("registry: provider is required for %s", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.providers[name]; exists {
		return fmt.Errorf("registry: %s already registered", name)
	}
	r.providers[name] = provider
	return nil
}

// MustRegister panics if registration fails.
func (r *Registry) MustRegister(name string, provider Provider) {
	if err := r.Register(name, provider); err != nil {
		panic(err)
	}
}

// RegisterValue installs a provider that always returns value.
func (r *Registry) RegisterValue(name string, value any) error {
	return r.Register(name, func() (any, error) { return value, nil })
}

// Resolve looks up a name and runs its provider.
func (r *Registry) Resolve(name string) (any, error) {
	r.mu.RLock()
	provider, ok := r.providers[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: unknown name %s", name)
	}
	return provider()
}

// Names returns a sorted list of registered names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var defaultRegistry = New()

// Default returns the process-wide registry consulted by the default
// loader when no explicit registry is configured.
func Default() *Registry {
	return defaultRegistry
}

// Register installs a provider into the default registry.
func Register(name string, provider Provider) error {
	return defaultRegistry.Register(name, provider)
}

// RegisterValue installs a constant value into the default registry.
func RegisterValue(name string, value any) error {
	return defaultRegistry.RegisterValue(name, value)
}

// Resolve looks up a name in the default registry.
func Resolve(name string) (any, error) {
	return defaultRegistry.Resolve(name)
}
