package render

import (
	"fmt"
	"sort"
	"sync"
)

// Registry stores skins by name. The zero value is not usable; call
// NewRegistry.
type Registry struct {
	mu    sync.RWMutex
	skins map[string]Skin
}

// NewRegistry creates an empty skin registry.
func NewRegistry() *Registry {
	return &Registry{skins: make(map[string]Skin)}
}

// Register adds a skin under its Name(). Duplicate names return an error.
func (r *Registry) Register(skin Skin) error {
	if skin == nil {
		return fmt.Errorf("render: skin is required")
	}
	name := skin.Name()
	if name == "" {
		return fmt.Errorf("render: skin name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.skins[name]; exists {
		return fmt.Errorf("render: skin %q already registered", name)
	}
	r.skins[name] = skin
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(skin Skin) {
	if err := r.Register(skin); err != nil {
		panic(err)
	}
}

// Get retrieves a skin by name.
func (r *Registry) Get(name string) (Skin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	skin, ok := r.skins[name]
	if !ok {
		return nil, fmt.Errorf("render: skin %q not found", name)
	}
	return skin, nil
}

// Has reports whether a skin is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.skins[name]
	return ok
}

// Names returns the registered skin names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.skins))
	for name := range r.skins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
