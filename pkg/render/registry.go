package render

import (
	"fmt"
	"sort"
	"sync"
)

// Registry stores list renderers by name so hosts can pick an output format
// (html, text) from configuration.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]ListRenderer
}

// NewRegistry creates a registry holding the given renderers.
func NewRegistry(renderers ...ListRenderer) (*Registry, error) {
	r := &Registry{renderers: make(map[string]ListRenderer, len(renderers))}
	for _, renderer := range renderers {
		if err := r.Register(renderer); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a renderer by its Name(). Duplicate names return an error.
func (r *Registry) Register(renderer ListRenderer) error {
	if renderer == nil {
		return fmt.Errorf("render: renderer is required")
	}
	name := renderer.Name()
	if name == "" {
		return fmt.Errorf("render: renderer name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.renderers[name]; exists {
		return fmt.Errorf("render: renderer %q already registered", name)
	}
	r.renderers[name] = renderer
	return nil
}

// Get retrieves a renderer by name.
func (r *Registry) Get(name string) (ListRenderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	renderer, ok := r.renderers[name]
	if !ok {
		return nil, fmt.Errorf("render: renderer %q not found (available: %v)", name, r.namesLocked())
	}
	return renderer, nil
}

// Page retrieves a renderer that can also render full pages.
func (r *Registry) Page(name string) (PageRenderer, error) {
	renderer, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	page, ok := renderer.(PageRenderer)
	if !ok {
		return nil, fmt.Errorf("render: renderer %q cannot render pages", name)
	}
	return page, nil
}

// List returns a sorted list of renderer names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.namesLocked()
}

func (r *Registry) namesLocked() []string {
	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
