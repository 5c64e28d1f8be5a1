package report

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/phishguard/guardkit/pkg/formmodel"
	"github.com/phishguard/guardkit/pkg/urlcheck"
)

// Registry stores renderers by name, providing discovery and duplication
// safeguards. Names are case-insensitive: "HTML" and "html" address the same
// renderer. Callers can embed or wrap this for dependency injection.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		renderers: make(map[string]Renderer),
	}
}

// Register adds a renderer by its Name(). Duplicate names return an error.
func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil {
		return fmt.Errorf("report: renderer is required")
	}
	name := normalizeName(renderer.Name())
	if name == "" {
		return fmt.Errorf("report: renderer name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.renderers[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicate, name)
	}

	r.renderers[name] = renderer
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(renderer Renderer) {
	if err := r.Register(renderer); err != nil {
		panic(err)
	}
}

// Get retrieves a renderer by name.
func (r *Registry) Get(name string) (Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	renderer, ok := r.renderers[normalizeName(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return renderer, nil
}

// Has reports whether a renderer is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.renderers[normalizeName(name)]
	return ok
}

// List returns the sorted renderer names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RenderReport dispatches to the named renderer.
func (r *Registry) RenderReport(ctx context.Context, name string, rep urlcheck.Report, options Options) ([]byte, error) {
	renderer, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return renderer.RenderReport(ctx, rep, options)
}

// RenderValidation dispatches to the named renderer.
func (r *Registry) RenderValidation(ctx context.Context, name string, form formmodel.Form, options Options) ([]byte, error) {
	renderer, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return renderer.RenderValidation(ctx, form, options)
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
