package titles

import (
	"embed"
	"fmt"
	"sort"
	"sync"
)

//go:embed data/*.json
var dataFS embed.FS

// Registry maps title ids to providers, preserving registration order
// for stable title listings.
type Registry struct {
	order []string
	byID  map[string]Provider
}

func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]Provider)}
}

// Register adds a provider. Duplicate ids are rejected.
func (r *Registry) Register(p Provider) error {
	id := p.Catalog().ID()
	if _, exists := r.byID[id]; exists {
		return fmt.Errorf("title %q already registered", id)
	}
	r.byID[id] = p
	r.order = append(r.order, id)
	return nil
}

// Get returns the provider for a title id.
func (r *Registry) Get(id string) (Provider, bool) {
	p, ok := r.byID[id]
	return p, ok
}

// List returns all providers in registration order.
func (r *Registry) List() []Provider {
	out := make([]Provider, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
	defaultErr  error
)

// Default returns the registry of embedded titles. Content files are
// loaded and validated once; a bad embedded file is a build defect
// and surfaces as an error here.
func Default() (*Registry, error) {
	defaultOnce.Do(func() {
		defaultReg, defaultErr = loadEmbedded()
	})
	return defaultReg, defaultErr
}

func loadEmbedded() (*Registry, error) {
	entries, err := dataFS.ReadDir("data")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded titles: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	reg := NewRegistry()
	for _, name := range names {
		data, err := dataFS.ReadFile("data/" + name)
		if err != nil {
			return nil, fmt.Errorf("failed to read title file %s: %w", name, err)
		}
		p, err := Load(data)
		if err != nil {
			return nil, fmt.Errorf("failed to load title file %s: %w", name, err)
		}
		if err := reg.Register(p); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
