package equipment

import (
	"fmt"
	"sort"
)

// Registry holds all loaded equipment definitions indexed by code.
//
// A Registry is read-only once loading completes and then safe for concurrent use.
type Registry struct {
	defs map[Code]*Def
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[Code]*Def)}
}

// Register adds d to the registry.
//
// Precondition: d must not be nil.
// Postcondition: Def(d.ID) returns d; returns error if d.ID already registered.
func (r *Registry) Register(d *Def) error {
	code := Code(d.ID)
	if _, exists := r.defs[code]; exists {
		return fmt.Errorf("equipment: Registry.Register: item ID %q already registered", d.ID)
	}
	r.defs[code] = d
	return nil
}

// Def returns the definition for code and whether it was found.
func (r *Registry) Def(code Code) (*Def, bool) {
	d, ok := r.defs[code]
	return d, ok
}

// Item returns the capability value for code. The empty code yields None.
//
// Postcondition: err is non-nil iff code is non-empty and unknown.
func (r *Registry) Item(code Code) (Item, error) {
	if code == "" {
		return None, nil
	}
	d, ok := r.defs[code]
	if !ok {
		return None, fmt.Errorf("equipment: unknown item %q", code)
	}
	return d.Item(), nil
}

// All returns every registered definition sorted by ID.
func (r *Registry) All() []*Def {
	out := make([]*Def, 0, len(r.defs))
	for _, d := range r.defs {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
