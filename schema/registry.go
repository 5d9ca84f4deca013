/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package schema

import (
	"fmt"

	"github.com/suparena/kaseyaschema/errors"
)

// Registry is an immutable set of entity types. The zero value is an empty
// registry; use NewRegistry to populate one.
type Registry struct {
	entities []Entity
	index    map[string]int
}

// NewRegistry validates the given definitions and freezes them into a Registry.
// The definitions are copied, so later changes to the arguments are not observed.
func NewRegistry(entities ...Entity) (*Registry, error) {
	r := &Registry{
		entities: make([]Entity, 0, len(entities)),
		index:    make(map[string]int, len(entities)),
	}

	for _, e := range entities {
		if err := checkEntityName(e.Name); err != nil {
			return nil, errors.NewSchemaError(e.Name, "", err.Error())
		}
		pos := len(r.entities)
		for _, name := range append([]string{e.Name}, e.Aliases...) {
			if name == "" {
				return nil, errors.NewSchemaError(e.Name, "", "empty alias")
			}
			if prev, exists := r.index[name]; exists {
				if prev == pos {
					return nil, errors.NewSchemaError(e.Name, "", fmt.Sprintf("name %q listed twice", name))
				}
				return nil, errors.NewSchemaError(e.Name, "",
					fmt.Sprintf("name %q already used by entity %q", name, r.entities[prev].Name))
			}
			r.index[name] = pos
		}
		r.entities = append(r.entities, e.clone())
	}

	for _, e := range r.entities {
		seen := make(map[string]struct{}, len(e.Fields))
		for _, f := range e.Fields {
			if f.Name == "" {
				return nil, errors.NewSchemaError(e.Name, "", "field with empty name")
			}
			if _, dup := seen[f.Name]; dup {
				return nil, errors.NewSchemaError(e.Name, f.Name, "duplicate field name")
			}
			seen[f.Name] = struct{}{}

			if err := f.Type.validate(); err != nil {
				return nil, errors.NewSchemaError(e.Name, f.Name, err.Error())
			}
			if ref, ok := f.Type.Referenced(); ok {
				if _, known := r.index[ref]; !known {
					return nil, errors.NewSchemaError(e.Name, f.Name,
						fmt.Sprintf("references undefined entity %q", ref))
				}
			}
		}
	}

	return r, nil
}

// MustNewRegistry is like NewRegistry but panics on invalid definitions. It is
// meant for package-level catalogues.
func MustNewRegistry(entities ...Entity) *Registry {
	r, err := NewRegistry(entities...)
	if err != nil {
		panic(fmt.Sprintf("schema registry: %v", err))
	}
	return r
}

func (r *Registry) lookup(name string) (*Entity, error) {
	if r == nil {
		return nil, errors.NewConfigurationError(name)
	}
	pos, ok := r.index[name]
	if !ok {
		return nil, errors.NewConfigurationError(name)
	}
	return &r.entities[pos], nil
}

// Lookup returns the entity called name. Aliases resolve to their entity.
func (r *Registry) Lookup(name string) (Entity, error) {
	e, err := r.lookup(name)
	if err != nil {
		return Entity{}, err
	}
	return e.clone(), nil
}

// Has reports whether name or an alias of that name is defined.
func (r *Registry) Has(name string) bool {
	_, err := r.lookup(name)
	return err == nil
}

// Canonical returns the primary name of the entity known as name.
func (r *Registry) Canonical(name string) (string, error) {
	e, err := r.lookup(name)
	if err != nil {
		return "", err
	}
	return e.Name, nil
}

// Fields returns every field of the entity in declaration order.
func (r *Registry) Fields(name string) ([]Field, error) {
	e, err := r.lookup(name)
	if err != nil {
		return nil, err
	}
	return e.selectFields(func(Field) bool { return true }), nil
}

// FilterableFields returns the filterable fields of the entity in declaration
// order. The result is empty, not an error, when no field is filterable.
func (r *Registry) FilterableFields(name string) ([]Field, error) {
	e, err := r.lookup(name)
	if err != nil {
		return nil, err
	}
	return e.FilterableFields(), nil
}

// SortableFields returns the sortable fields of the entity in declaration
// order. The result is empty, not an error, when no field is sortable.
func (r *Registry) SortableFields(name string) ([]Field, error) {
	e, err := r.lookup(name)
	if err != nil {
		return nil, err
	}
	return e.SortableFields(), nil
}

// Names returns the primary entity names in declaration order.
func (r *Registry) Names() []string {
	if r == nil {
		return []string{}
	}
	names := make([]string, len(r.entities))
	for i, e := range r.entities {
		names[i] = e.Name
	}
	return names
}

// Entities returns copies of all entities in declaration order.
func (r *Registry) Entities() []Entity {
	if r == nil {
		return []Entity{}
	}
	out := make([]Entity, len(r.entities))
	for i, e := range r.entities {
		out[i] = e.clone()
	}
	return out
}

// Len returns the number of entity types.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entities)
}
