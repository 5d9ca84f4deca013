/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package schema

// Capability flags what a field may be used for in a remote query.
type Capability uint8

const (
	// Filterable marks a field usable in a filter expression.
	Filterable Capability = 1 << iota
	// Sortable marks a field usable in a sort expression.
	Sortable
)

// Field describes a single field of an entity type.
type Field struct {
	Name       string
	Type       Type
	Filterable bool
	Sortable   bool
}

// NewField builds a Field with the flags in caps set.
func NewField(name string, t Type, caps Capability) Field {
	return Field{
		Name:       name,
		Type:       t,
		Filterable: caps&Filterable != 0,
		Sortable:   caps&Sortable != 0,
	}
}

// Capabilities returns the flags of f as a bit set.
func (f Field) Capabilities() Capability {
	var c Capability
	if f.Filterable {
		c |= Filterable
	}
	if f.Sortable {
		c |= Sortable
	}
	return c
}

func (f Field) clone() Field {
	f.Type = f.Type.clone()
	return f
}

// Entity is a named record type with an ordered list of fields.
type Entity struct {
	Name        string
	Aliases     []string
	Description string
	Fields      []Field
}

// Field returns the field called name.
func (e Entity) Field(name string) (Field, bool) {
	for _, f := range e.Fields {
		if f.Name == name {
			return f.clone(), true
		}
	}
	return Field{}, false
}

// FilterableFields returns the filterable fields of e in declaration order.
func (e Entity) FilterableFields() []Field {
	return e.selectFields(func(f Field) bool { return f.Filterable })
}

// SortableFields returns the sortable fields of e in declaration order.
func (e Entity) SortableFields() []Field {
	return e.selectFields(func(f Field) bool { return f.Sortable })
}

// PlainFields returns the fields that are neither filterable nor sortable.
func (e Entity) PlainFields() []Field {
	return e.selectFields(func(f Field) bool { return !f.Filterable && !f.Sortable })
}

func (e Entity) selectFields(keep func(Field) bool) []Field {
	out := make([]Field, 0, len(e.Fields))
	for _, f := range e.Fields {
		if keep(f) {
			out = append(out, f.clone())
		}
	}
	return out
}

func (e Entity) clone() Entity {
	c := Entity{Name: e.Name, Description: e.Description}
	if len(e.Aliases) > 0 {
		c.Aliases = append([]string(nil), e.Aliases...)
	}
	c.Fields = make([]Field, len(e.Fields))
	for i, f := range e.Fields {
		c.Fields[i] = f.clone()
	}
	return c
}
