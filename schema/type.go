/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package schema

import (
	"fmt"
	"strings"
)

// Kind is the semantic category of a field value.
type Kind int

const (
	KindInvalid Kind = iota
	KindInteger
	KindNumber
	KindText
	KindBoolean
	KindTimestamp
	KindOpaque
	KindEntity
	KindArray
)

var kindNames = map[Kind]string{
	KindInteger:   "integer",
	KindNumber:    "number",
	KindText:      "text",
	KindBoolean:   "boolean",
	KindTimestamp: "timestamp",
	KindOpaque:    "opaque",
	KindEntity:    "entity",
	KindArray:     "array",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// Scalar reports whether k carries no nested type information.
func (k Kind) Scalar() bool {
	return k.Valid() && k != KindEntity && k != KindArray
}

// ParseKind converts a kind name as printed by String back into a Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return KindInvalid, fmt.Errorf("unknown kind %q", s)
}

// Type is the semantic type of a field. Entity is set for KindEntity; Elem is set
// for KindArray.
type Type struct {
	Kind   Kind
	Entity string
	Elem   *Type
}

// Scalar types.
var (
	Integer   = Type{Kind: KindInteger}
	Number    = Type{Kind: KindNumber}
	Text      = Type{Kind: KindText}
	Boolean   = Type{Kind: KindBoolean}
	Timestamp = Type{Kind: KindTimestamp}
	Opaque    = Type{Kind: KindOpaque}
)

// EntityOf returns the type of a field holding a nested entity.
func EntityOf(name string) Type {
	return Type{Kind: KindEntity, Entity: name}
}

// ArrayOf returns the type of a field holding a sequence of elem.
func ArrayOf(elem Type) Type {
	e := elem.clone()
	return Type{Kind: KindArray, Elem: &e}
}

// String renders t in the notation accepted by ParseType: a kind name for
// scalars, the entity name for nested entities and a "[]" prefix for arrays.
func (t Type) String() string {
	switch t.Kind {
	case KindEntity:
		return t.Entity
	case KindArray:
		if t.Elem == nil {
			return "[]?"
		}
		return "[]" + t.Elem.String()
	default:
		return t.Kind.String()
	}
}

// Equal reports whether t and other describe the same type.
func (t Type) Equal(other Type) bool {
	if t.Kind != other.Kind || t.Entity != other.Entity {
		return false
	}
	if t.Elem == nil || other.Elem == nil {
		return t.Elem == other.Elem
	}
	return t.Elem.Equal(*other.Elem)
}

// Referenced returns the entity name t refers to, looking through arrays.
func (t Type) Referenced() (string, bool) {
	switch t.Kind {
	case KindEntity:
		return t.Entity, t.Entity != ""
	case KindArray:
		if t.Elem != nil {
			return t.Elem.Referenced()
		}
	}
	return "", false
}

func (t Type) clone() Type {
	if t.Elem == nil {
		return t
	}
	e := t.Elem.clone()
	t.Elem = &e
	return t
}

func (t Type) validate() error {
	switch {
	case !t.Kind.Valid():
		return fmt.Errorf("invalid kind %s", t.Kind)
	case t.Kind == KindEntity && t.Entity == "":
		return fmt.Errorf("entity type without entity name")
	case t.Kind == KindEntity:
		return checkEntityName(t.Entity)
	case t.Kind == KindArray && t.Elem == nil:
		return fmt.Errorf("array type without element type")
	case t.Kind == KindArray:
		return t.Elem.validate()
	}
	return nil
}

// ParseType parses the notation produced by Type.String. Anything that is not a
// kind name or an array is taken to be an entity name.
func ParseType(s string) (Type, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Type{}, fmt.Errorf("empty type")
	}
	if elem, ok := strings.CutPrefix(s, "[]"); ok {
		et, err := ParseType(elem)
		if err != nil {
			return Type{}, fmt.Errorf("array element: %w", err)
		}
		return ArrayOf(et), nil
	}
	if k, err := ParseKind(s); err == nil {
		if !k.Scalar() {
			return Type{}, fmt.Errorf("kind %q needs a concrete entity or element type", s)
		}
		return Type{Kind: k}, nil
	}
	if err := checkEntityName(s); err != nil {
		return Type{}, err
	}
	return EntityOf(s), nil
}

// checkEntityName rejects names that Type.String could not render unambiguously.
func checkEntityName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("empty entity name")
	case strings.TrimSpace(name) != name:
		return fmt.Errorf("entity name %q has surrounding whitespace", name)
	case strings.HasPrefix(name, "[]"):
		return fmt.Errorf("entity name %q starts with []", name)
	}
	if _, err := ParseKind(name); err == nil {
		return fmt.Errorf("entity name %q is a kind name", name)
	}
	return nil
}
