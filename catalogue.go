/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package kaseyaschema

import (
	"github.com/suparena/kaseyaschema/errors"
	"github.com/suparena/kaseyaschema/kaseya"
	"github.com/suparena/kaseyaschema/registry"
	"github.com/suparena/kaseyaschema/schema"
)

// Catalogue returns the registry of Kaseya VSA entities.
func Catalogue() *schema.Registry {
	return kaseya.Catalogue
}

// FilterableFields returns the fields of the named entity that may appear in a filter
// expression, in declaration order.
func FilterableFields(entityType string) ([]schema.Field, error) {
	return kaseya.Catalogue.FilterableFields(entityType)
}

// SortableFields returns the fields of the named entity that may appear in a sort
// expression, in declaration order.
func SortableFields(entityType string) ([]schema.Field, error) {
	return kaseya.Catalogue.SortableFields(entityType)
}

// EntityOf returns the catalogue entry that the Go type T is bound to.
func EntityOf[T any]() (schema.Entity, error) {
	name, ok := registry.EntityTypeOf[T]()
	if !ok {
		return schema.Entity{}, errors.NewConfigurationError(typeName[T]())
	}
	return kaseya.Catalogue.Lookup(name)
}

// FilterableFieldsOf is FilterableFields for the entity T is bound to.
func FilterableFieldsOf[T any]() ([]schema.Field, error) {
	e, err := EntityOf[T]()
	if err != nil {
		return nil, err
	}
	return e.FilterableFields(), nil
}

// SortableFieldsOf is SortableFields for the entity T is bound to.
func SortableFieldsOf[T any]() ([]schema.Field, error) {
	e, err := EntityOf[T]()
	if err != nil {
		return nil, err
	}
	return e.SortableFields(), nil
}
