/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"reflect"
	"sync"
)

// Binding ties a Go type to the catalogue entity it carries and, optionally, to
// the index map used to key its snapshots.
type Binding struct {
	EntityType string
	IndexMap   map[string]string
}

var (
	bindings  = make(map[reflect.Type]Binding)
	bindingMu sync.RWMutex
)

// Bind associates the Go type T with an entity type and an index map (PK, SK).
// idxMap may be nil for entity types that have no identity field. Binding the same
// type twice panics.
func Bind[T any](entityType string, idxMap map[string]string) {
	t := reflect.TypeOf((*T)(nil)).Elem()

	bindingMu.Lock()
	defer bindingMu.Unlock()

	if prev, exists := bindings[t]; exists {
		panic(fmt.Sprintf("index map registry: %s already bound to %q", t, prev.EntityType))
	}
	var copied map[string]string
	if idxMap != nil {
		copied = make(map[string]string, len(idxMap))
		for k, v := range idxMap {
			copied[k] = v
		}
	}
	bindings[t] = Binding{EntityType: entityType, IndexMap: copied}
}

// GetBinding returns the binding of type T, if any.
func GetBinding[T any]() (Binding, bool) {
	t := reflect.TypeOf((*T)(nil)).Elem()

	bindingMu.RLock()
	defer bindingMu.RUnlock()
	b, ok := bindings[t]
	return b, ok
}

// EntityTypeOf returns the entity type bound to T.
func EntityTypeOf[T any]() (string, bool) {
	b, ok := GetBinding[T]()
	return b.EntityType, ok
}

// GetIndexMap retrieves the indexMap for type T, if any.
func GetIndexMap[T any]() (map[string]string, bool) {
	b, ok := GetBinding[T]()
	if !ok || b.IndexMap == nil {
		return nil, false
	}
	m := make(map[string]string, len(b.IndexMap))
	for k, v := range b.IndexMap {
		m[k] = v
	}
	return m, true
}
