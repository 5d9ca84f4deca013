/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/suparena/kaseyaschema/errors"
)

// NewFunc returns a pointer to a fresh zero value of an entity instance type.
type NewFunc func() any

// typeRegistry holds the mapping from an entity type name (like "Agent") to its factory.
var (
	typeRegistry = make(map[string]NewFunc)
	typeMu       sync.RWMutex
)

// RegisterType registers an instance factory for a given entity type.
// If a factory is already registered for the name, it panics to prevent accidental overrides.
func RegisterType(entityType string, fn NewFunc) {
	typeMu.Lock()
	defer typeMu.Unlock()

	if _, exists := typeRegistry[entityType]; exists {
		panic(fmt.Sprintf("type registry: entity type %q already registered", entityType))
	}
	typeRegistry[entityType] = fn
}

// GetNewFunc returns the registered factory for the given entity type.
func GetNewFunc(entityType string) (NewFunc, error) {
	typeMu.RLock()
	defer typeMu.RUnlock()

	fn, ok := typeRegistry[entityType]
	if !ok {
		return nil, errors.NewConfigurationError(entityType)
	}
	return fn, nil
}

// NewInstance allocates an instance of the Go type registered for entityType.
func NewInstance(entityType string) (any, error) {
	fn, err := GetNewFunc(entityType)
	if err != nil {
		return nil, err
	}
	return fn(), nil
}

// RegisteredTypes returns the names of all registered entity types, sorted.
func RegisteredTypes() []string {
	typeMu.RLock()
	defer typeMu.RUnlock()

	names := make([]string, 0, len(typeRegistry))
	for name := range typeRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
