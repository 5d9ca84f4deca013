/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package kaseyaschema

import (
	"reflect"
	"sort"
	"sync"

	"github.com/suparena/kaseyaschema/datastore"
	"github.com/suparena/kaseyaschema/errors"
	"github.com/suparena/kaseyaschema/registry"
)

// Snapshots manages one snapshot datastore per catalogue entity type.
type Snapshots struct {
	mu     sync.RWMutex
	stores map[reflect.Type]attachment
}

type attachment struct {
	entityType string
	store      any
}

// NewSnapshots creates an empty Snapshots set.
func NewSnapshots() *Snapshots {
	return &Snapshots{
		stores: make(map[reflect.Type]attachment),
	}
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func typeName[T any]() string {
	return typeOf[T]().String()
}

// Attach adds ds as the snapshot store of the entity type T is bound to.
func Attach[T any](s *Snapshots, ds datastore.DataStore[T]) error {
	name, ok := registry.EntityTypeOf[T]()
	if !ok {
		return errors.NewConfigurationError(typeName[T]())
	}
	if _, ok := registry.GetIndexMap[T](); !ok {
		return errors.NewValidationError(name, "entity type has no storage key")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	typ := typeOf[T]()
	if _, exists := s.stores[typ]; exists {
		return errors.NewAlreadyExistsError("snapshot store", name)
	}
	s.stores[typ] = attachment{entityType: name, store: ds}
	return nil
}

// StoreFor returns the snapshot store attached for T.
func StoreFor[T any](s *Snapshots) (datastore.DataStore[T], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, exists := s.stores[typeOf[T]()]
	if !exists {
		return nil, errors.NewNotFoundError("snapshot store", typeName[T]())
	}
	return a.store.(datastore.DataStore[T]), nil
}

// Detach removes the snapshot store attached for T.
func Detach[T any](s *Snapshots) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	typ := typeOf[T]()
	if _, exists := s.stores[typ]; !exists {
		return errors.NewNotFoundError("snapshot store", typeName[T]())
	}
	delete(s.stores, typ)
	return nil
}

// Attached returns the entity types that have a snapshot store, sorted.
func (s *Snapshots) Attached() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.stores))
	for _, a := range s.stores {
		names = append(names, a.entityType)
	}
	sort.Strings(names)
	return names
}
