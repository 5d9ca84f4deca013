/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory implementation of the DataStore interface for testing
package mock

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/suparena/kaseyaschema/datastore"
	"github.com/suparena/kaseyaschema/errors"
	"github.com/suparena/kaseyaschema/registry"
	"github.com/suparena/kaseyaschema/storagemodels"
)

// DataStore is a mock implementation of datastore.DataStore[T] for testing
type DataStore[T any] struct {
	mu          sync.RWMutex
	data        map[string]T
	queryFunc   func(ctx context.Context, params *storagemodels.QueryParams) ([]any, error)
	getKeyFunc  func(entity T) string
	putError    error
	deleteError error
}

var _ datastore.DataStore[struct{}] = (*DataStore[struct{}])(nil)

// New creates a new mock DataStore
func New[T any]() *DataStore[T] {
	return &DataStore[T]{
		data: make(map[string]T),
	}
}

// WithGetKeyFunc sets a custom function to extract keys from entities.
// Without one, keys come from the SK template bound to T in the registry.
func (m *DataStore[T]) WithGetKeyFunc(f func(T) string) *DataStore[T] {
	m.getKeyFunc = f
	return m
}

// WithQueryFunc sets a custom query function for testing
func (m *DataStore[T]) WithQueryFunc(f func(ctx context.Context, params *storagemodels.QueryParams) ([]any, error)) *DataStore[T] {
	m.queryFunc = f
	return m
}

// WithPutError makes Put operations return an error
func (m *DataStore[T]) WithPutError(err error) *DataStore[T] {
	m.putError = err
	return m
}

// WithDeleteError makes Delete operations return an error
func (m *DataStore[T]) WithDeleteError(err error) *DataStore[T] {
	m.deleteError = err
	return m
}

// GetOne retrieves an entity by key
func (m *DataStore[T]) GetOne(ctx context.Context, key string) (*T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if entity, exists := m.data[key]; exists {
		return &entity, nil
	}
	return nil, errors.NewNotFoundError(m.entityType(), key)
}

// Put stores an entity, replacing any snapshot under the same key
func (m *DataStore[T]) Put(ctx context.Context, entity T) error {
	if m.putError != nil {
		return m.putError
	}

	key, err := m.extractKey(entity)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = entity
	return nil
}

// Query returns pointers to copies of the stored snapshots in key order.
// KeyPrefix, Limit and ScanIndexForward are honoured. A query for another
// entity type returns nothing.
func (m *DataStore[T]) Query(ctx context.Context, params *storagemodels.QueryParams) ([]any, error) {
	if m.queryFunc != nil {
		return m.queryFunc(ctx, params)
	}

	_, items := m.selectItems(params)
	results := make([]any, len(items))
	for i := range items {
		results[i] = &items[i]
	}
	return results, nil
}

// Stream delivers the same selection as Query on a channel. Pages have the
// configured page size. A params.EntityType other than T's yields one ValidationError.
func (m *DataStore[T]) Stream(ctx context.Context, params *storagemodels.QueryParams, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[T] {
	options := storagemodels.ApplyStreamOptions(opts...)
	resultCh := make(chan storagemodels.StreamResult[T], options.BufferSize)

	keys, items := m.selectItems(params)
	go func() {
		defer close(resultCh)

		if params != nil && params.EntityType != "" && params.EntityType != m.entityType() {
			select {
			case <-ctx.Done():
			case resultCh <- storagemodels.StreamResult[T]{
				Error: errors.NewValidationError("EntityType", "cannot stream partition "+params.EntityType),
			}:
			}
			return
		}

		start := time.Now()
		progress := storagemodels.StreamProgress{EntityType: m.entityType(), StartTime: start}
		for i, item := range items {
			res := storagemodels.StreamResult[T]{
				Item: item,
				Key:  keys[i],
				Meta: storagemodels.StreamMeta{
					Index:      int64(i),
					PageNumber: i/int(options.PageSize) + 1,
					Timestamp:  time.Now(),
				},
			}
			select {
			case <-ctx.Done():
				return
			case resultCh <- res:
			}
			progress.ItemsProcessed++
			if (i+1)%int(options.PageSize) == 0 {
				progress.PagesProcessed++
				report(options, progress)
			}
		}
		if progress.ItemsProcessed%int64(options.PageSize) != 0 {
			progress.PagesProcessed++
		}
		progress.Done = true
		report(options, progress)
	}()
	return resultCh
}

func report(options storagemodels.StreamOptions, p storagemodels.StreamProgress) {
	if options.ProgressHandler == nil {
		return
	}
	if elapsed := time.Since(p.StartTime).Seconds(); elapsed > 0 {
		p.CurrentRate = float64(p.ItemsProcessed) / elapsed
	}
	options.ProgressHandler(p)
}

// Delete removes an entity by key
func (m *DataStore[T]) Delete(ctx context.Context, key string) error {
	if m.deleteError != nil {
		return m.deleteError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.data[key]; !exists {
		return errors.NewNotFoundError(m.entityType(), key)
	}
	delete(m.data, key)
	return nil
}

// Helper methods for testing

// SetData directly sets the internal data map (for testing)
func (m *DataStore[T]) SetData(data map[string]T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = data
}

// GetData returns a copy of the internal data map (for testing)
func (m *DataStore[T]) GetData() map[string]T {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[string]T, len(m.data))
	for k, v := range m.data {
		result[k] = v
	}
	return result
}

// Count returns the number of stored entities
func (m *DataStore[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// Clear removes all data
func (m *DataStore[T]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string]T)
}

func (m *DataStore[T]) selectItems(params *storagemodels.QueryParams) ([]string, []T) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if params != nil && params.EntityType != "" && params.EntityType != m.entityType() {
		return nil, nil
	}

	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		if params != nil && !strings.HasPrefix(k, params.KeyPrefix) {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if params.Descending() {
		for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
			keys[i], keys[j] = keys[j], keys[i]
		}
	}
	if params != nil && params.Limit != nil && *params.Limit >= 0 && int(*params.Limit) < len(keys) {
		keys = keys[:*params.Limit]
	}

	items := make([]T, len(keys))
	for i, k := range keys {
		items[i] = m.data[k]
	}
	return keys, items
}

// extractKey returns the key an entity is stored under
func (m *DataStore[T]) extractKey(entity T) (string, error) {
	if m.getKeyFunc != nil {
		if key := m.getKeyFunc(entity); key != "" {
			return key, nil
		}
		return "", errors.NewValidationError("key", "unable to extract key from entity")
	}

	indexMap, ok := registry.GetIndexMap[T]()
	if !ok {
		return "", fmt.Errorf("%w: %s", errors.ErrNoIndexMap, m.entityType())
	}
	expanded, err := datastore.ExpandKeys(map[string]string{"SK": indexMap["SK"]}, entity)
	if err != nil {
		return "", err
	}
	return expanded["SK"], nil
}

func (m *DataStore[T]) entityType() string {
	if name, ok := registry.EntityTypeOf[T](); ok {
		return name
	}
	var zero T
	return fmt.Sprintf("%T", zero)
}
