/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/suparena/kaseyaschema/storagemodels"
)

// DataStore keeps snapshots of one entity instance type T. Keys are the expanded sort
// key of the entity, as produced by ExpandKeys.
type DataStore[T any] interface {
	GetOne(ctx context.Context, key string) (*T, error)

	Put(ctx context.Context, entity T) error

	// Query returns pointers to the decoded snapshots of a partition, in key order.
	Query(ctx context.Context, params *storagemodels.QueryParams) ([]any, error)

	Stream(ctx context.Context, params *storagemodels.QueryParams, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[T]

	Delete(ctx context.Context, key string) error
}
