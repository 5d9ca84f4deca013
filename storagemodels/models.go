/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// QueryParams selects snapshots from one entity type partition.
type QueryParams struct {
	// EntityType is the catalogue name of the partition to read.
	// Empty means the entity type the store is bound to.
	EntityType string
	// KeyPrefix keeps only snapshots whose key begins with the prefix.
	KeyPrefix string
	// Limit defines an optional limit per query page.
	Limit *int32
	// ExclusiveStartKey for pagination
	ExclusiveStartKey map[string]types.AttributeValue
	// ScanIndexForward specifies the order of keys.
	// If true (default), results are in ascending key order.
	ScanIndexForward *bool
}

// Descending reports whether results are requested in descending key order.
func (p *QueryParams) Descending() bool {
	return p != nil && p.ScanIndexForward != nil && !*p.ScanIndexForward
}
