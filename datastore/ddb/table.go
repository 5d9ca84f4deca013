/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"

	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/rs/zerolog"

	"github.com/suparena/kaseyaschema/errors"
	"github.com/suparena/kaseyaschema/storagemodels"
)

// Table reads snapshots of any entity type from the snapshot table. Items decode
// into the Go type registered for their EntityType.
type Table struct {
	client    API
	tableName string
	logger    zerolog.Logger
}

// NewTable returns a reader over tableName.
func NewTable(client API, tableName string, logger zerolog.Logger) *Table {
	return &Table{client: client, tableName: tableName, logger: logger}
}

// Get returns the snapshot of entityType stored under key.
func (t *Table) Get(ctx context.Context, entityType, key string) (any, error) {
	if entityType == "" || key == "" {
		return nil, errors.NewValidationError("key", "entity type and key are required")
	}

	out, err := t.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: &t.tableName,
		Key:       itemKey(entityType, key),
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		return nil, errors.NewNotFoundError(entityType, key)
	}
	return decodeAny(out.Item)
}

// Query reads one page of the partition named by params.EntityType.
func (t *Table) Query(ctx context.Context, params *storagemodels.QueryParams) ([]any, error) {
	if params == nil || params.EntityType == "" {
		return nil, errors.NewValidationError("EntityType", "entity type is required")
	}
	t.logger.Debug().Str("entity_type", params.EntityType).Str("prefix", params.KeyPrefix).Msg("querying snapshots")
	return queryItems(ctx, t.client, buildQueryInput(t.tableName, params.EntityType, params))
}
