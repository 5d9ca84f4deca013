/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/kaseyaschema/errors"
	"github.com/suparena/kaseyaschema/registry"
	"github.com/suparena/kaseyaschema/storagemodels"
)

// Query reads one page of an entity type partition. It uses the injected EntityType
// attribute to allocate the Go type registered for each item, so a store for one type
// can read any other partition. Items of an unregistered type decode into a generic map.
func (d *DynamodbDataStore[T]) Query(ctx context.Context, params *storagemodels.QueryParams) ([]any, error) {
	return queryItems(ctx, d.client, d.queryInput(params))
}

func (d *DynamodbDataStore[T]) queryInput(params *storagemodels.QueryParams) *sdk.QueryInput {
	return buildQueryInput(d.tableName, d.partition(params), params)
}

func (d *DynamodbDataStore[T]) partition(params *storagemodels.QueryParams) string {
	if params != nil && params.EntityType != "" {
		return params.EntityType
	}
	return d.entityType
}

func queryItems(ctx context.Context, client API, input *sdk.QueryInput) ([]any, error) {
	out, err := client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}

	results := make([]any, 0, len(out.Items))
	for _, item := range out.Items {
		obj, err := decodeAny(item)
		if err != nil {
			return nil, err
		}
		results = append(results, obj)
	}
	return results, nil
}

func buildQueryInput(tableName, entityType string, params *storagemodels.QueryParams) *sdk.QueryInput {
	if params == nil {
		params = &storagemodels.QueryParams{}
	}

	keyCond := "PK = :pk"
	exprVals := map[string]types.AttributeValue{
		":pk": &types.AttributeValueMemberS{Value: entityType},
	}
	if params.KeyPrefix != "" {
		keyCond += " AND begins_with(SK, :prefix)"
		exprVals[":prefix"] = &types.AttributeValueMemberS{Value: params.KeyPrefix}
	}

	return &sdk.QueryInput{
		TableName:                 aws.String(tableName),
		KeyConditionExpression:    &keyCond,
		ExpressionAttributeValues: exprVals,
		Limit:                     params.Limit,
		ExclusiveStartKey:         params.ExclusiveStartKey,
		ScanIndexForward:          params.ScanIndexForward,
	}
}

func decodeAny(item map[string]types.AttributeValue) (any, error) {
	entityType, err := stringAttr(item, AttrEntityType)
	if err != nil {
		return nil, err
	}

	obj, err := registry.NewInstance(entityType)
	if errors.IsConfigurationError(err) {
		generic := make(map[string]any)
		if err := unmarshalItem(item, &generic); err != nil {
			return nil, fmt.Errorf("failed to unmarshal generic item: %w", err)
		}
		return generic, nil
	}
	if err != nil {
		return nil, err
	}

	if err := unmarshalItem(item, obj); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item for EntityType %q: %w", entityType, err)
	}
	return obj, nil
}
