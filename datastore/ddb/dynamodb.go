/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog"

	"github.com/suparena/kaseyaschema/datastore"
	"github.com/suparena/kaseyaschema/errors"
	"github.com/suparena/kaseyaschema/registry"
)

// Attribute names of the single-table layout.
const (
	AttrPK         = "PK"
	AttrSK         = "SK"
	AttrEntityType = "EntityType"
)

// API is the subset of the DynamoDB client used by the store. *dynamodb.Client satisfies it.
type API interface {
	GetItem(ctx context.Context, params *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error)
	PutItem(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *sdk.DeleteItemInput, optFns ...func(*sdk.Options)) (*sdk.DeleteItemOutput, error)
	Query(ctx context.Context, params *sdk.QueryInput, optFns ...func(*sdk.Options)) (*sdk.QueryOutput, error)
}

// Options configures the DynamoDB client and table.
type Options struct {
	Table           string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	// Endpoint overrides the service endpoint, e.g. DynamoDB Local.
	Endpoint string
	Logger   zerolog.Logger
}

// DynamodbDataStore implements datastore.DataStore[T] on a single DynamoDB table.
// Every entity type owns the partition named after it. The sort key is the SK
// template bound to T, expanded against the entity.
type DynamodbDataStore[T any] struct {
	client     API
	tableName  string
	entityType string
	skTemplate string
	logger     zerolog.Logger
}

var _ datastore.DataStore[struct{}] = (*DynamodbDataStore[struct{}])(nil)

// NewDynamoDBClient initializes a DynamoDB client. Static credentials are used when an
// access key is set, the default credential chain otherwise.
func NewDynamoDBClient(ctx context.Context, opts Options) (*sdk.Client, error) {
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(opts.Region),
	}
	if opts.AccessKeyID != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := sdk.NewFromConfig(cfg, func(o *sdk.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	})

	opts.Logger.Debug().
		Str("table", opts.Table).
		Str("region", opts.Region).
		Str("endpoint", opts.Endpoint).
		Msg("DynamoDB client initialized")
	return client, nil
}

// NewDynamodbDataStore constructs a new DynamodbDataStore for type T.
func NewDynamodbDataStore[T any](ctx context.Context, opts Options) (*DynamodbDataStore[T], error) {
	client, err := NewDynamoDBClient(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}
	return NewWithClient[T](client, opts.Table, opts.Logger)
}

// NewWithClient constructs a store for T on an existing client.
// T must be bound to an entity type with a storage key.
func NewWithClient[T any](client API, tableName string, logger zerolog.Logger) (*DynamodbDataStore[T], error) {
	if tableName == "" {
		return nil, errors.NewValidationError("table", "table name is required")
	}

	binding, ok := registry.GetBinding[T]()
	if !ok {
		var zero T
		return nil, errors.NewConfigurationError(fmt.Sprintf("%T", zero))
	}
	indexMap, ok := registry.GetIndexMap[T]()
	if !ok || indexMap[AttrSK] == "" {
		return nil, fmt.Errorf("%w: %s", errors.ErrNoIndexMap, binding.EntityType)
	}

	return &DynamodbDataStore[T]{
		client:     client,
		tableName:  tableName,
		entityType: binding.EntityType,
		skTemplate: indexMap[AttrSK],
		logger:     logger.With().Str("entity_type", binding.EntityType).Logger(),
	}, nil
}

// EntityType returns the partition the store writes to.
func (d *DynamodbDataStore[T]) EntityType() string {
	return d.entityType
}

// GetOne retrieves the snapshot stored under key.
func (d *DynamodbDataStore[T]) GetOne(ctx context.Context, key string) (*T, error) {
	if key == "" {
		return nil, errors.NewValidationError("key", "key is required")
	}

	out, err := d.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: &d.tableName,
		Key:       itemKey(d.entityType, key),
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		return nil, errors.NewNotFoundError(d.entityType, key)
	}

	result := new(T)
	if err := unmarshalItem(out.Item, result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s %q: %w", d.entityType, key, err)
	}
	return result, nil
}

// Put stores entity under its expanded sort key, replacing any previous snapshot.
func (d *DynamodbDataStore[T]) Put(ctx context.Context, entity T) error {
	keys, err := datastore.ExpandKeys(map[string]string{AttrSK: d.skTemplate}, entity)
	if err != nil {
		return err
	}
	sk := keys[AttrSK]

	av, err := marshalItem(entity)
	if err != nil {
		return fmt.Errorf("failed to marshal entity: %w", err)
	}
	for k, v := range itemKey(d.entityType, sk) {
		av[k] = v
	}
	av[AttrEntityType] = &types.AttributeValueMemberS{Value: d.entityType}

	_, err = d.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: &d.tableName,
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("PutItem failed: %w", err)
	}

	d.logger.Debug().Str("key", sk).Msg("snapshot stored")
	return nil
}

// Delete removes the snapshot stored under key.
func (d *DynamodbDataStore[T]) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("key", "key is required")
	}

	_, err := d.client.DeleteItem(ctx, &sdk.DeleteItemInput{
		TableName: &d.tableName,
		Key:       itemKey(d.entityType, key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete item in DynamoDB: %w", err)
	}

	d.logger.Debug().Str("key", key).Msg("snapshot deleted")
	return nil
}

func itemKey(entityType, sk string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		AttrPK: &types.AttributeValueMemberS{Value: entityType},
		AttrSK: &types.AttributeValueMemberS{Value: sk},
	}
}
