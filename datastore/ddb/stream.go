/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/kaseyaschema/errors"
	"github.com/suparena/kaseyaschema/storagemodels"
)

// Stream reads every page of the partition selected by params and delivers the items
// decoded as T. Throttled pages are retried with backoff. A page that still fails is
// passed to the error handler, which may ask for the page to be read again. Otherwise
// the stream ends with an error result. Unlike Query, Stream only reads the partition
// of T; any other params.EntityType yields a single ValidationError result.
func (d *DynamodbDataStore[T]) Stream(ctx context.Context, params *storagemodels.QueryParams, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[T] {
	options := storagemodels.ApplyStreamOptions(opts...)
	resultCh := make(chan storagemodels.StreamResult[T], options.BufferSize)

	go d.streamWorker(ctx, params, options, resultCh)

	return resultCh
}

func (d *DynamodbDataStore[T]) streamWorker(
	ctx context.Context,
	params *storagemodels.QueryParams,
	options storagemodels.StreamOptions,
	resultCh chan<- storagemodels.StreamResult[T],
) {
	defer close(resultCh)

	input := d.queryInput(params)
	input.Limit = aws.Int32(options.PageSize)

	progress := storagemodels.StreamProgress{
		EntityType: d.partition(params),
		StartTime:  time.Now(),
	}
	reportProgress := func() {
		if options.ProgressHandler == nil {
			return
		}
		if elapsed := time.Since(progress.StartTime).Seconds(); elapsed > 0 {
			progress.CurrentRate = float64(progress.ItemsProcessed) / elapsed
		}
		options.ProgressHandler(progress)
	}

	send := func(res storagemodels.StreamResult[T]) bool {
		select {
		case <-ctx.Done():
			return false
		case resultCh <- res:
			return true
		}
	}

	if entityType := d.partition(params); entityType != d.entityType {
		send(storagemodels.StreamResult[T]{
			Error: errors.NewValidationError("EntityType",
				fmt.Sprintf("store for %s cannot stream partition %s", d.entityType, entityType)),
			Meta: storagemodels.StreamMeta{Timestamp: time.Now()},
		})
		return
	}

	pageNumber := 0
	for {
		if ctx.Err() != nil {
			return
		}

		out, err := d.queryWithRetry(ctx, input, options)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			progress.Errors = append(progress.Errors, err)
			if options.ErrorHandler != nil && options.ErrorHandler(err) {
				continue
			}
			send(storagemodels.StreamResult[T]{
				Error: fmt.Errorf("query failed: %w", err),
				Meta: storagemodels.StreamMeta{
					Index:      progress.ItemsProcessed,
					PageNumber: pageNumber + 1,
					Timestamp:  time.Now(),
				},
			})
			return
		}
		pageNumber++

		for _, item := range out.Items {
			res := d.processItem(item, progress.ItemsProcessed, pageNumber)
			if res.Error != nil {
				progress.Errors = append(progress.Errors, res.Error)
			}
			if !send(res) {
				return
			}
			progress.ItemsProcessed++
		}

		progress.PagesProcessed++
		reportProgress()

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	progress.Done = true
	reportProgress()
}

// queryWithRetry executes a query with linear backoff on retryable errors
func (d *DynamodbDataStore[T]) queryWithRetry(
	ctx context.Context,
	input *sdk.QueryInput,
	options storagemodels.StreamOptions,
) (*sdk.QueryOutput, error) {
	var lastErr error

	for attempt := 0; attempt <= options.MaxRetries; attempt++ {
		out, err := d.client.Query(ctx, input)
		if err == nil {
			return out, nil
		}
		lastErr = err

		if !isRetryableError(err) {
			return nil, err
		}
		if attempt == options.MaxRetries {
			break
		}

		backoff := time.Duration(attempt+1) * options.RetryBackoff
		d.logger.Warn().Err(err).Int("attempt", attempt+1).Dur("backoff", backoff).Msg("query throttled, retrying")
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, fmt.Errorf("query failed after %d retries: %w", options.MaxRetries, lastErr)
}

func (d *DynamodbDataStore[T]) processItem(item map[string]types.AttributeValue, index int64, pageNumber int) storagemodels.StreamResult[T] {
	res := storagemodels.StreamResult[T]{
		Raw: item,
		Meta: storagemodels.StreamMeta{
			Index:      index,
			PageNumber: pageNumber,
			Timestamp:  time.Now(),
		},
	}

	key, err := stringAttr(item, AttrSK)
	if err != nil {
		res.Error = err
		return res
	}
	res.Key = key

	if err := unmarshalItem(item, &res.Item); err != nil {
		res.Error = fmt.Errorf("failed to unmarshal %q: %w", key, err)
	}
	return res
}

// isRetryableError determines if a DynamoDB error is retryable
func isRetryableError(err error) bool {
	var throughput *types.ProvisionedThroughputExceededException
	var limit *types.RequestLimitExceeded
	var internal *types.InternalServerError
	if stderrors.As(err, &throughput) || stderrors.As(err, &limit) || stderrors.As(err, &internal) {
		return true
	}

	var retryable interface{ RetryableError() bool }
	if stderrors.As(err, &retryable) {
		return retryable.RetryableError()
	}
	return false
}
