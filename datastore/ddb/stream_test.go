/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/kaseyaschema/errors"
	"github.com/suparena/kaseyaschema/kaseya"
	"github.com/suparena/kaseyaschema/storagemodels"
)

func newTicketStream(t *testing.T, n int) (*DynamodbDataStore[kaseya.Ticket], *fakeAPI) {
	t.Helper()
	api := newFakeAPI()
	putTickets(t, api, n)
	store, err := NewWithClient[kaseya.Ticket](api, "kaseya", zerolog.Nop())
	require.NoError(t, err)
	return store, api
}

func TestStreamWithOptions(t *testing.T) {
	ctx := context.Background()

	t.Run("Pages", func(t *testing.T) {
		store, api := newTicketStream(t, 5)

		var reports []storagemodels.StreamProgress
		var keys []string
		for res := range store.Stream(ctx, nil,
			storagemodels.WithPageSize(2),
			storagemodels.WithBufferSize(1),
			storagemodels.WithProgressHandler(func(p storagemodels.StreamProgress) { reports = append(reports, p) }),
		) {
			require.NoError(t, res.Error)
			assert.Equal(t, int64(len(keys)), res.Meta.Index)
			assert.Equal(t, len(keys)/2+1, res.Meta.PageNumber)
			require.NotNil(t, res.Raw)
			keys = append(keys, res.Key)
		}

		assert.Equal(t, []string{"12#1", "12#2", "12#3", "12#4", "12#5"}, keys)
		assert.Equal(t, 3, api.queries)
		require.NotEmpty(t, reports)
		final := reports[len(reports)-1]
		assert.True(t, final.Done)
		assert.Equal(t, int64(5), final.ItemsProcessed)
		assert.Equal(t, 3, final.PagesProcessed)
		assert.Equal(t, "Ticket", final.EntityType)
	})

	t.Run("Prefix", func(t *testing.T) {
		store, _ := newTicketStream(t, 3)
		var got []float64
		for res := range store.Stream(ctx, &storagemodels.QueryParams{KeyPrefix: "12#3"}) {
			require.NoError(t, res.Error)
			got = append(got, res.Item.ServiceDeskTicketID)
		}
		assert.Equal(t, []float64{3}, got)
	})

	t.Run("ForeignPartition", func(t *testing.T) {
		store, api := newTicketStream(t, 2)

		var results []storagemodels.StreamResult[kaseya.Ticket]
		for res := range store.Stream(ctx, &storagemodels.QueryParams{EntityType: "Agent"}) {
			results = append(results, res)
		}
		require.Len(t, results, 1)
		assert.True(t, errors.IsValidationError(results[0].Error), "got %v", results[0].Error)
		assert.Equal(t, 0, api.queries)
	})

	t.Run("OwnPartitionByName", func(t *testing.T) {
		store, _ := newTicketStream(t, 2)
		count := 0
		for res := range store.Stream(ctx, &storagemodels.QueryParams{EntityType: "Ticket"}) {
			require.NoError(t, res.Error)
			count++
		}
		assert.Equal(t, 2, count)
	})

	t.Run("RetryThrottled", func(t *testing.T) {
		store, api := newTicketStream(t, 2)
		api.queryErrs = []error{&types.ProvisionedThroughputExceededException{}}

		count := 0
		for res := range store.Stream(ctx, nil, storagemodels.WithRetryBackoff(time.Millisecond)) {
			require.NoError(t, res.Error)
			count++
		}
		assert.Equal(t, 2, count)
		assert.Equal(t, 2, api.queries)
	})

	t.Run("FatalError", func(t *testing.T) {
		store, api := newTicketStream(t, 2)
		api.queryErrs = []error{stderrors.New("access denied")}

		var results []storagemodels.StreamResult[kaseya.Ticket]
		for res := range store.Stream(ctx, nil) {
			results = append(results, res)
		}
		require.Len(t, results, 1)
		assert.ErrorContains(t, results[0].Error, "access denied")
		assert.Equal(t, 1, api.queries, "non-retryable errors are not retried")
	})

	t.Run("ErrorHandler", func(t *testing.T) {
		store, api := newTicketStream(t, 2)
		api.queryErrs = []error{stderrors.New("transient")}

		handled := 0
		count := 0
		for res := range store.Stream(ctx, nil,
			storagemodels.WithMaxRetries(0),
			storagemodels.WithErrorHandler(func(err error) bool {
				handled++
				return true
			}),
		) {
			require.NoError(t, res.Error)
			count++
		}
		assert.Equal(t, 1, handled)
		assert.Equal(t, 2, count)
	})

	t.Run("ContextCancellation", func(t *testing.T) {
		store, _ := newTicketStream(t, 5)
		cancelCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		count := 0
		for range store.Stream(cancelCtx, nil, storagemodels.WithPageSize(1), storagemodels.WithBufferSize(0)) {
			count++
			if count == 1 {
				cancel()
			}
		}
		assert.Less(t, count, 5)
	})
}

func TestIsRetryableError(t *testing.T) {
	assert.True(t, isRetryableError(&types.RequestLimitExceeded{}))
	assert.True(t, isRetryableError(&types.InternalServerError{}))
	assert.False(t, isRetryableError(stderrors.New("validation")))
}
