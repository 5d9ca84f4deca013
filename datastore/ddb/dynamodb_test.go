/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-openapi/strfmt"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/kaseyaschema/errors"
	"github.com/suparena/kaseyaschema/kaseya"
	"github.com/suparena/kaseyaschema/storagemodels"
)

func newAgentStore(t *testing.T) (*DynamodbDataStore[kaseya.Agent], *fakeAPI) {
	t.Helper()
	api := newFakeAPI()
	store, err := NewWithClient[kaseya.Agent](api, "kaseya", zerolog.Nop())
	require.NoError(t, err)
	return store, api
}

func sampleAgent() kaseya.Agent {
	return kaseya.Agent{
		AgentID:      381223,
		AgentName:    "edge-fw-01.root.acme",
		Online:       1,
		OSType:       "Windows",
		FirstCheckIn: strfmt.DateTime(time.Date(2024, 3, 1, 8, 30, 0, 0, time.UTC)),
		Attributes:   map[string]any{"Rack": "B4"},
	}
}

func TestNewWithClient(t *testing.T) {
	_, err := NewWithClient[kaseya.Agent](newFakeAPI(), "", zerolog.Nop())
	assert.True(t, errors.IsValidationError(err))

	type unbound struct{ ID string }
	_, err = NewWithClient[unbound](newFakeAPI(), "kaseya", zerolog.Nop())
	assert.True(t, errors.IsConfigurationError(err))

	_, err = NewWithClient[kaseya.AgentLog](newFakeAPI(), "kaseya", zerolog.Nop())
	assert.True(t, stderrors.Is(err, errors.ErrNoIndexMap))

	store, err := NewWithClient[kaseya.Ticket](newFakeAPI(), "kaseya", zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "Ticket", store.EntityType())
}

func TestPutGetDelete(t *testing.T) {
	ctx := context.Background()
	store, api := newAgentStore(t)

	require.NoError(t, store.Put(ctx, sampleAgent()))

	item := api.items["Agent|381223"]
	require.NotNil(t, item, "item stored under the entity partition")
	assert.Equal(t, "Agent", s(item[AttrEntityType]))
	assert.Equal(t, "edge-fw-01.root.acme", s(item["AgentName"]))
	assert.Equal(t, "2024-03-01T08:30:00.000Z", s(item["FirstCheckIn"]))
	online, ok := item["Online"].(*types.AttributeValueMemberN)
	require.True(t, ok)
	assert.Equal(t, "1", online.Value)

	got, err := store.GetOne(ctx, "381223")
	require.NoError(t, err)
	want := sampleAgent()
	assert.Equal(t, want.AgentID, got.AgentID)
	assert.Equal(t, want.AgentName, got.AgentName)
	assert.Equal(t, want.Attributes, got.Attributes)
	assert.True(t, time.Time(want.FirstCheckIn).Equal(time.Time(got.FirstCheckIn)))

	require.NoError(t, store.Delete(ctx, "381223"))
	_, err = store.GetOne(ctx, "381223")
	assert.True(t, errors.IsNotFound(err))

	_, err = store.GetOne(ctx, "")
	assert.True(t, errors.IsValidationError(err))
	assert.True(t, errors.IsValidationError(store.Delete(ctx, "")))
}

func TestPutRejectsIncompleteKey(t *testing.T) {
	store, err := NewWithClient[kaseya.Document](newFakeAPI(), "kaseya", zerolog.Nop())
	require.NoError(t, err)

	err = store.Put(context.Background(), kaseya.Document{Name: "runbook.pdf"})
	assert.True(t, errors.IsValidationError(err), "ParentPath is part of the key: %v", err)

	require.NoError(t, store.Put(context.Background(), kaseya.Document{ParentPath: "ops", Name: "runbook.pdf"}))
	_, err = store.GetOne(context.Background(), "ops/runbook.pdf")
	assert.NoError(t, err)
}

func putTickets(t *testing.T, api *fakeAPI, n int) {
	t.Helper()
	store, err := NewWithClient[kaseya.Ticket](api, "kaseya", zerolog.Nop())
	require.NoError(t, err)
	for i := 1; i <= n; i++ {
		require.NoError(t, store.Put(context.Background(), kaseya.Ticket{
			ServiceDeskID:       12,
			ServiceDeskTicketID: float64(i),
			TicketRef:           "CS-" + string(rune('0'+i)),
		}))
	}
}

func TestQuery(t *testing.T) {
	ctx := context.Background()
	store, api := newAgentStore(t)
	require.NoError(t, store.Put(ctx, sampleAgent()))
	putTickets(t, api, 3)
	api.put(map[string]types.AttributeValue{
		AttrPK:         &types.AttributeValueMemberS{Value: "Widget"},
		AttrSK:         &types.AttributeValueMemberS{Value: "1"},
		AttrEntityType: &types.AttributeValueMemberS{Value: "Widget"},
		"Color":        &types.AttributeValueMemberS{Value: "red"},
	})

	t.Run("OwnPartition", func(t *testing.T) {
		results, err := store.Query(ctx, nil)
		require.NoError(t, err)
		require.Len(t, results, 1)
		agent, ok := results[0].(*kaseya.Agent)
		require.True(t, ok, "got %T", results[0])
		assert.Equal(t, "edge-fw-01.root.acme", agent.AgentName)
	})

	t.Run("OtherPartition", func(t *testing.T) {
		results, err := store.Query(ctx, &storagemodels.QueryParams{EntityType: "Ticket", ScanIndexForward: aws.Bool(false)})
		require.NoError(t, err)
		require.Len(t, results, 3)
		first, ok := results[0].(*kaseya.Ticket)
		require.True(t, ok, "got %T", results[0])
		assert.Equal(t, float64(3), first.ServiceDeskTicketID)
	})

	t.Run("PrefixAndLimit", func(t *testing.T) {
		results, err := store.Query(ctx, &storagemodels.QueryParams{EntityType: "Ticket", KeyPrefix: "12#2"})
		require.NoError(t, err)
		require.Len(t, results, 1)

		results, err = store.Query(ctx, &storagemodels.QueryParams{EntityType: "Ticket", Limit: aws.Int32(2)})
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("UnregisteredType", func(t *testing.T) {
		results, err := store.Query(ctx, &storagemodels.QueryParams{EntityType: "Widget"})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, map[string]any{"Color": "red"}, results[0])
	})

	t.Run("MissingEntityType", func(t *testing.T) {
		api.put(map[string]types.AttributeValue{
			AttrPK: &types.AttributeValueMemberS{Value: "Orphan"},
			AttrSK: &types.AttributeValueMemberS{Value: "1"},
		})
		_, err := store.Query(ctx, &storagemodels.QueryParams{EntityType: "Orphan"})
		assert.ErrorContains(t, err, "missing EntityType")
	})

	t.Run("ClientError", func(t *testing.T) {
		api.queryErrs = []error{stderrors.New("boom")}
		_, err := store.Query(ctx, nil)
		assert.ErrorContains(t, err, "query error: boom")
	})
}

func TestCodecDropsKeyAttributes(t *testing.T) {
	item, err := marshalItem(kaseya.ScriptPrompts{Name: "Target", Value: "C:"})
	require.NoError(t, err)
	item[AttrPK] = &types.AttributeValueMemberS{Value: "ScriptPrompts"}
	item[AttrEntityType] = &types.AttributeValueMemberS{Value: "ScriptPrompts"}

	doc := map[string]any{}
	require.NoError(t, unmarshalItem(item, &doc))
	assert.Equal(t, map[string]any{"Caption": "", "Name": "Target", "Value": "C:"}, doc)
}

func TestTable(t *testing.T) {
	ctx := context.Background()
	store, api := newAgentStore(t)
	require.NoError(t, store.Put(ctx, sampleAgent()))
	putTickets(t, api, 2)

	table := NewTable(api, "kaseya", zerolog.Nop())

	obj, err := table.Get(ctx, "Agent", "381223")
	require.NoError(t, err)
	agent, ok := obj.(*kaseya.Agent)
	require.True(t, ok, "got %T", obj)
	assert.Equal(t, "edge-fw-01.root.acme", agent.AgentName)

	_, err = table.Get(ctx, "Agent", "1")
	assert.True(t, errors.IsNotFound(err))
	_, err = table.Get(ctx, "", "1")
	assert.True(t, errors.IsValidationError(err))

	results, err := table.Query(ctx, &storagemodels.QueryParams{EntityType: "Ticket"})
	require.NoError(t, err)
	assert.Len(t, results, 2)

	_, err = table.Query(ctx, &storagemodels.QueryParams{})
	assert.True(t, errors.IsValidationError(err))
}
