/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mock_test

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/suparena/kaseyaschema/datastore/mock"
	"github.com/suparena/kaseyaschema/errors"
	"github.com/suparena/kaseyaschema/kaseya"
	"github.com/suparena/kaseyaschema/storagemodels"
)

type TestEntity struct {
	ID   string
	Name string
}

func tickets() []kaseya.Ticket {
	return []kaseya.Ticket{
		{ServiceDeskID: 12, ServiceDeskTicketID: 3051, TicketRef: "CS-3051"},
		{ServiceDeskID: 12, ServiceDeskTicketID: 17, TicketRef: "CS-17"},
		{ServiceDeskID: 4, ServiceDeskTicketID: 99, TicketRef: "HR-99"},
	}
}

func TestMockDataStore(t *testing.T) {
	ctx := context.Background()

	t.Run("BasicOperations", func(t *testing.T) {
		mockStore := mock.New[TestEntity]().
			WithGetKeyFunc(func(e TestEntity) string { return e.ID })

		entity := TestEntity{ID: "123", Name: "Test"}
		if err := mockStore.Put(ctx, entity); err != nil {
			t.Fatalf("Put failed: %v", err)
		}

		retrieved, err := mockStore.GetOne(ctx, "123")
		if err != nil {
			t.Fatalf("GetOne failed: %v", err)
		}
		if retrieved.ID != "123" || retrieved.Name != "Test" {
			t.Fatalf("Retrieved entity mismatch: %+v", retrieved)
		}

		if err := mockStore.Delete(ctx, "123"); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}

		_, err = mockStore.GetOne(ctx, "123")
		if !errors.IsNotFound(err) {
			t.Fatalf("Expected not found error, got: %v", err)
		}
		if err := mockStore.Delete(ctx, "123"); !errors.IsNotFound(err) {
			t.Fatalf("Expected not found on second delete, got: %v", err)
		}
	})

	t.Run("RegistryKeys", func(t *testing.T) {
		mockStore := mock.New[kaseya.Ticket]()
		for _, tk := range tickets() {
			if err := mockStore.Put(ctx, tk); err != nil {
				t.Fatalf("Put failed: %v", err)
			}
		}

		got, err := mockStore.GetOne(ctx, "12#3051")
		if err != nil {
			t.Fatalf("GetOne failed: %v", err)
		}
		if got.TicketRef != "CS-3051" {
			t.Fatalf("Expected CS-3051, got %q", got.TicketRef)
		}

		_, err = mockStore.GetOne(ctx, "12#1")
		var nf *errors.NotFoundError
		if !stderrors.As(err, &nf) || nf.Type != "Ticket" {
			t.Fatalf("Expected Ticket not found error, got: %v", err)
		}
	})

	t.Run("UnboundType", func(t *testing.T) {
		err := mock.New[TestEntity]().Put(ctx, TestEntity{ID: "1"})
		if !stderrors.Is(err, errors.ErrNoIndexMap) {
			t.Fatalf("Expected ErrNoIndexMap, got: %v", err)
		}

		err = mock.New[kaseya.AgentLog]().Put(ctx, kaseya.AgentLog{Event: "boot"})
		if !stderrors.Is(err, errors.ErrNoIndexMap) {
			t.Fatalf("Expected ErrNoIndexMap for keyless entity, got: %v", err)
		}
	})

	t.Run("EmptyKey", func(t *testing.T) {
		mockStore := mock.New[TestEntity]().
			WithGetKeyFunc(func(e TestEntity) string { return e.ID })
		if err := mockStore.Put(ctx, TestEntity{Name: "anon"}); !errors.IsValidationError(err) {
			t.Fatalf("Expected validation error, got: %v", err)
		}
	})

	t.Run("ErrorSimulation", func(t *testing.T) {
		mockStore := mock.New[TestEntity]()

		putErr := errors.NewValidationError("name", "required")
		mockStore.WithPutError(putErr)

		err := mockStore.Put(ctx, TestEntity{ID: "123", Name: "Test"})
		if err != putErr {
			t.Fatalf("Expected put error, got: %v", err)
		}

		deleteErr := errors.NewNotFoundError("TestEntity", "123")
		mockStore.WithDeleteError(deleteErr)

		err = mockStore.Delete(ctx, "123")
		if err != deleteErr {
			t.Fatalf("Expected delete error, got: %v", err)
		}
	})

	t.Run("QueryOrderAndPrefix", func(t *testing.T) {
		mockStore := mock.New[kaseya.Ticket]()
		for _, tk := range tickets() {
			mockStore.Put(ctx, tk)
		}

		results, err := mockStore.Query(ctx, &storagemodels.QueryParams{})
		if err != nil {
			t.Fatalf("Query failed: %v", err)
		}
		want := []string{"CS-17", "CS-3051", "HR-99"}
		if len(results) != len(want) {
			t.Fatalf("Expected %d results, got %d", len(want), len(results))
		}
		for i, r := range results {
			tk, ok := r.(*kaseya.Ticket)
			if !ok {
				t.Fatalf("Expected *kaseya.Ticket, got %T", r)
			}
			if tk.TicketRef != want[i] {
				t.Fatalf("Result %d: expected %s, got %s", i, want[i], tk.TicketRef)
			}
		}

		results, _ = mockStore.Query(ctx, &storagemodels.QueryParams{KeyPrefix: "12#", Limit: aws.Int32(1)})
		if len(results) != 1 || results[0].(*kaseya.Ticket).TicketRef != "CS-17" {
			t.Fatalf("Unexpected prefix query result: %+v", results)
		}

		results, _ = mockStore.Query(ctx, &storagemodels.QueryParams{ScanIndexForward: aws.Bool(false)})
		if results[0].(*kaseya.Ticket).TicketRef != "HR-99" {
			t.Fatalf("Expected descending order, got %+v", results[0])
		}

		results, _ = mockStore.Query(ctx, &storagemodels.QueryParams{EntityType: "Agent"})
		if len(results) != 0 {
			t.Fatalf("Expected no results for another partition, got %d", len(results))
		}
	})

	t.Run("Stream", func(t *testing.T) {
		mockStore := mock.New[kaseya.Ticket]()
		for _, tk := range tickets() {
			mockStore.Put(ctx, tk)
		}

		streamCtx, cancel := context.WithTimeout(ctx, time.Second)
		defer cancel()

		var last storagemodels.StreamProgress
		resultChan := mockStore.Stream(streamCtx, &storagemodels.QueryParams{KeyPrefix: "12#"},
			storagemodels.WithPageSize(1),
			storagemodels.WithProgressHandler(func(p storagemodels.StreamProgress) { last = p }),
		)

		var keys []string
		for result := range resultChan {
			if result.Error != nil {
				t.Fatalf("Stream error: %v", result.Error)
			}
			if result.Meta.Index != int64(len(keys)) || result.Meta.PageNumber != len(keys)+1 {
				t.Fatalf("Unexpected meta %+v", result.Meta)
			}
			keys = append(keys, result.Key)
		}
		if len(keys) != 2 || keys[0] != "12#17" || keys[1] != "12#3051" {
			t.Fatalf("Unexpected streamed keys: %v", keys)
		}
		if !last.Done || last.ItemsProcessed != 2 || last.PagesProcessed != 2 || last.EntityType != "Ticket" {
			t.Fatalf("Unexpected final progress: %+v", last)
		}
	})

	t.Run("StreamForeignPartition", func(t *testing.T) {
		mockStore := mock.New[kaseya.Ticket]()
		for _, tk := range tickets() {
			mockStore.Put(ctx, tk)
		}

		var results []storagemodels.StreamResult[kaseya.Ticket]
		for result := range mockStore.Stream(ctx, &storagemodels.QueryParams{EntityType: "Agent"}) {
			results = append(results, result)
		}
		if len(results) != 1 || !errors.IsValidationError(results[0].Error) {
			t.Fatalf("Expected one validation error, got %+v", results)
		}
	})

	t.Run("CustomQueryFunction", func(t *testing.T) {
		mockStore := mock.New[TestEntity]()
		mockStore.WithQueryFunc(func(ctx context.Context, params *storagemodels.QueryParams) ([]any, error) {
			return []any{&TestEntity{ID: "1", Name: "Filtered"}}, nil
		})

		results, err := mockStore.Query(ctx, &storagemodels.QueryParams{EntityType: "TestEntity"})
		if err != nil {
			t.Fatalf("Query failed: %v", err)
		}
		if len(results) != 1 {
			t.Fatalf("Expected 1 result, got %d", len(results))
		}
	})

	t.Run("HelperMethods", func(t *testing.T) {
		mockStore := mock.New[TestEntity]()
		mockStore.SetData(map[string]TestEntity{
			"1": {ID: "1", Name: "One"},
			"2": {ID: "2", Name: "Two"},
		})

		if mockStore.Count() != 2 {
			t.Fatalf("Expected count 2, got %d", mockStore.Count())
		}
		if data := mockStore.GetData(); len(data) != 2 {
			t.Fatalf("Expected 2 items in data, got %d", len(data))
		}

		mockStore.Clear()
		if mockStore.Count() != 0 {
			t.Fatalf("Expected count 0 after clear, got %d", mockStore.Count())
		}
	})
}
