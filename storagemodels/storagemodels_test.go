/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"testing"
	"time"
)

func TestApplyStreamOptions(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		got := ApplyStreamOptions()
		if got.BufferSize != 100 || got.PageSize != 100 || got.MaxRetries != 3 || got.RetryBackoff != time.Second {
			t.Errorf("unexpected defaults: %+v", got)
		}
	})

	t.Run("Overrides", func(t *testing.T) {
		var calls int
		got := ApplyStreamOptions(
			WithBufferSize(5),
			WithPageSize(25),
			WithMaxRetries(0),
			WithRetryBackoff(time.Millisecond),
			WithProgressHandler(func(StreamProgress) { calls++ }),
			WithErrorHandler(func(error) bool { return false }),
		)
		if got.BufferSize != 5 || got.PageSize != 25 || got.MaxRetries != 0 || got.RetryBackoff != time.Millisecond {
			t.Errorf("options not applied: %+v", got)
		}
		if got.ProgressHandler == nil || got.ErrorHandler == nil {
			t.Fatal("handlers not set")
		}
		got.ProgressHandler(StreamProgress{})
		if calls != 1 {
			t.Errorf("progress handler calls = %d, want 1", calls)
		}
	})

	t.Run("Clamps", func(t *testing.T) {
		got := ApplyStreamOptions(WithBufferSize(-1), WithPageSize(0))
		if got.BufferSize != 0 {
			t.Errorf("BufferSize = %d, want 0", got.BufferSize)
		}
		if got.PageSize != 100 {
			t.Errorf("PageSize = %d, want 100", got.PageSize)
		}
	})
}

func TestDescending(t *testing.T) {
	forward, backward := true, false
	tests := []struct {
		name   string
		params *QueryParams
		want   bool
	}{
		{"Nil", nil, false},
		{"Unset", &QueryParams{}, false},
		{"Forward", &QueryParams{ScanIndexForward: &forward}, false},
		{"Backward", &QueryParams{ScanIndexForward: &backward}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.params.Descending(); got != tt.want {
				t.Errorf("Descending() = %v, want %v", got, tt.want)
			}
		})
	}
}
