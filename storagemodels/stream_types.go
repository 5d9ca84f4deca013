/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// StreamResult is one snapshot delivered by a stream, or the error that ended it.
type StreamResult[T any] struct {
	Item  T                               // The decoded snapshot
	Key   string                          // Snapshot key within its partition
	Raw   map[string]types.AttributeValue // Stored attributes, nil for in-memory stores
	Error error                           // Item or query error
	Meta  StreamMeta
}

// StreamMeta describes where an item sits in the stream
type StreamMeta struct {
	Index      int64     // 0-based
	PageNumber int       // 1-based
	Timestamp  time.Time // When the item was read
}

// StreamOptions configures streaming behavior
type StreamOptions struct {
	BufferSize      int                  // Channel buffer size (default: 100)
	PageSize        int32                // Items per page (default: 100)
	MaxRetries      int                  // Retry attempts for throttled pages (default: 3)
	RetryBackoff    time.Duration        // Backoff unit between retries (default: 1s)
	ProgressHandler func(StreamProgress) // Called after every page
	ErrorHandler    func(error) bool     // Return true to read the failed page again
}

// StreamProgress tracks streaming progress
type StreamProgress struct {
	EntityType     string
	ItemsProcessed int64
	PagesProcessed int
	Errors         []error
	StartTime      time.Time
	CurrentRate    float64 // Items per second
	Done           bool
}

// StreamOption is a functional option for configuring streaming
type StreamOption func(*StreamOptions)

// DefaultStreamOptions returns default streaming options
func DefaultStreamOptions() StreamOptions {
	return StreamOptions{
		BufferSize:   100,
		PageSize:     100,
		MaxRetries:   3,
		RetryBackoff: time.Second,
	}
}

// ApplyStreamOptions returns the defaults with opts applied in order.
func ApplyStreamOptions(opts ...StreamOption) StreamOptions {
	options := DefaultStreamOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.BufferSize < 0 {
		options.BufferSize = 0
	}
	if options.PageSize <= 0 {
		options.PageSize = DefaultStreamOptions().PageSize
	}
	return options
}

// WithBufferSize sets the channel buffer size
func WithBufferSize(size int) StreamOption {
	return func(opts *StreamOptions) {
		opts.BufferSize = size
	}
}

// WithPageSize sets the number of items read per page
func WithPageSize(size int32) StreamOption {
	return func(opts *StreamOptions) {
		opts.PageSize = size
	}
}

// WithMaxRetries sets the maximum retry attempts
func WithMaxRetries(retries int) StreamOption {
	return func(opts *StreamOptions) {
		opts.MaxRetries = retries
	}
}

// WithRetryBackoff sets the retry backoff duration
func WithRetryBackoff(backoff time.Duration) StreamOption {
	return func(opts *StreamOptions) {
		opts.RetryBackoff = backoff
	}
}

// WithProgressHandler sets a progress callback
func WithProgressHandler(handler func(StreamProgress)) StreamOption {
	return func(opts *StreamOptions) {
		opts.ProgressHandler = handler
	}
}

// WithErrorHandler sets an error handler that can decide whether to continue
func WithErrorHandler(handler func(error) bool) StreamOption {
	return func(opts *StreamOptions) {
		opts.ErrorHandler = handler
	}
}
