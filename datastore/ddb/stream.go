/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/recordstore/record"
	"github.com/suparena/recordstore/storagemodels"
)

// Stream performs a streaming query against DynamoDB with configurable options
func (d *DynamodbDataStore[T]) Stream(ctx context.Context, params *storagemodels.QueryParams, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[T] {
	// Apply options
	options := storagemodels.DefaultStreamOptions()
	for _, opt := range opts {
		opt(&options)
	}

	// Create buffered result channel
	resultCh := make(chan storagemodels.StreamResult[T], options.BufferSize)

	// Start streaming in background
	go d.streamWorker(ctx, params, options, resultCh)

	return resultCh
}

// streamWorker handles the actual streaming logic
func (d *DynamodbDataStore[T]) streamWorker(
	ctx context.Context,
	params *storagemodels.QueryParams,
	options storagemodels.StreamOptions,
	resultCh chan<- storagemodels.StreamResult[T],
) {
	defer close(resultCh)

	// Initialize progress tracking
	var itemIndex int64
	var pageNumber int
	startTime := time.Now()
	var errs []error
	var mu sync.Mutex

	// Progress reporting helper
	reportProgress := func(lastKey map[string]types.AttributeValue) {
		if options.ProgressHandler != nil {
			progress := storagemodels.StreamProgress{
				ItemsProcessed: atomic.LoadInt64(&itemIndex),
				PagesProcessed: pageNumber,
				LastKey:        lastKey,
				Errors:         errs,
				StartTime:      startTime,
			}

			// Calculate rate
			elapsed := time.Since(startTime).Seconds()
			if elapsed > 0 {
				progress.CurrentRate = float64(progress.ItemsProcessed) / elapsed
			}

			options.ProgressHandler(progress)
		}
	}

	// Build query input; the stream page size overrides any params limit.
	input := d.buildQueryInput(params)
	input.Limit = aws.Int32(options.PageSize)

	for {
		// Check context cancellation
		select {
		case <-ctx.Done():
			return
		default:
		}

		// Execute query with retry logic
		out, err := d.queryWithRetry(ctx, input, options)
		if err != nil {
			// Handle error with error handler if provided
			if options.ErrorHandler != nil {
				if !options.ErrorHandler(err) {
					// Error handler says to stop
					resultCh <- storagemodels.StreamResult[T]{
						Error: fmt.Errorf("query failed after retries: %w", err),
						Meta: storagemodels.StreamMeta{
							Index:      atomic.LoadInt64(&itemIndex),
							PageNumber: pageNumber,
							Timestamp:  time.Now(),
						},
					}
					return
				}
			} else {
				// No error handler, send error and stop
				resultCh <- storagemodels.StreamResult[T]{
					Error: fmt.Errorf("query failed: %w", err),
					Meta: storagemodels.StreamMeta{
						Index:      atomic.LoadInt64(&itemIndex),
						PageNumber: pageNumber,
						Timestamp:  time.Now(),
					},
				}
				return
			}

			// Record error and continue
			mu.Lock()
			errs = append(errs, err)
			mu.Unlock()
			continue
		}

		pageNumber++

		// Process records in current page
		for _, item := range out.Items {
			// Check context cancellation
			select {
			case <-ctx.Done():
				return
			default:
			}

			result := d.processItem(item, atomic.LoadInt64(&itemIndex), pageNumber)
			atomic.AddInt64(&itemIndex, 1)

			// Send result
			select {
			case <-ctx.Done():
				return
			case resultCh <- result:
			}

			// Record any record-level errors
			if result.Error != nil {
				mu.Lock()
				errs = append(errs, result.Error)
				mu.Unlock()
			}
		}

		// Report progress after each page
		reportProgress(out.LastEvaluatedKey)

		// Check for more pages
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	// Final progress report
	reportProgress(nil)
}

// queryWithRetry executes a query with configurable retry logic. Retry
// applies to reads only; the batch writer never retries.
func (d *DynamodbDataStore[T]) queryWithRetry(
	ctx context.Context,
	input *dynamodb.QueryInput,
	options storagemodels.StreamOptions,
) (*dynamodb.QueryOutput, error) {
	var lastErr error

	for attempt := 0; attempt <= options.MaxRetries; attempt++ {
		// Check context before retry
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		// Execute query
		out, err := d.client.Query(ctx, input)
		if err == nil {
			return out, nil
		}

		lastErr = err

		// Check if error is retryable
		if !isRetryableError(err) {
			return nil, err
		}

		// Don't sleep after last attempt
		if attempt < options.MaxRetries {
			// Linear backoff
			backoff := time.Duration(attempt+1) * options.RetryBackoff
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}
	}

	return nil, fmt.Errorf("query failed after %d retries: %w", options.MaxRetries, lastErr)
}

// processItem decodes a raw record map into a typed stream result
func (d *DynamodbDataStore[T]) processItem(
	item map[string]types.AttributeValue,
	index int64,
	pageNumber int,
) storagemodels.StreamResult[T] {
	meta := storagemodels.StreamMeta{
		Index:      index,
		PageNumber: pageNumber,
		Timestamp:  time.Now(),
	}

	// Make a copy of the raw record map
	rawCopy := make(map[string]types.AttributeValue, len(item))
	for k, v := range item {
		rawCopy[k] = v
	}

	rec, err := record.Unmarshal[T](item)
	if err != nil {
		// Decode failures ride the result, not the channel closing: the
		// stream keeps going and the caller inspects Error per record.
		return storagemodels.StreamResult[T]{
			Error: err,
			Raw:   rawCopy,
			Meta:  meta,
		}
	}

	return storagemodels.StreamResult[T]{
		Item: *rec,
		Raw:  rawCopy,
		Meta: meta,
	}
}

// isRetryableError determines if a DynamoDB error is retryable
func isRetryableError(err error) bool {
	// Check for specific retryable DynamoDB errors
	var throughputErr *types.ProvisionedThroughputExceededException
	if errors.As(err, &throughputErr) {
		return true
	}
	var limitErr *types.RequestLimitExceeded
	if errors.As(err, &limitErr) {
		return true
	}
	var internalErr *types.InternalServerError
	if errors.As(err, &internalErr) {
		return true
	}

	// Check for AWS SDK retryable errors
	var retryable interface{ IsRetryable() bool }
	if errors.As(err, &retryable) {
		return retryable.IsRetryable()
	}

	return false
}
