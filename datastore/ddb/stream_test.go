/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	rserrors "github.com/suparena/recordstore/errors"
	"github.com/suparena/recordstore/record"
	"github.com/suparena/recordstore/storagemodels"
)

func collectStream[T any](ch <-chan storagemodels.StreamResult[T]) []storagemodels.StreamResult[T] {
	var results []storagemodels.StreamResult[T]
	for result := range ch {
		results = append(results, result)
	}
	return results
}

func TestStreamDeliversAllPages(t *testing.T) {
	lek := record.SetKV(nil, "pk", "DATASET#001")

	fake := newFakeDynamoDB()
	fake.querySteps = []queryStep{
		{out: &dynamodb.QueryOutput{
			Items:            []map[string]types.AttributeValue{putRecord(0), putRecord(1)},
			LastEvaluatedKey: lek,
		}},
		{out: &dynamodb.QueryOutput{
			Items: []map[string]types.AttributeValue{putRecord(2)},
		}},
	}
	store := newTestStore(t, fake)

	results := collectStream(store.Stream(context.Background(), datasetQuery()))
	if len(results) != 3 {
		t.Fatalf("expected 3 streamed records, got %d", len(results))
	}

	for i, result := range results {
		if result.Error != nil {
			t.Fatalf("record %d: unexpected error: %v", i, result.Error)
		}
		want := fmt.Sprintf("DATASET#%03d", i)
		if result.Item.PK != want {
			t.Errorf("record %d: expected %s, got %s", i, want, result.Item.PK)
		}
		if result.Meta.Index != int64(i) {
			t.Errorf("record %d: expected index %d, got %d", i, i, result.Meta.Index)
		}
		if result.Raw == nil {
			t.Errorf("record %d: missing raw record map", i)
		}
	}

	if results[0].Meta.PageNumber != 1 || results[2].Meta.PageNumber != 2 {
		t.Errorf("unexpected page numbers: %d, %d", results[0].Meta.PageNumber, results[2].Meta.PageNumber)
	}
}

func TestStreamPageSize(t *testing.T) {
	fake := newFakeDynamoDB()
	store := newTestStore(t, fake)

	params := datasetQuery()
	params.Limit = aws.Int32(99) // overridden by the stream page size

	collectStream(store.Stream(context.Background(), params, storagemodels.WithPageSize(2)))

	if len(fake.queryInputs) != 1 {
		t.Fatalf("expected 1 Query call, got %d", len(fake.queryInputs))
	}
	if got := aws.ToInt32(fake.queryInputs[0].Limit); got != 2 {
		t.Errorf("expected page size 2 on the wire, got %d", got)
	}
}

func TestStreamRetriesThrottledQuery(t *testing.T) {
	fake := newFakeDynamoDB()
	fake.querySteps = []queryStep{
		{err: &types.ProvisionedThroughputExceededException{}},
		{out: &dynamodb.QueryOutput{
			Items: []map[string]types.AttributeValue{putRecord(0)},
		}},
	}
	store := newTestStore(t, fake)

	results := collectStream(store.Stream(context.Background(), datasetQuery(),
		storagemodels.WithMaxRetries(2),
		storagemodels.WithRetryBackoff(time.Millisecond),
	))

	if len(results) != 1 {
		t.Fatalf("expected 1 record after retry, got %d", len(results))
	}
	if results[0].Error != nil {
		t.Fatalf("unexpected error: %v", results[0].Error)
	}
	if len(fake.queryInputs) != 2 {
		t.Errorf("expected 2 Query attempts, got %d", len(fake.queryInputs))
	}
}

func TestStreamStopsOnNonRetryableError(t *testing.T) {
	cause := errors.New("access denied")

	fake := newFakeDynamoDB()
	fake.querySteps = []queryStep{{err: cause}}
	store := newTestStore(t, fake)

	results := collectStream(store.Stream(context.Background(), datasetQuery()))
	if len(results) != 1 {
		t.Fatalf("expected a single terminal error result, got %d", len(results))
	}
	if results[0].Error == nil {
		t.Fatal("expected the terminal result to carry an error")
	}
	if !errors.Is(results[0].Error, cause) {
		t.Errorf("expected error to wrap the cause, got %v", results[0].Error)
	}

	// No retry for non-retryable errors.
	if len(fake.queryInputs) != 1 {
		t.Errorf("expected 1 Query attempt, got %d", len(fake.queryInputs))
	}
}

func TestStreamErrorHandler(t *testing.T) {
	t.Run("continue", func(t *testing.T) {
		fake := newFakeDynamoDB()
		fake.querySteps = []queryStep{
			{err: errors.New("transient wobble")},
			{out: &dynamodb.QueryOutput{
				Items: []map[string]types.AttributeValue{putRecord(0)},
			}},
		}
		store := newTestStore(t, fake)

		var handled []error
		results := collectStream(store.Stream(context.Background(), datasetQuery(),
			storagemodels.WithErrorHandler(func(err error) bool {
				handled = append(handled, err)
				return true
			}),
		))

		if len(handled) != 1 {
			t.Fatalf("expected the handler to see 1 error, got %d", len(handled))
		}
		if len(results) != 1 || results[0].Error != nil {
			t.Fatalf("expected the stream to recover and deliver the record, got %+v", results)
		}
	})

	t.Run("stop", func(t *testing.T) {
		fake := newFakeDynamoDB()
		fake.querySteps = []queryStep{{err: errors.New("hard failure")}}
		store := newTestStore(t, fake)

		results := collectStream(store.Stream(context.Background(), datasetQuery(),
			storagemodels.WithErrorHandler(func(err error) bool { return false }),
		))

		if len(results) != 1 || results[0].Error == nil {
			t.Fatalf("expected a single terminal error result, got %+v", results)
		}
	})
}

func TestStreamDecodeFailuresRideResults(t *testing.T) {
	bad := record.SetKV(nil, "pk", "DATASET#BAD")
	bad = record.SetKV(bad, "sk", "DATASET#BAD")
	// itemtype is absent, so this record cannot decode.

	fake := newFakeDynamoDB()
	fake.querySteps = []queryStep{
		{out: &dynamodb.QueryOutput{
			Items: []map[string]types.AttributeValue{putRecord(0), bad, putRecord(1)},
		}},
	}
	store := newTestStore(t, fake)

	results := collectStream(store.Stream(context.Background(), datasetQuery()))
	if len(results) != 3 {
		t.Fatalf("expected all 3 records on the stream, got %d", len(results))
	}

	if results[0].Error != nil || results[2].Error != nil {
		t.Error("clean records must not carry errors")
	}
	if !rserrors.IsDecode(results[1].Error) {
		t.Fatalf("expected DecodeError on the malformed record, got %v", results[1].Error)
	}
	if results[1].Raw == nil {
		t.Error("malformed record must keep its raw record map")
	}
}

func TestStreamContextCancellation(t *testing.T) {
	fake := newFakeDynamoDB()
	store := newTestStore(t, fake)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := collectStream(store.Stream(ctx, datasetQuery()))
	if len(results) != 0 {
		t.Errorf("expected no results after cancellation, got %d", len(results))
	}
	if len(fake.queryInputs) != 0 {
		t.Errorf("expected no Query calls after cancellation, got %d", len(fake.queryInputs))
	}
}

func TestStreamProgressHandler(t *testing.T) {
	lek := record.SetKV(nil, "pk", "DATASET#001")

	fake := newFakeDynamoDB()
	fake.querySteps = []queryStep{
		{out: &dynamodb.QueryOutput{
			Items:            []map[string]types.AttributeValue{putRecord(0), putRecord(1)},
			LastEvaluatedKey: lek,
		}},
		{out: &dynamodb.QueryOutput{
			Items: []map[string]types.AttributeValue{putRecord(2)},
		}},
	}
	store := newTestStore(t, fake)

	var reports []storagemodels.StreamProgress
	collectStream(store.Stream(context.Background(), datasetQuery(),
		storagemodels.WithProgressHandler(func(p storagemodels.StreamProgress) {
			reports = append(reports, p)
		}),
	))

	// One report per page plus the final report.
	if len(reports) != 3 {
		t.Fatalf("expected 3 progress reports, got %d", len(reports))
	}
	final := reports[len(reports)-1]
	if final.ItemsProcessed != 3 {
		t.Errorf("expected 3 records processed, got %d", final.ItemsProcessed)
	}
	if final.PagesProcessed != 2 {
		t.Errorf("expected 2 pages processed, got %d", final.PagesProcessed)
	}
	if reports[0].LastKey == nil {
		t.Error("mid-stream report should carry the page's last key")
	}
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"throughput exceeded", &types.ProvisionedThroughputExceededException{}, true},
		{"request limit exceeded", &types.RequestLimitExceeded{}, true},
		{"internal server error", &types.InternalServerError{}, true},
		{"wrapped throughput exceeded", fmt.Errorf("page 3: %w", &types.ProvisionedThroughputExceededException{}), true},
		{"validation error", errors.New("ValidationException: invalid key"), false},
		{"plain error", errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isRetryableError(tt.err); got != tt.want {
				t.Errorf("isRetryableError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
