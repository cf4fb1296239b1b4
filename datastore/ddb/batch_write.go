/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"

	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	rserrors "github.com/suparena/recordstore/errors"
	"github.com/suparena/recordstore/record"
)

// maxBatchWriteOps is the BatchWriteItem per-request cap imposed by DynamoDB.
const maxBatchWriteOps = 25

// BuildWriteRequests normalizes a changeset of put items and delete keys
// into the backend's mixed write-request format. All deletes are ordered
// before all puts; within each group the caller's order is preserved.
func BuildWriteRequests(putItems, deleteKeys []record.Map) []types.WriteRequest {
	reqs := make([]types.WriteRequest, 0, len(putItems)+len(deleteKeys))
	for _, key := range deleteKeys {
		reqs = append(reqs, types.WriteRequest{
			DeleteRequest: &types.DeleteRequest{Key: key},
		})
	}
	for _, item := range putItems {
		reqs = append(reqs, types.WriteRequest{
			PutRequest: &types.PutRequest{Item: item},
		})
	}
	return reqs
}

// BatchWrite applies one changeset of puts and deletes against the bound
// table. The changeset is normalized (deletes before puts), partitioned
// into chunks of at most 25 operations, and submitted sequentially, one
// request per chunk.
//
// Operations the backend declines ("unprocessed") are collected across all
// chunks and returned. A non-empty result is not an error: the call
// succeeded and the caller decides whether to re-submit, e.g. by passing
// the result to BatchWriteRequests. The coordinator never retries on its
// own.
//
// A transport or service failure on any chunk aborts the operation with a
// RemoteStoreError carrying the zero-based chunk index. Chunks submitted
// before the failure are already applied; there is no rollback.
func (d *DynamodbDataStore[T]) BatchWrite(ctx context.Context, putItems, deleteKeys []record.Map) ([]types.WriteRequest, error) {
	for i, item := range putItems {
		if len(item) == 0 {
			return nil, rserrors.NewValidationError(fmt.Sprintf("putItems[%d]", i), "empty record map")
		}
	}
	for i, key := range deleteKeys {
		if len(key) == 0 {
			return nil, rserrors.NewValidationError(fmt.Sprintf("deleteKeys[%d]", i), "empty record map")
		}
	}
	return d.BatchWriteRequests(ctx, BuildWriteRequests(putItems, deleteKeys))
}

// BatchWriteRequests submits pre-built write requests under the same
// chunking and aggregation contract as BatchWrite. It accepts the
// unprocessed output of a previous call unchanged.
func (d *DynamodbDataStore[T]) BatchWriteRequests(ctx context.Context, reqs []types.WriteRequest) ([]types.WriteRequest, error) {
	var unprocessed []types.WriteRequest

	for chunk := 0; len(reqs) > 0; chunk++ {
		if err := ctx.Err(); err != nil {
			return nil, rserrors.NewChunkError("batch write", chunk, err)
		}

		n := len(reqs)
		if n > maxBatchWriteOps {
			n = maxBatchWriteOps
		}
		batch := reqs[:n]
		reqs = reqs[n:]

		out, err := d.client.BatchWriteItem(ctx, &sdk.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{
				d.tableName: batch,
			},
		})
		if err != nil {
			return nil, rserrors.NewChunkError("batch write", chunk, err)
		}

		unprocessed = append(unprocessed, out.UnprocessedItems[d.tableName]...)
	}

	return unprocessed, nil
}
