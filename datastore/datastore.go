/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/recordstore/record"
	"github.com/suparena/recordstore/storagemodels"
)

type DataStore[T any] interface {
	// GetItem fetches the record stored under key. A missing item is an
	// errors.NotFoundError; a present item that fails the record shape
	// contract is an errors.DecodeError.
	GetItem(ctx context.Context, key record.Map) (*T, error)

	// PutItem writes a raw record map and returns the backend's
	// acknowledgment metadata.
	PutItem(ctx context.Context, item record.Map) (*dynamodb.PutItemOutput, error)

	// Put encodes a typed record through the codec and writes it.
	Put(ctx context.Context, entity T) (*dynamodb.PutItemOutput, error)

	// Query runs a key-condition query, following the backend's pagination
	// contract until exhaustion or the params limit. Records that decode
	// cleanly are returned even when others fail; per-record decode
	// failures come back joined in the error.
	Query(ctx context.Context, params *storagemodels.QueryParams) ([]T, error)

	// Stream delivers query results page by page over a channel.
	Stream(ctx context.Context, params *storagemodels.QueryParams, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[T]

	// BatchWrite applies one changeset of puts and deletes against the
	// bound table and returns the operations the backend declined.
	BatchWrite(ctx context.Context, putItems, deleteKeys []record.Map) ([]types.WriteRequest, error)
}
