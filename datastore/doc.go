/*
Package datastore defines the core interfaces for RecordStore's data persistence layer.

The main interface is DataStore[T], which provides generic record operations for any record type T:

	type DataStore[T any] interface {
	    GetItem(ctx context.Context, key record.Map) (*T, error)
	    PutItem(ctx context.Context, item record.Map) (*dynamodb.PutItemOutput, error)
	    Put(ctx context.Context, entity T) (*dynamodb.PutItemOutput, error)
	    Query(ctx context.Context, params *storagemodels.QueryParams) ([]T, error)
	    Stream(ctx context.Context, params *storagemodels.QueryParams, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[T]
	    BatchWrite(ctx context.Context, putItems, deleteKeys []record.Map) ([]types.WriteRequest, error)
	}

Implementations:
  - ddb: DynamoDB implementation bound to a single table
  - mock: In-memory mock implementation for testing

The package uses Go generics to ensure type safety at compile time while maintaining
flexibility for different storage backends.
*/
package datastore
