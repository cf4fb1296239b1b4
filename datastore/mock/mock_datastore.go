/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides mock implementations of the DataStore interface for testing
package mock

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	rserrors "github.com/suparena/recordstore/errors"
	"github.com/suparena/recordstore/record"
	"github.com/suparena/recordstore/storagemodels"
)

// DataStore is a mock implementation of datastore.DataStore[T] for testing.
// Records live in an in-memory map keyed by their rendered key attributes.
type DataStore[T any] struct {
	mu          sync.RWMutex
	items       map[string]record.Map
	keyAttrs    []string
	queryFunc   func(ctx context.Context, params *storagemodels.QueryParams) ([]T, error)
	streamFunc  func(ctx context.Context, params *storagemodels.QueryParams, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[T]
	getError    error
	putError    error
	batchError  error
	unprocessed []types.WriteRequest
}

// New creates a new mock DataStore. Records are keyed by the "pk" and "sk"
// attributes unless WithKeyAttributes overrides them.
func New[T any]() *DataStore[T] {
	return &DataStore[T]{
		items:    make(map[string]record.Map),
		keyAttrs: []string{"pk", "sk"},
	}
}

// WithKeyAttributes sets the attribute names that form a record's key
func (m *DataStore[T]) WithKeyAttributes(attrs ...string) *DataStore[T] {
	m.keyAttrs = attrs
	return m
}

// WithQueryFunc sets a custom query function for testing
func (m *DataStore[T]) WithQueryFunc(f func(ctx context.Context, params *storagemodels.QueryParams) ([]T, error)) *DataStore[T] {
	m.queryFunc = f
	return m
}

// WithStreamFunc sets a custom stream function for testing
func (m *DataStore[T]) WithStreamFunc(f func(ctx context.Context, params *storagemodels.QueryParams, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[T]) *DataStore[T] {
	m.streamFunc = f
	return m
}

// WithGetError makes GetItem operations return an error
func (m *DataStore[T]) WithGetError(err error) *DataStore[T] {
	m.getError = err
	return m
}

// WithPutError makes PutItem and Put operations return an error
func (m *DataStore[T]) WithPutError(err error) *DataStore[T] {
	m.putError = err
	return m
}

// WithBatchWriteError makes BatchWrite operations return an error
func (m *DataStore[T]) WithBatchWriteError(err error) *DataStore[T] {
	m.batchError = err
	return m
}

// WithUnprocessed scripts the unprocessed operations the next BatchWrite
// calls will report, mimicking a backend that declines part of a batch
func (m *DataStore[T]) WithUnprocessed(reqs ...types.WriteRequest) *DataStore[T] {
	m.unprocessed = reqs
	return m
}

// GetItem retrieves a record by key
func (m *DataStore[T]) GetItem(ctx context.Context, key record.Map) (*T, error) {
	if m.getError != nil {
		return nil, m.getError
	}

	m.mu.RLock()
	item, exists := m.items[record.FormatKey(key)]
	m.mu.RUnlock()

	if !exists {
		return nil, rserrors.NewNotFoundError("mock", record.FormatKey(key))
	}
	return record.Unmarshal[T](item)
}

// PutItem stores a raw record map
func (m *DataStore[T]) PutItem(ctx context.Context, item record.Map) (*dynamodb.PutItemOutput, error) {
	if m.putError != nil {
		return nil, m.putError
	}

	key, err := m.keyOf(item)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	out := &dynamodb.PutItemOutput{}
	if prior, exists := m.items[key]; exists {
		out.Attributes = prior
	}
	m.items[key] = item
	return out, nil
}

// Put encodes a typed record and stores it
func (m *DataStore[T]) Put(ctx context.Context, entity T) (*dynamodb.PutItemOutput, error) {
	item, err := record.Marshal(entity)
	if err != nil {
		return nil, err
	}
	return m.PutItem(ctx, item)
}

// Query returns all stored records decoded to T, unless a custom query
// function is set. Decode failures are joined into the returned error,
// matching the ddb implementation's contract.
func (m *DataStore[T]) Query(ctx context.Context, params *storagemodels.QueryParams) ([]T, error) {
	if m.queryFunc != nil {
		return m.queryFunc(ctx, params)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var results []T
	var decodeErrs []error
	for _, item := range m.items {
		rec, err := record.Unmarshal[T](item)
		if err != nil {
			decodeErrs = append(decodeErrs, err)
			continue
		}
		results = append(results, *rec)
	}
	return results, errors.Join(decodeErrs...)
}

// Stream returns a channel of results
func (m *DataStore[T]) Stream(ctx context.Context, params *storagemodels.QueryParams, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[T] {
	if m.streamFunc != nil {
		return m.streamFunc(ctx, params, opts...)
	}

	// Default implementation streams all stored records
	resultChan := make(chan storagemodels.StreamResult[T], 10)

	go func() {
		defer close(resultChan)

		m.mu.RLock()
		defer m.mu.RUnlock()

		index := int64(0)
		for _, item := range m.items {
			result := storagemodels.StreamResult[T]{
				Raw: item,
				Meta: storagemodels.StreamMeta{
					Index:      index,
					PageNumber: 1,
				},
			}
			if rec, err := record.Unmarshal[T](item); err != nil {
				result.Error = err
			} else {
				result.Item = *rec
			}

			select {
			case <-ctx.Done():
				return
			case resultChan <- result:
				index++
			}
		}
	}()

	return resultChan
}

// BatchWrite applies deletes then puts to the in-memory map and reports
// any scripted unprocessed operations
func (m *DataStore[T]) BatchWrite(ctx context.Context, putItems, deleteKeys []record.Map) ([]types.WriteRequest, error) {
	if m.batchError != nil {
		return nil, m.batchError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, key := range deleteKeys {
		delete(m.items, record.FormatKey(key))
	}
	for _, item := range putItems {
		key, err := m.keyOf(item)
		if err != nil {
			return nil, err
		}
		m.items[key] = item
	}

	unprocessed := m.unprocessed
	return unprocessed, nil
}

// Helper methods for testing

// SeedItem inserts a raw record map without going through PutItem semantics
func (m *DataStore[T]) SeedItem(item record.Map) error {
	key, err := m.keyOf(item)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = item
	return nil
}

// Count returns the number of stored records
func (m *DataStore[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// Clear removes all data
func (m *DataStore[T]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = make(map[string]record.Map)
}

// keyOf renders the storage key for an item from the configured key attributes
func (m *DataStore[T]) keyOf(item record.Map) (string, error) {
	key := make(record.Map, len(m.keyAttrs))
	for _, attr := range m.keyAttrs {
		av, ok := item[attr]
		if !ok {
			return "", rserrors.NewValidationError(attr, fmt.Sprintf("item missing key attribute %q", attr))
		}
		key[attr] = av
	}
	return record.FormatKey(key), nil
}
