/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"

	rserrors "github.com/suparena/recordstore/errors"
	"github.com/suparena/recordstore/record"
)

// DynamodbDataStore implements datastore.DataStore[T] against a single
// DynamoDB table. The client handle is injected, never global, so the
// store can run against a real client, a local endpoint, or a test fake.
type DynamodbDataStore[T any] struct {
	client    DynamoDBAPI
	tableName string
}

// NewDynamodbDataStore constructs a datastore for type T bound to the
// given table, using the provided client handle.
func NewDynamodbDataStore[T any](client DynamoDBAPI, tableName string) (*DynamodbDataStore[T], error) {
	if client == nil {
		return nil, rserrors.NewValidationError("client", "must not be nil")
	}
	if tableName == "" {
		return nil, rserrors.NewValidationError("tableName", "must not be empty")
	}
	return &DynamodbDataStore[T]{
		client:    client,
		tableName: tableName,
	}, nil
}

// NewDynamoDBClient initializes a DynamoDB client using AWS credentials.
func NewDynamoDBClient(awsAccessKey, awsSecretKey, awsRegion string) (*sdk.Client, error) {
	// Load the custom AWS configuration using static credentials
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsAccessKey, awsSecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	// Create a DynamoDB client
	client := sdk.NewFromConfig(cfg)

	fmt.Printf("DynamoDB client initialized in region: %s\n", awsRegion)
	return client, nil
}

// NewDynamodbDataStoreFromCredentials constructs a datastore for type T
// with a client built from static AWS credentials.
func NewDynamodbDataStoreFromCredentials[T any](awsAccessKey, awsSecretKey, awsRegion, awsDDBTableName string) (*DynamodbDataStore[T], error) {
	client, err := NewDynamoDBClient(awsAccessKey, awsSecretKey, awsRegion)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}
	return NewDynamodbDataStore[T](client, awsDDBTableName)
}

// TableName returns the table this datastore is bound to.
func (d *DynamodbDataStore[T]) TableName() string {
	return d.tableName
}

// GetItem retrieves the record stored under the given key and decodes it.
// A missing item returns a NotFoundError, never a panic and never a decode
// attempt; a present item that violates the record shape returns a
// DecodeError naming the offending attribute.
func (d *DynamodbDataStore[T]) GetItem(ctx context.Context, key record.Map) (*T, error) {
	if len(key) == 0 {
		return nil, rserrors.NewValidationError("key", "must not be empty")
	}

	out, err := d.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: &d.tableName,
		Key:       key,
	})
	if err != nil {
		return nil, rserrors.NewRemoteStoreError("get item", err)
	}
	if len(out.Item) == 0 {
		return nil, rserrors.NewNotFoundError(d.tableName, record.FormatKey(key))
	}

	return record.Unmarshal[T](out.Item)
}

// PutItem writes a raw record map and returns the backend's acknowledgment
// metadata (e.g. the prior item when return values are requested).
func (d *DynamodbDataStore[T]) PutItem(ctx context.Context, item record.Map) (*sdk.PutItemOutput, error) {
	if len(item) == 0 {
		return nil, rserrors.NewValidationError("item", "must not be empty")
	}

	out, err := d.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: &d.tableName,
		Item:      item,
	})
	if err != nil {
		return nil, rserrors.NewRemoteStoreError("put item", err)
	}
	return out, nil
}

// Put encodes a typed record through the codec and writes it.
func (d *DynamodbDataStore[T]) Put(ctx context.Context, entity T) (*sdk.PutItemOutput, error) {
	item, err := record.Marshal(entity)
	if err != nil {
		return nil, err
	}
	return d.PutItem(ctx, item)
}
