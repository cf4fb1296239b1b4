/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// batchStep scripts one BatchWriteItem response.
type batchStep struct {
	unprocessed map[string][]types.WriteRequest
	err         error
}

// queryStep scripts one Query response.
type queryStep struct {
	out *dynamodb.QueryOutput
	err error
}

// fakeDynamoDB implements DynamoDBAPI in memory, recording every request
// and replaying scripted responses in order.
type fakeDynamoDB struct {
	mu sync.Mutex

	getInputs   []*dynamodb.GetItemInput
	putInputs   []*dynamodb.PutItemInput
	queryInputs []*dynamodb.QueryInput
	batchInputs []map[string][]types.WriteRequest

	getOutput  *dynamodb.GetItemOutput
	getErr     error
	putOutput  *dynamodb.PutItemOutput
	putErr     error
	querySteps []queryStep
	batchSteps []batchStep
}

func newFakeDynamoDB() *fakeDynamoDB {
	return &fakeDynamoDB{}
}

func (f *fakeDynamoDB) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.getInputs = append(f.getInputs, params)
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.getOutput != nil {
		return f.getOutput, nil
	}
	return &dynamodb.GetItemOutput{}, nil
}

func (f *fakeDynamoDB) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.putInputs = append(f.putInputs, params)
	if f.putErr != nil {
		return nil, f.putErr
	}
	if f.putOutput != nil {
		return f.putOutput, nil
	}
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamoDB) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	// Copy the input: the store mutates ExclusiveStartKey and Limit
	// between pages.
	recorded := *params
	f.queryInputs = append(f.queryInputs, &recorded)

	if len(f.querySteps) == 0 {
		return &dynamodb.QueryOutput{}, nil
	}
	step := f.querySteps[0]
	f.querySteps = f.querySteps[1:]
	if step.err != nil {
		return nil, step.err
	}
	return step.out, nil
}

func (f *fakeDynamoDB) BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	// Copy the request items so later assertions see what was submitted.
	recorded := make(map[string][]types.WriteRequest, len(params.RequestItems))
	for table, reqs := range params.RequestItems {
		recorded[table] = append([]types.WriteRequest(nil), reqs...)
	}
	f.batchInputs = append(f.batchInputs, recorded)

	if len(f.batchSteps) == 0 {
		return &dynamodb.BatchWriteItemOutput{
			UnprocessedItems: map[string][]types.WriteRequest{},
		}, nil
	}
	step := f.batchSteps[0]
	f.batchSteps = f.batchSteps[1:]
	if step.err != nil {
		return nil, step.err
	}
	return &dynamodb.BatchWriteItemOutput{UnprocessedItems: step.unprocessed}, nil
}

// submittedBatches returns the write requests recorded per call for a table.
func (f *fakeDynamoDB) submittedBatches(table string) [][]types.WriteRequest {
	f.mu.Lock()
	defer f.mu.Unlock()

	var batches [][]types.WriteRequest
	for _, input := range f.batchInputs {
		batches = append(batches, input[table])
	}
	return batches
}
