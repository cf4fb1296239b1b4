/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	rserrors "github.com/suparena/recordstore/errors"
	"github.com/suparena/recordstore/record"
	"github.com/suparena/recordstore/storagemodels"
)

// buildQueryInput translates query params into the wire input for the
// bound table.
func (d *DynamodbDataStore[T]) buildQueryInput(params *storagemodels.QueryParams) *dynamodb.QueryInput {
	return &dynamodb.QueryInput{
		TableName:                 &d.tableName,
		KeyConditionExpression:    &params.KeyConditionExpression,
		ExpressionAttributeValues: params.ExpressionAttributeValues,
		ExpressionAttributeNames:  params.ExpressionAttributeNames,
		FilterExpression:          params.FilterExpression,
		ProjectionExpression:      params.ProjectionExpression,
		IndexName:                 params.IndexName,
		Limit:                     params.Limit,
		ExclusiveStartKey:         params.ExclusiveStartKey,
		ScanIndexForward:          params.ScanIndexForward,
	}
}

// Query runs a key-condition query and follows the pagination contract
// (LastEvaluatedKey -> ExclusiveStartKey) until the backend signals
// exhaustion or the params limit is reached.
//
// Each returned record map decodes independently: records that decode
// cleanly are always returned, and per-record decode failures come back
// joined in the error. A decode failure on one record never discards the
// records before or after it.
func (d *DynamodbDataStore[T]) Query(ctx context.Context, params *storagemodels.QueryParams) ([]T, error) {
	if params == nil {
		return nil, rserrors.NewValidationError("params", "must not be nil")
	}

	input := d.buildQueryInput(params)

	var results []T
	var decodeErrs []error
	var fetched int32

	for {
		if params.Limit != nil {
			remaining := *params.Limit - fetched
			if remaining <= 0 {
				break
			}
			input.Limit = aws.Int32(remaining)
		}

		out, err := d.client.Query(ctx, input)
		if err != nil {
			return nil, rserrors.NewRemoteStoreError("query", err)
		}

		for _, item := range out.Items {
			rec, err := record.Unmarshal[T](item)
			if err != nil {
				decodeErrs = append(decodeErrs, err)
				continue
			}
			results = append(results, *rec)
		}
		fetched += int32(len(out.Items))

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	return results, errors.Join(decodeErrs...)
}
