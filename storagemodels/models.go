/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// QueryParams defines parameters for a DynamoDB Query operation against
// the table the datastore is bound to. Used for both regular queries and
// streaming queries.
type QueryParams struct {
	// KeyConditionExpression is the primary condition for the query.
	KeyConditionExpression string
	// ExpressionAttributeValues contains the values for expression placeholders.
	ExpressionAttributeValues map[string]types.AttributeValue
	// ExpressionAttributeNames maps name placeholders (e.g. "#t") to
	// attribute names that collide with reserved words.
	ExpressionAttributeNames map[string]string
	// FilterExpression is an optional filter applied after the key condition.
	FilterExpression *string
	// ProjectionExpression optionally narrows the attributes returned.
	ProjectionExpression *string
	// IndexName is optional if you wish to query a secondary index.
	IndexName *string
	// Limit caps the total number of items returned across all pages.
	Limit *int32
	// ExclusiveStartKey resumes a previously interrupted query.
	ExclusiveStartKey map[string]types.AttributeValue
	// ScanIndexForward specifies the order for index traversal.
	// If true (default), traversal is in ascending order.
	// If false, traversal is in descending order.
	ScanIndexForward *bool
}
