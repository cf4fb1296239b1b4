/*
Package storagemodels defines the data structures used throughout RecordStore.

Key Types:

QueryParams:
Parameters for querying the datastore's bound table:

	params := &QueryParams{
	    KeyConditionExpression: "pk = :pk",
	    ExpressionAttributeValues: map[string]types.AttributeValue{
	        ":pk": &types.AttributeValueMemberS{Value: "c4c"},
	    },
	    FilterExpression: aws.String("#t = :itemtype"),
	    ExpressionAttributeNames: map[string]string{"#t": "itemtype"},
	    IndexName:        aws.String("GSI1"),
	    Limit:            aws.Int32(100),
	}

StreamResult:
Results from streaming reads with metadata:

	type StreamResult[T any] struct {
	    Item  T                               // The decoded record
	    Raw   map[string]types.AttributeValue // Raw record map
	    Error error                           // Record-specific error, if any
	    Meta  StreamMeta                      // Metadata about this record
	}

StreamOptions:
Configuration for streaming behavior:

	opts := []StreamOption{
	    WithBufferSize(100),
	    WithPageSize(25),
	    WithMaxRetries(3),
	    WithProgressHandler(progressFunc),
	}

These types provide a consistent interface across different storage implementations.
*/
package storagemodels
