/*
Package ddb provides the DynamoDB implementation of the DataStore interface.

The DynamodbDataStore supports:
  - Single-item gets and puts over raw or typed records
  - Batched writes chunked to the backend's 25-operation cap
  - Key-condition queries following the pagination contract
  - Streaming reads with retry logic for throttled pages

The client handle is injected through the DynamoDBAPI interface, so tests
run against an in-memory fake and production runs against *dynamodb.Client.

Batched writes:
One changeset of puts and deletes goes to one table. Deletes are submitted
before puts, 25 operations per request, one request at a time. Whatever the
backend declines comes back as data for the caller to re-submit:

	unprocessed, err := store.BatchWrite(ctx, putItems, deleteKeys)
	if err != nil { ... }               // a whole request failed
	if len(unprocessed) > 0 {
	    unprocessed, err = store.BatchWriteRequests(ctx, unprocessed)
	}

Streaming:
The streaming API supports configurable options:

	results := store.Stream(ctx, params,
	    storagemodels.WithBufferSize(100),
	    storagemodels.WithPageSize(25),
	    storagemodels.WithMaxRetries(3),
	    storagemodels.WithProgressHandler(func(p StreamProgress) {
	        log.Printf("Processed %d records", p.ItemsProcessed)
	    }),
	)

For usage examples, see the package tests.
*/
package ddb
