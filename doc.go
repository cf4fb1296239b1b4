/*
Package recordstore provides a thin, type-safe convenience layer over
Amazon DynamoDB, built around attribute-map records, a reflection-driven
codec, and a chunking batch write coordinator.

The library keeps the backend's data model visible rather than hiding it:
records travel as attribute maps (record.Map), typed structs cross the
boundary through an explicit codec, and batch writes surface exactly what
the backend declined.

Key Features:
  - Type-safe operations using Go generics
  - Batch writes chunked to the backend's 25-operation cap, with
    unprocessed operations aggregated and returned for caller-driven retry
  - Recoverable decode errors that name the offending attribute
  - Enhanced streaming with retry logic and progress tracking
  - Semantic error types for better error handling
  - Thread-safe storage management
  - Comprehensive mock implementations for testing

Basic Usage:

	// Create a storage manager
	mts := recordstore.NewMultiTypeStorage()

	// Register a typed datastore
	datasetStore, _ := ddb.NewDynamodbDataStore[Dataset](client, "relations")
	recordstore.RegisterDataStore(mts, "datasets", datasetStore)

	// Retrieve and use the datastore
	store, _ := recordstore.GetDataStore[Dataset](mts, "datasets")
	ds := Dataset{PK: "DATASET#1", SK: "DATASET#1", ItemType: "Dataset"}
	_, err := store.Put(ctx, ds)

	// Apply a changeset in one call; unprocessed ops come back
	unprocessed, err := store.BatchWrite(ctx, putItems, deleteKeys)

For more information, see the documentation at https://github.com/suparena/recordstore
*/
package recordstore
