/*
Package errors provides semantic error types for the RecordStore library.

The package defines common error scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrNotFound    = errors.New("item not found")
	    ErrDecode      = errors.New("record decode failed")
	    ErrRemoteStore = errors.New("remote store failure")
	    ErrInvalidInput = errors.New("invalid input")
	    ErrNoShape     = errors.New("no record shape found for type")
	)

Usage:

	// Check error type
	dataset, err := store.GetItem(ctx, key)
	if err != nil {
	    if errors.IsNotFound(err) {
	        // Handle not found case
	        return nil, fmt.Errorf("dataset %s does not exist", "123")
	    }
	    return nil, err
	}

	// Create typed errors
	err := errors.NewNotFoundError("relations", `{pk: "c4c", sk: "c4c"}`)
	err := errors.NewDecodeError("Dataset", "pk", "missing required attribute", nil)
	err := errors.NewChunkError("batch write", 2, cause)

A non-empty unprocessed slice returned by BatchWrite is deliberately not an
error: the backend accepted the request and declined individual operations.
Callers check the slice, not the error, for partial completion.

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
