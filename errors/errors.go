/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when a requested item does not exist
	ErrNotFound = errors.New("item not found")

	// ErrDecode is returned when a record map cannot be decoded into a typed record
	ErrDecode = errors.New("record decode failed")

	// ErrRemoteStore is returned when the backend client reports a transport or service failure
	ErrRemoteStore = errors.New("remote store failure")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoShape is returned when no record shape is registered for a type
	ErrNoShape = errors.New("no record shape found for type")
)

// NotFoundError represents a get against a key that has no item
type NotFoundError struct {
	Table string
	Key   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("item with key %s not found in table %q", e.Key, e.Table)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// DecodeError represents a record map that violates the record shape
// contract or otherwise fails to decode. Field identifies the offending
// attribute when it is known.
type DecodeError struct {
	Type   string
	Field  string
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("decode %s: field %q %s", e.Type, e.Field, e.Reason)
	}
	return fmt.Sprintf("decode %s: %s", e.Type, e.Reason)
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// RemoteStoreError represents a failed round trip to the backend. For
// batch operations Chunk carries the zero-based index of the chunk whose
// request failed; for single-request operations it is -1.
type RemoteStoreError struct {
	Op    string
	Chunk int
	Err   error
}

func (e *RemoteStoreError) Error() string {
	if e.Chunk >= 0 {
		return fmt.Sprintf("%s failed on chunk %d: %v", e.Op, e.Chunk, e.Err)
	}
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *RemoteStoreError) Is(target error) bool {
	return target == ErrRemoteStore
}

func (e *RemoteStoreError) Unwrap() error {
	return e.Err
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(table, key string) error {
	return &NotFoundError{Table: table, Key: key}
}

// NewDecodeError creates a new DecodeError
func NewDecodeError(typeName, field, reason string, err error) error {
	return &DecodeError{Type: typeName, Field: field, Reason: reason, Err: err}
}

// NewRemoteStoreError creates a new RemoteStoreError for a single-request operation
func NewRemoteStoreError(op string, err error) error {
	return &RemoteStoreError{Op: op, Chunk: -1, Err: err}
}

// NewChunkError creates a new RemoteStoreError carrying the failed chunk index
func NewChunkError(op string, chunk int, err error) error {
	return &RemoteStoreError{Op: op, Chunk: chunk, Err: err}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDecode checks if an error is a record decode error
func IsDecode(err error) bool {
	return errors.Is(err, ErrDecode)
}

// IsRemoteStore checks if an error is a remote store failure
func IsRemoteStore(err error) bool {
	return errors.Is(err, ErrRemoteStore)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
