/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("relations", `{pk: "c4c", sk: "c4c"}`)

	// Test error message
	expected := `item with key {pk: "c4c", sk: "c4c"} not found in table "relations"`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	// Test Is method
	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}

	// Test helper function
	if !IsNotFound(err) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
}

func TestDecodeError(t *testing.T) {
	tests := []struct {
		name     string
		typeName string
		field    string
		reason   string
		expected string
	}{
		{
			name:     "with field",
			typeName: "Dataset",
			field:    "pk",
			reason:   "missing required attribute",
			expected: `decode Dataset: field "pk" missing required attribute`,
		},
		{
			name:     "without field",
			typeName: "Dataset",
			field:    "",
			reason:   "unmarshal failed",
			expected: "decode Dataset: unmarshal failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDecodeError(tt.typeName, tt.field, tt.reason, nil)

			if err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, err.Error())
			}

			if !errors.Is(err, ErrDecode) {
				t.Error("DecodeError should match ErrDecode")
			}

			if !IsDecode(err) {
				t.Error("IsDecode should return true for DecodeError")
			}
		})
	}
}

func TestDecodeErrorUnwrap(t *testing.T) {
	cause := errors.New("unmarshal type mismatch")
	err := NewDecodeError("Dataset", "created", "wrong attribute tag", cause)

	if !errors.Is(err, cause) {
		t.Error("DecodeError should unwrap to its cause")
	}
}

func TestRemoteStoreError(t *testing.T) {
	cause := errors.New("connection reset")

	t.Run("single request", func(t *testing.T) {
		err := NewRemoteStoreError("get item", cause)

		expected := "get item failed: connection reset"
		if err.Error() != expected {
			t.Errorf("Expected error message %q, got %q", expected, err.Error())
		}

		if !errors.Is(err, ErrRemoteStore) {
			t.Error("RemoteStoreError should match ErrRemoteStore")
		}

		if !IsRemoteStore(err) {
			t.Error("IsRemoteStore should return true for RemoteStoreError")
		}

		var rse *RemoteStoreError
		if !errors.As(err, &rse) {
			t.Fatal("expected a *RemoteStoreError")
		}
		if rse.Chunk != -1 {
			t.Errorf("Expected chunk index -1 for single-request op, got %d", rse.Chunk)
		}
	})

	t.Run("batch chunk", func(t *testing.T) {
		err := NewChunkError("batch write", 2, cause)

		expected := "batch write failed on chunk 2: connection reset"
		if err.Error() != expected {
			t.Errorf("Expected error message %q, got %q", expected, err.Error())
		}

		var rse *RemoteStoreError
		if !errors.As(err, &rse) {
			t.Fatal("expected a *RemoteStoreError")
		}
		if rse.Chunk != 2 {
			t.Errorf("Expected chunk index 2, got %d", rse.Chunk)
		}

		if !errors.Is(err, cause) {
			t.Error("RemoteStoreError should unwrap to its cause")
		}
	})
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "with field",
			field:    "key",
			message:  "must not be empty",
			expected: `validation failed for field "key": must not be empty`,
		},
		{
			name:     "without field",
			field:    "",
			message:  "missing required fields",
			expected: "validation failed: missing required fields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message)

			if err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, err.Error())
			}

			if !errors.Is(err, ErrInvalidInput) {
				t.Error("ValidationError should match ErrInvalidInput")
			}

			if !IsValidationError(err) {
				t.Error("IsValidationError should return true for ValidationError")
			}
		})
	}
}

func TestErrorWrapping(t *testing.T) {
	// Test that wrapped errors still match
	original := NewNotFoundError("relations", "123")
	wrapped := fmt.Errorf("datastore operation failed: %w", original)

	if !errors.Is(wrapped, ErrNotFound) {
		t.Error("Wrapped NotFoundError should still match ErrNotFound")
	}

	if !IsNotFound(wrapped) {
		t.Error("IsNotFound should work with wrapped errors")
	}
}

func TestSentinelErrors(t *testing.T) {
	// Ensure sentinel errors are distinct
	sentinels := []error{
		ErrNotFound,
		ErrDecode,
		ErrRemoteStore,
		ErrInvalidInput,
		ErrNoShape,
	}

	for i, err1 := range sentinels {
		for j, err2 := range sentinels {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("Sentinel errors should be distinct: %v matches %v", err1, err2)
			}
		}
	}
}
