/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package record

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestSetKV(t *testing.T) {
	t.Run("allocates nil map", func(t *testing.T) {
		m := SetKV(nil, "pk", "c4c")
		if m == nil {
			t.Fatal("Expected SetKV to allocate a map")
		}
		av, ok := m["pk"].(*types.AttributeValueMemberS)
		if !ok {
			t.Fatalf("Expected a string attribute, got %T", m["pk"])
		}
		if av.Value != "c4c" {
			t.Errorf("Expected value %q, got %q", "c4c", av.Value)
		}
	})

	t.Run("chains", func(t *testing.T) {
		m := SetKV(SetKV(nil, "pk", "c4c"), "sk", "relation")
		if len(m) != 2 {
			t.Fatalf("Expected 2 attributes, got %d", len(m))
		}
	})

	t.Run("returns the same map", func(t *testing.T) {
		m := make(Map)
		if got := SetKV(m, "pk", "a"); len(m) != 1 || len(got) != 1 {
			t.Error("Expected SetKV to insert into the given map")
		}
	})

	t.Run("overwrites", func(t *testing.T) {
		m := SetKV(SetKV(nil, "pk", "old"), "pk", "new")
		av := m["pk"].(*types.AttributeValueMemberS)
		if av.Value != "new" {
			t.Errorf("Expected overwrite to win, got %q", av.Value)
		}
	})
}

func TestFormatKey(t *testing.T) {
	m := Map{
		"sk":      &types.AttributeValueMemberS{Value: "c4c"},
		"pk":      &types.AttributeValueMemberS{Value: "c4c"},
		"created": &types.AttributeValueMemberN{Value: "42"},
		"flag":    &types.AttributeValueMemberBOOL{Value: true},
	}

	got := FormatKey(m)
	want := `{created: 42, flag: true, pk: "c4c", sk: "c4c"}`
	if got != want {
		t.Errorf("FormatKey = %s, want %s", got, want)
	}
}

func TestFormatKeyEmpty(t *testing.T) {
	if got := FormatKey(nil); got != "{}" {
		t.Errorf("FormatKey(nil) = %s, want {}", got)
	}
}
