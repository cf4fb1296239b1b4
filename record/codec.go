/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package record

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"

	rserrors "github.com/suparena/recordstore/errors"
	"github.com/suparena/recordstore/registry"
)

// Marshal encodes a typed record into a record map.
func Marshal[T any](v T) (Map, error) {
	m, err := attributevalue.MarshalMap(v)
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", typeName[T](), err)
	}
	return m, nil
}

// Unmarshal decodes a record map into a typed record, enforcing the shape
// registered (or derived) for T. Violations surface as a DecodeError that
// identifies the offending attribute: the caller keeps a usable error
// instead of a partially populated record.
//
// A required attribute must be present in the map; an explicit null
// satisfies presence and decodes to the zero value. A present attribute
// carrying the wrong tag fails without attempting the unmarshal.
func Unmarshal[T any](m Map) (*T, error) {
	name := typeName[T]()
	if m == nil {
		return nil, rserrors.NewDecodeError(name, "", "nil record map", nil)
	}

	shape := registry.ShapeOf[T]()
	for _, field := range sortedFields(shape) {
		spec := shape[field]
		av, ok := m[field]
		if !ok {
			if spec.Required {
				return nil, rserrors.NewDecodeError(name, field, "missing required attribute", nil)
			}
			continue
		}
		kind := registry.KindOf(av)
		if kind == registry.KindNull {
			continue
		}
		if spec.Kind != registry.KindAny && kind != spec.Kind {
			return nil, rserrors.NewDecodeError(name, field,
				fmt.Sprintf("expected %s attribute, got %s", spec.Kind, kind), nil)
		}
	}

	var out T
	if err := attributevalue.UnmarshalMap(m, &out); err != nil {
		return nil, rserrors.NewDecodeError(name, "", "unmarshal failed", err)
	}
	return &out, nil
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

func sortedFields(shape registry.Shape) []string {
	fields := make([]string, 0, len(shape))
	for field := range shape {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}
