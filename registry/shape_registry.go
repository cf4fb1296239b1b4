/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Kind names the attribute tag a record field is expected to carry on the
// wire. The zero value KindAny places no expectation on the tag.
type Kind string

const (
	KindAny       Kind = ""
	KindString    Kind = "S"
	KindNumber    Kind = "N"
	KindBinary    Kind = "B"
	KindBool      Kind = "BOOL"
	KindNull      Kind = "NULL"
	KindList      Kind = "L"
	KindMap       Kind = "M"
	KindStringSet Kind = "SS"
	KindNumberSet Kind = "NS"
	KindBinarySet Kind = "BS"
)

// KindOf reports the attribute tag carried by a raw attribute value.
func KindOf(av types.AttributeValue) Kind {
	switch av.(type) {
	case *types.AttributeValueMemberS:
		return KindString
	case *types.AttributeValueMemberN:
		return KindNumber
	case *types.AttributeValueMemberB:
		return KindBinary
	case *types.AttributeValueMemberBOOL:
		return KindBool
	case *types.AttributeValueMemberNULL:
		return KindNull
	case *types.AttributeValueMemberL:
		return KindList
	case *types.AttributeValueMemberM:
		return KindMap
	case *types.AttributeValueMemberSS:
		return KindStringSet
	case *types.AttributeValueMemberNS:
		return KindNumberSet
	case *types.AttributeValueMemberBS:
		return KindBinarySet
	default:
		return KindAny
	}
}

// FieldSpec describes a single attribute of a record shape.
type FieldSpec struct {
	Kind     Kind `yaml:"kind"`
	Required bool `yaml:"required"`
}

// Shape maps attribute names to their specs. A nil Shape places no
// expectations on a record map.
type Shape map[string]FieldSpec

// shapeRegistry holds the shapes the codec enforces, keyed by Go type.
// namedShapes (see shape_file.go) shares the same lock.
var (
	shapeRegistry = make(map[reflect.Type]Shape)
	mu            sync.RWMutex
)

// RegisterShape associates a Go type T with an explicit record shape,
// replacing any previously registered or derived shape.
func RegisterShape[T any](shape Shape) {
	t := reflect.TypeOf((*T)(nil)).Elem()

	mu.Lock()
	defer mu.Unlock()
	shapeRegistry[t] = shape
}

// ShapeOf retrieves the shape for type T. When none has been registered,
// a shape is derived from the struct definition of T and cached.
func ShapeOf[T any]() Shape {
	t := reflect.TypeOf((*T)(nil)).Elem()

	mu.RLock()
	shape, ok := shapeRegistry[t]
	mu.RUnlock()
	if ok {
		return shape
	}

	shape = DeriveShape(t)

	mu.Lock()
	defer mu.Unlock()
	if cached, ok := shapeRegistry[t]; ok {
		return cached
	}
	shapeRegistry[t] = shape
	return shape
}

var (
	timeType      = reflect.TypeOf(time.Time{})
	marshalerType = reflect.TypeOf((*attributevalue.Marshaler)(nil)).Elem()
)

// DeriveShape builds a record shape from a struct definition. Attribute
// names follow the dynamodbav tag when present, otherwise the Go field
// name. Pointer fields and fields tagged omitempty are optional; every
// other field is required. Non-struct types derive a nil shape.
func DeriveShape(t reflect.Type) Shape {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct || t.ConvertibleTo(timeType) {
		return nil
	}
	shape := make(Shape)
	deriveStructShape(t, shape)
	return shape
}

func deriveStructShape(t reflect.Type, shape Shape) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)

		name := f.Name
		tagged := false
		var opts []string
		if tag, ok := f.Tag.Lookup("dynamodbav"); ok {
			parts := strings.Split(tag, ",")
			opts = parts[1:]
			if parts[0] == "-" && len(opts) == 0 {
				continue
			}
			if parts[0] != "" {
				name = parts[0]
				tagged = true
			}
		}

		ft := f.Type
		for ft.Kind() == reflect.Ptr {
			ft = ft.Elem()
		}

		// Untagged embedded structs flatten into the parent shape, matching
		// the attributevalue encoder.
		if f.Anonymous && !tagged && ft.Kind() == reflect.Struct &&
			!ft.ConvertibleTo(timeType) && !f.Type.Implements(marshalerType) {
			deriveStructShape(ft, shape)
			continue
		}

		if f.PkgPath != "" {
			continue // unexported
		}

		spec := FieldSpec{
			Kind:     kindForField(f.Type, opts),
			Required: f.Type.Kind() != reflect.Ptr && f.Type.Kind() != reflect.Interface,
		}
		for _, opt := range opts {
			if opt == "omitempty" {
				spec.Required = false
			}
		}
		shape[name] = spec
	}
}

func kindForField(t reflect.Type, opts []string) Kind {
	for _, opt := range opts {
		switch opt {
		case "string":
			return KindString
		case "unixtime":
			return KindNumber
		}
	}
	return kindForType(t)
}

func kindForType(t reflect.Type) Kind {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Implements(marshalerType) || reflect.PtrTo(t).Implements(marshalerType) {
		return KindAny
	}
	if t.ConvertibleTo(timeType) {
		return KindString
	}
	switch t.Kind() {
	case reflect.String:
		return KindString
	case reflect.Bool:
		return KindBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return KindNumber
	case reflect.Slice, reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			return KindBinary
		}
		return KindList
	case reflect.Map, reflect.Struct:
		return KindMap
	default:
		return KindAny
	}
}
