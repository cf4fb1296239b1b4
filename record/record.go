/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package record

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/recordstore/registry"
)

// Map is a raw record map: the wire representation of a single item as a
// set of named, tagged attribute values.
type Map = map[string]types.AttributeValue

// SetKV inserts a string-tagged attribute into m and returns m so calls
// can be chained. A nil map is allocated first:
//
//	key := record.SetKV(record.SetKV(nil, "pk", "c4c"), "sk", "c4c")
func SetKV(m Map, key, value string) Map {
	if m == nil {
		m = make(Map, 1)
	}
	m[key] = &types.AttributeValueMemberS{Value: value}
	return m
}

// FormatKey renders a record map compactly for diagnostics, attributes in
// sorted order.
func FormatKey(m Map) string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteByte('{')
	for i, name := range names {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %s", name, formatValue(m[name]))
	}
	b.WriteByte('}')
	return b.String()
}

func formatValue(av types.AttributeValue) string {
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		return fmt.Sprintf("%q", v.Value)
	case *types.AttributeValueMemberN:
		return v.Value
	case *types.AttributeValueMemberBOOL:
		return fmt.Sprintf("%t", v.Value)
	case *types.AttributeValueMemberNULL:
		return "null"
	case *types.AttributeValueMemberB:
		return fmt.Sprintf("<%d bytes>", len(v.Value))
	default:
		return fmt.Sprintf("<%s>", registry.KindOf(av))
	}
}
