// Package metadata implements the GEFF metadata attribute document: the
// geff_version/directed/axes record a group carries, read and written
// through a small typed value tree that keeps the JSON (or other)
// attribute serializer opaque to the rest of the codec.
package metadata

import (
	"fmt"

	"github.com/live-image-tracking-tools/geff-go/errs"
)

// Kind discriminates the shape of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindBool
	KindFloat
	KindList
	KindMap
)

// Value is a small strongly-typed tree covering exactly what the GEFF
// metadata document needs to represent: strings, booleans, floats
// (including nullable numeric fields, represented by KindNull), ordered
// lists, and string-keyed maps. It is the intermediate representation
// between Metadata and whatever native value a Store's attribute channel
// hands back.
type Value struct {
	kind Kind
	s    string
	b    bool
	f    float64
	list []Value
	m    map[string]Value
}

// Null returns the null Value.
func Null() Value { return Value{kind: KindNull} }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Bool wraps a bool.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Float wraps a float64.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// List wraps an ordered list of values.
func List(items ...Value) Value { return Value{kind: KindList, list: items} }

// Map wraps a string-keyed set of fields.
func Map(fields map[string]Value) Value { return Value{kind: KindMap, m: fields} }

// Kind reports the value's shape.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsString returns the wrapped string, or ok=false if v is not a string.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}

	return v.s, true
}

// AsBool returns the wrapped bool, or ok=false if v is not a bool.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}

	return v.b, true
}

// AsFloat returns the wrapped float64, or ok=false if v is not a float.
func (v Value) AsFloat() (float64, bool) {
	if v.kind != KindFloat {
		return 0, false
	}

	return v.f, true
}

// AsList returns the wrapped list, or ok=false if v is not a list.
func (v Value) AsList() ([]Value, bool) {
	if v.kind != KindList {
		return nil, false
	}

	return v.list, true
}

// AsMap returns the wrapped map, or ok=false if v is not a map.
func (v Value) AsMap() (map[string]Value, bool) {
	if v.kind != KindMap {
		return nil, false
	}

	return v.m, true
}

// Field fetches a key out of a map value. ok is false if v is not a map
// or the key is absent.
func (v Value) Field(key string) (Value, bool) {
	m, ok := v.AsMap()
	if !ok {
		return Value{}, false
	}
	f, ok := m[key]

	return f, ok
}

// ToNative converts a Value tree into plain Go values (string, bool,
// float64, []any, map[string]any, nil) suitable for handing to a store's
// SetAttribute, or for a store implementation to serialize as JSON.
func (v Value) ToNative() any {
	switch v.kind {
	case KindNull:
		return nil
	case KindString:
		return v.s
	case KindBool:
		return v.b
	case KindFloat:
		return v.f
	case KindList:
		out := make([]any, len(v.list))
		for i, item := range v.list {
			out[i] = item.ToNative()
		}

		return out
	case KindMap:
		out := make(map[string]any, len(v.m))
		for k, item := range v.m {
			out[k] = item.ToNative()
		}

		return out
	default:
		return nil
	}
}

// FromNative converts a plain Go value — as a Store's GetAttribute or a
// JSON decoder would hand back — into a Value tree.
func FromNative(raw any) (Value, error) {
	switch x := raw.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case string:
		return String(x), nil
	case bool:
		return Bool(x), nil
	case float64:
		return Float(x), nil
	case float32:
		return Float(float64(x)), nil
	case int:
		return Float(float64(x)), nil
	case int32:
		return Float(float64(x)), nil
	case int64:
		return Float(float64(x)), nil
	case []any:
		items := make([]Value, len(x))
		for i, item := range x {
			v, err := FromNative(item)
			if err != nil {
				return Value{}, err
			}
			items[i] = v
		}

		return List(items...), nil
	case []float64:
		items := make([]Value, len(x))
		for i, item := range x {
			items[i] = Float(item)
		}

		return List(items...), nil
	case map[string]any:
		fields := make(map[string]Value, len(x))
		for k, item := range x {
			v, err := FromNative(item)
			if err != nil {
				return Value{}, err
			}
			fields[k] = v
		}

		return Map(fields), nil
	default:
		return Value{}, errs.InvalidArgument(fmt.Sprintf("metadata: unsupported attribute value type %T", raw))
	}
}
