package internal

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Kind identifies the variant held by a Value
type Kind int

// Value kinds
const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindDouble
	KindString
	KindArray
	KindMap
)

// Kind names for debugging
const (
	KindNameNull   = "null"
	KindNameBool   = "bool"
	KindNameInt    = "int"
	KindNameDouble = "double"
	KindNameString = "string"
	KindNameArray  = "array"
	KindNameMap    = "map"
)

// String returns the kind's name
func (k Kind) String() string {
	switch k {
	case KindBool:
		return KindNameBool
	case KindInt:
		return KindNameInt
	case KindDouble:
		return KindNameDouble
	case KindString:
		return KindNameString
	case KindArray:
		return KindNameArray
	case KindMap:
		return KindNameMap
	default:
		return KindNameNull
	}
}

// Value is the data model rendered against: null, bool, int, double,
// string, array or map. The zero Value is null. Values are immutable once
// built; the constructors copy the slices and maps they are given.
type Value struct {
	kind  Kind
	b     bool
	i     int64
	f     float64
	s     string
	items []Value
	m     map[string]Value
}

// NullValue returns the null value
func NullValue() Value {
	return Value{}
}

// BoolValue wraps a bool
func BoolValue(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// IntValue wraps an integer
func IntValue(i int64) Value {
	return Value{kind: KindInt, i: i}
}

// DoubleValue wraps a float
func DoubleValue(f float64) Value {
	return Value{kind: KindDouble, f: f}
}

// StringValue wraps a string
func StringValue(s string) Value {
	return Value{kind: KindString, s: s}
}

// ArrayValue builds an ordered list
func ArrayValue(items ...Value) Value {
	copied := make([]Value, len(items))
	copy(copied, items)
	return Value{kind: KindArray, items: copied}
}

// MapValue builds a string-keyed map
func MapValue(m map[string]Value) Value {
	copied := make(map[string]Value, len(m))
	for k, v := range m {
		copied[k] = v
	}
	return Value{kind: KindMap, m: copied}
}

// Kind returns the variant held
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull returns true for the null value
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Truthy maps the value to a boolean: a bool is its own value, arrays and
// maps are truthy when non-empty, null is falsy, everything else is truthy.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindBool:
		return v.b
	case KindArray:
		return len(v.items) > 0
	case KindMap:
		return len(v.m) > 0
	case KindNull:
		return false
	default:
		return true
	}
}

// Stringify returns the interpolation form of the value. Strings pass
// through, numbers use their decimal form and arrays concatenate their
// elements. Null, bool and map values have no string form.
func (v Value) Stringify() (string, bool) {
	switch v.kind {
	case KindString:
		return v.s, true
	case KindInt:
		return strconv.FormatInt(v.i, 10), true
	case KindDouble:
		return strconv.FormatFloat(v.f, 'f', -1, 64), true
	case KindArray:
		var sb strings.Builder
		for _, item := range v.items {
			s, ok := item.Stringify()
			if !ok {
				return "", false
			}
			sb.WriteString(s)
		}
		return sb.String(), true
	default:
		return "", false
	}
}

// Get looks key up in a map value
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindMap {
		return Value{}, false
	}
	found, ok := v.m[key]
	return found, ok
}

// Items returns the elements of an array value
func (v Value) Items() []Value {
	if v.kind != KindArray {
		return nil
	}
	return v.items
}

// Keys returns the sorted keys of a map value
func (v Value) Keys() []string {
	if v.kind != KindMap {
		return nil
	}
	keys := make([]string, 0, len(v.m))
	for k := range v.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of elements of an array or entries of a map
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.items)
	case KindMap:
		return len(v.m)
	default:
		return 0
	}
}

// Bool returns the bool held, false for other kinds
func (v Value) Bool() bool {
	return v.kind == KindBool && v.b
}

// Int returns the integer held, 0 for other kinds
func (v Value) Int() int64 {
	if v.kind != KindInt {
		return 0
	}
	return v.i
}

// Double returns the float held, 0 for other kinds
func (v Value) Double() float64 {
	if v.kind != KindDouble {
		return 0
	}
	return v.f
}

// Interface converts the value back into plain Go data
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindDouble:
		return v.f
	case KindString:
		return v.s
	case KindArray:
		out := make([]any, len(v.items))
		for i, item := range v.items {
			out[i] = item.Interface()
		}
		return out
	case KindMap:
		out := make(map[string]any, len(v.m))
		for k, item := range v.m {
			out[k] = item.Interface()
		}
		return out
	default:
		return nil
	}
}

// String returns a debug representation
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return strconv.Quote(v.s)
	case KindArray, KindMap:
		return fmt.Sprintf("%s(%d)", v.kind, v.Len())
	case KindNull:
		return KindNameNull
	default:
		s, _ := v.Stringify()
		if v.kind == KindBool {
			s = strconv.FormatBool(v.b)
		}
		return s
	}
}
