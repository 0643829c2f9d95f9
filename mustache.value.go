package mustache

import (
	"github.com/itsatony/go-mustache/internal"
)

// Value is the data model templates render against: null, bool, int,
// double, string, array or map. The zero Value is null.
type Value = internal.Value

// Kind identifies the variant held by a Value
type Kind = internal.Kind

// Value kinds
const (
	KindNull   = internal.KindNull
	KindBool   = internal.KindBool
	KindInt    = internal.KindInt
	KindDouble = internal.KindDouble
	KindString = internal.KindString
	KindArray  = internal.KindArray
	KindMap    = internal.KindMap
)

// Null returns the null value
func Null() Value {
	return internal.NullValue()
}

// Bool wraps a bool
func Bool(b bool) Value {
	return internal.BoolValue(b)
}

// Int wraps an integer
func Int(i int64) Value {
	return internal.IntValue(i)
}

// Double wraps a float
func Double(f float64) Value {
	return internal.DoubleValue(f)
}

// String wraps a string
func String(s string) Value {
	return internal.StringValue(s)
}

// Array builds an ordered list
func Array(items ...Value) Value {
	return internal.ArrayValue(items...)
}

// Map builds a string-keyed map
func Map(m map[string]Value) Value {
	return internal.MapValue(m)
}

// ValueOf converts plain Go data into a Value. Supported: nil, bool, all
// integer and float kinds, string, json.Number, Value, and slices, arrays,
// maps with string keys and pointers to any of these. Structs are not
// walked; convert them to maps first.
func ValueOf(data any) (Value, error) {
	v, err := internal.ValueOf(data)
	if err != nil {
		return Value{}, NewConvertError(err)
	}
	return v, nil
}

// ParseJSON decodes a JSON document into a Value. Integral numbers become
// Int, all other numbers Double.
func ParseJSON(data []byte) (Value, error) {
	v, err := internal.ValueFromJSON(data)
	if err != nil {
		return Value{}, NewDataError(ErrMsgInvalidJSONData, err)
	}
	return v, nil
}

// ParseYAML decodes a YAML document into a Value
func ParseYAML(data []byte) (Value, error) {
	v, err := internal.ValueFromYAML(data)
	if err != nil {
		return Value{}, NewDataError(ErrMsgInvalidYAMLData, err)
	}
	return v, nil
}
