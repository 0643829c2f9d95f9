package internal

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_Truthy(t *testing.T) {
	tests := []struct {
		name   string
		value  Value
		truthy bool
	}{
		{name: "null", value: NullValue(), truthy: false},
		{name: "zero value", value: Value{}, truthy: false},
		{name: "true", value: BoolValue(true), truthy: true},
		{name: "false", value: BoolValue(false), truthy: false},
		{name: "zero int", value: IntValue(0), truthy: true},
		{name: "zero double", value: DoubleValue(0), truthy: true},
		{name: "empty string", value: StringValue(""), truthy: true},
		{name: "empty array", value: ArrayValue(), truthy: false},
		{name: "array", value: ArrayValue(NullValue()), truthy: true},
		{name: "empty map", value: MapValue(nil), truthy: false},
		{name: "map", value: MapValue(map[string]Value{"a": NullValue()}), truthy: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.truthy, tt.value.Truthy())
		})
	}
}

func TestValue_Stringify(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		expected string
		ok       bool
	}{
		{name: "string", value: StringValue("hi"), expected: "hi", ok: true},
		{name: "int", value: IntValue(-85), expected: "-85", ok: true},
		{name: "double", value: DoubleValue(1.21), expected: "1.21", ok: true},
		{name: "integral double", value: DoubleValue(2), expected: "2", ok: true},
		{name: "array concatenates", value: ArrayValue(StringValue("a"), IntValue(1), DoubleValue(0.5)), expected: "a10.5", ok: true},
		{name: "empty array", value: ArrayValue(), expected: "", ok: true},
		{name: "array with bool", value: ArrayValue(StringValue("a"), BoolValue(true)), ok: false},
		{name: "null", value: NullValue(), ok: false},
		{name: "bool", value: BoolValue(true), ok: false},
		{name: "map", value: MapValue(map[string]Value{"a": StringValue("b")}), ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := tt.value.Stringify()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, s)
		})
	}
}

func TestValue_Accessors(t *testing.T) {
	m := MapValue(map[string]Value{
		"b": IntValue(2),
		"a": StringValue("x"),
	})

	assert.Equal(t, KindMap, m.Kind())
	assert.Equal(t, []string{"a", "b"}, m.Keys())
	assert.Equal(t, 2, m.Len())

	v, ok := m.Get("b")
	require.True(t, ok)
	assert.Equal(t, int64(2), v.Int())

	_, ok = m.Get("missing")
	assert.False(t, ok)

	_, ok = StringValue("x").Get("a")
	assert.False(t, ok)

	arr := ArrayValue(BoolValue(true), DoubleValue(1.5))
	assert.Len(t, arr.Items(), 2)
	assert.True(t, arr.Items()[0].Bool())
	assert.Equal(t, 1.5, arr.Items()[1].Double())
	assert.Nil(t, m.Items())
	assert.Nil(t, arr.Keys())

	assert.True(t, NullValue().IsNull())
	assert.Equal(t, int64(0), StringValue("1").Int())
	assert.Equal(t, "map", KindMap.String())
}

func TestValue_ConstructorsCopy(t *testing.T) {
	items := []Value{StringValue("a")}
	arr := ArrayValue(items...)
	items[0] = StringValue("changed")
	s, _ := arr.Stringify()
	assert.Equal(t, "a", s)

	src := map[string]Value{"k": StringValue("v")}
	m := MapValue(src)
	src["k"] = StringValue("changed")
	v, _ := m.Get("k")
	assert.Equal(t, StringValue("v"), v)
}

func TestValue_Interface(t *testing.T) {
	v := MapValue(map[string]Value{
		"list": ArrayValue(IntValue(1), DoubleValue(2.5), StringValue("s"), BoolValue(false), NullValue()),
	})

	assert.Equal(t, map[string]any{
		"list": []any{int64(1), 2.5, "s", false, nil},
	}, v.Interface())
}

func TestValueOf(t *testing.T) {
	type named string
	str := "pointed"

	tests := []struct {
		name     string
		input    any
		expected Value
	}{
		{name: "nil", input: nil, expected: NullValue()},
		{name: "bool", input: true, expected: BoolValue(true)},
		{name: "int", input: 42, expected: IntValue(42)},
		{name: "int8", input: int8(-3), expected: IntValue(-3)},
		{name: "uint16", input: uint16(7), expected: IntValue(7)},
		{name: "uint64 at int64 max", input: uint64(math.MaxInt64), expected: IntValue(math.MaxInt64)},
		{name: "uint64 above int64 max", input: uint64(math.MaxUint64), expected: DoubleValue(float64(uint64(math.MaxUint64)))},
		{name: "float32", input: float32(0.5), expected: DoubleValue(0.5)},
		{name: "string", input: "s", expected: StringValue("s")},
		{name: "named string", input: named("n"), expected: StringValue("n")},
		{name: "pointer", input: &str, expected: StringValue("pointed")},
		{name: "nil pointer", input: (*string)(nil), expected: NullValue()},
		{name: "json int", input: json.Number("12"), expected: IntValue(12)},
		{name: "json float", input: json.Number("1.5"), expected: DoubleValue(1.5)},
		{name: "json exponent", input: json.Number("1e2"), expected: DoubleValue(100)},
		{name: "value", input: StringValue("v"), expected: StringValue("v")},
		{
			name:     "any slice",
			input:    []any{"a", 1},
			expected: ArrayValue(StringValue("a"), IntValue(1)),
		},
		{
			name:     "typed slice",
			input:    []string{"a", "b"},
			expected: ArrayValue(StringValue("a"), StringValue("b")),
		},
		{
			name:     "array",
			input:    [2]int{1, 2},
			expected: ArrayValue(IntValue(1), IntValue(2)),
		},
		{
			name:     "nested map",
			input:    map[string]any{"a": map[string]any{"b": "c"}},
			expected: MapValue(map[string]Value{"a": MapValue(map[string]Value{"b": StringValue("c")})}),
		},
		{
			name:     "typed map",
			input:    map[string]int{"n": 1},
			expected: MapValue(map[string]Value{"n": IntValue(1)}),
		},
		{
			name:     "any-keyed map",
			input:    map[any]any{"k": "v"},
			expected: MapValue(map[string]Value{"k": StringValue("v")}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ValueOf(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestValueOf_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		message string
		path    string
	}{
		{name: "func", input: func() {}, message: ErrMsgUnsupportedValueType},
		{name: "nested channel", input: map[string]any{"a": []any{make(chan int)}}, message: ErrMsgUnsupportedValueType, path: "a[0]"},
		{name: "int keys", input: map[int]string{1: "a"}, message: ErrMsgUnsupportedMapKeyType},
		{name: "struct", input: struct{ A int }{A: 1}, message: ErrMsgUnsupportedValueType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValueOf(tt.input)
			require.Error(t, err)

			var convErr *ConvertError
			require.ErrorAs(t, err, &convErr)
			assert.Equal(t, tt.message, convErr.Message)
			assert.Equal(t, tt.path, convErr.Path)
		})
	}
}

func TestValueFromJSON(t *testing.T) {
	v, err := ValueFromJSON([]byte(`{"n": 1, "f": 1.5, "s": "x", "b": true, "z": null, "l": [1, "a"]}`))
	require.NoError(t, err)

	expected := MapValue(map[string]Value{
		"n": IntValue(1),
		"f": DoubleValue(1.5),
		"s": StringValue("x"),
		"b": BoolValue(true),
		"z": NullValue(),
		"l": ArrayValue(IntValue(1), StringValue("a")),
	})
	assert.Equal(t, expected, v)

	_, err = ValueFromJSON([]byte(`{"broken"`))
	assert.Error(t, err)

	v, err = ValueFromJSON([]byte("{\"a\": 1}\n\t "))
	require.NoError(t, err)
	assert.Equal(t, MapValue(map[string]Value{"a": IntValue(1)}), v)

	for _, input := range []string{`{"a":1} garbage`, `{"a":1} {"b":2}`, `1 2`} {
		_, err = ValueFromJSON([]byte(input))
		var convErr *ConvertError
		require.ErrorAs(t, err, &convErr, input)
		assert.Equal(t, ErrMsgTrailingData, convErr.Message)
	}
}

func TestValueOf_LargeUnsignedStringifies(t *testing.T) {
	v, err := ValueOf(map[string]any{"n": uint64(math.MaxUint64)})
	require.NoError(t, err)

	n, ok := v.Get("n")
	require.True(t, ok)
	s, ok := n.Stringify()
	require.True(t, ok)
	assert.Equal(t, "18446744073709551616", s)
	assert.NotContains(t, s, "-")
}

func TestValueFromYAML(t *testing.T) {
	v, err := ValueFromYAML([]byte("name: Joe\nage: 30\nratio: 0.25\ntags:\n  - a\n  - b\nnested:\n  ok: true\n"))
	require.NoError(t, err)

	expected := MapValue(map[string]Value{
		"name":  StringValue("Joe"),
		"age":   IntValue(30),
		"ratio": DoubleValue(0.25),
		"tags":  ArrayValue(StringValue("a"), StringValue("b")),
		"nested": MapValue(map[string]Value{
			"ok": BoolValue(true),
		}),
	})
	assert.Equal(t, expected, v)

	_, err = ValueFromYAML([]byte("a: [unclosed"))
	assert.Error(t, err)
}
