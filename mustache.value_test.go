package mustache

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueConstructors(t *testing.T) {
	tests := []struct {
		name   string
		value  Value
		kind   Kind
		truthy bool
	}{
		{name: "null", value: Null(), kind: KindNull, truthy: false},
		{name: "zero value", value: Value{}, kind: KindNull, truthy: false},
		{name: "true", value: Bool(true), kind: KindBool, truthy: true},
		{name: "false", value: Bool(false), kind: KindBool, truthy: false},
		{name: "zero int", value: Int(0), kind: KindInt, truthy: true},
		{name: "zero double", value: Double(0), kind: KindDouble, truthy: true},
		{name: "empty string", value: String(""), kind: KindString, truthy: true},
		{name: "empty array", value: Array(), kind: KindArray, truthy: false},
		{name: "array", value: Array(Int(1)), kind: KindArray, truthy: true},
		{name: "empty map", value: Map(nil), kind: KindMap, truthy: false},
		{name: "map", value: Map(map[string]Value{"a": Null()}), kind: KindMap, truthy: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.value.Kind())
			assert.Equal(t, tt.truthy, tt.value.Truthy())
		})
	}
}

func TestValueOf(t *testing.T) {
	v, err := ValueOf(map[string]any{
		"name":  "x",
		"count": uint8(3),
		"tags":  []string{"a", "b"},
		"nested": map[any]any{
			"ok": true,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, KindMap, v.Kind())

	count, ok := v.Get("count")
	require.True(t, ok)
	assert.Equal(t, int64(3), count.Int())

	tags, ok := v.Get("tags")
	require.True(t, ok)
	assert.Equal(t, 2, tags.Len())

	nested, ok := v.Get("nested")
	require.True(t, ok)
	okValue, found := nested.Get("ok")
	require.True(t, found)
	assert.True(t, okValue.Bool())

	_, err = ValueOf(func() {})
	require.Error(t, err)
}

func TestParseJSON(t *testing.T) {
	v, err := ParseJSON([]byte(`{"i": 3, "f": 3.0, "big": 1e2, "s": "x", "n": null, "list": [true, false]}`))
	require.NoError(t, err)

	tests := []struct {
		key  string
		kind Kind
	}{
		{key: "i", kind: KindInt},
		{key: "f", kind: KindDouble},
		{key: "big", kind: KindDouble},
		{key: "s", kind: KindString},
		{key: "n", kind: KindNull},
		{key: "list", kind: KindArray},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			field, ok := v.Get(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.kind, field.Kind())
		})
	}

	_, err = ParseJSON([]byte(`{"unterminated": `))
	require.Error(t, err)

	_, err = ParseJSON([]byte(`{"a": 1} garbage`))
	require.Error(t, err)
}

func TestRender_LargeUnsigned(t *testing.T) {
	result, err := Render("{{n}}", map[string]any{"n": uint64(math.MaxUint64)}, nil)
	require.NoError(t, err)
	assert.Equal(t, "18446744073709551616", result)
}

func TestParseYAML(t *testing.T) {
	v, err := ParseYAML([]byte("name: Ann\nage: 7\nscore: 2.5\nitems:\n  - one\n  - two\n"))
	require.NoError(t, err)

	result := MustCompile("{{name}} {{age}} {{score}} {{#items}}{{.}};{{/items}}").RenderValue(v, nil)
	assert.Equal(t, "Ann 7 2.5 one;two;", result)

	_, err = ParseYAML([]byte("a: [unclosed"))
	require.Error(t, err)
}
