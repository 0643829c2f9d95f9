package internal

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConvertError reports Go data that has no Value form
type ConvertError struct {
	Message string
	Path    string
	Type    string
	Cause   error
}

func (e *ConvertError) Error() string {
	msg := e.Message
	if e.Type != "" {
		msg += " " + e.Type
	}
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause
func (e *ConvertError) Unwrap() error {
	return e.Cause
}

// ValueOf converts plain Go data into a Value. Supported: nil, bool, all
// integer and float kinds, string, json.Number, Value, and slices, arrays,
// maps with string keys and pointers to any of these.
func ValueOf(data any) (Value, error) {
	return valueOf(data, "")
}

func valueOf(data any, path string) (Value, error) {
	switch d := data.(type) {
	case nil:
		return NullValue(), nil
	case Value:
		return d, nil
	case bool:
		return BoolValue(d), nil
	case string:
		return StringValue(d), nil
	case int:
		return IntValue(int64(d)), nil
	case int64:
		return IntValue(d), nil
	case float64:
		return DoubleValue(d), nil
	case json.Number:
		return numberValue(d, path)
	case []any:
		items := make([]Value, len(d))
		for i, item := range d {
			v, err := valueOf(item, indexPath(path, i))
			if err != nil {
				return Value{}, err
			}
			items[i] = v
		}
		return Value{kind: KindArray, items: items}, nil
	case map[string]any:
		m := make(map[string]Value, len(d))
		for k, item := range d {
			v, err := valueOf(item, keyPath(path, k))
			if err != nil {
				return Value{}, err
			}
			m[k] = v
		}
		return Value{kind: KindMap, m: m}, nil
	}
	return reflectValueOf(reflect.ValueOf(data), path)
}

// reflectValueOf handles the typed containers and scalar kinds the type
// switch in valueOf does not list
func reflectValueOf(rv reflect.Value, path string) (Value, error) {
	switch rv.Kind() {
	case reflect.Invalid:
		return NullValue(), nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return NullValue(), nil
		}
		return valueOf(rv.Elem().Interface(), path)
	case reflect.Bool:
		return BoolValue(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return IntValue(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return DoubleValue(float64(u)), nil
		}
		return IntValue(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		return DoubleValue(rv.Float()), nil
	case reflect.String:
		return StringValue(rv.String()), nil
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return NullValue(), nil
		}
		items := make([]Value, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			v, err := valueOf(rv.Index(i).Interface(), indexPath(path, i))
			if err != nil {
				return Value{}, err
			}
			items[i] = v
		}
		return Value{kind: KindArray, items: items}, nil
	case reflect.Map:
		if rv.IsNil() {
			return NullValue(), nil
		}
		m := make(map[string]Value, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			key, ok := mapKey(iter.Key())
			if !ok {
				return Value{}, &ConvertError{
					Message: ErrMsgUnsupportedMapKeyType,
					Path:    path,
					Type:    iter.Key().Type().String(),
				}
			}
			v, err := valueOf(iter.Value().Interface(), keyPath(path, key))
			if err != nil {
				return Value{}, err
			}
			m[key] = v
		}
		return Value{kind: KindMap, m: m}, nil
	default:
		return Value{}, &ConvertError{
			Message: ErrMsgUnsupportedValueType,
			Path:    path,
			Type:    rv.Type().String(),
		}
	}
}

// mapKey accepts string keys, including strings behind an interface
func mapKey(key reflect.Value) (string, bool) {
	if key.Kind() == reflect.Interface {
		key = key.Elem()
	}
	if key.Kind() != reflect.String {
		return "", false
	}
	return key.String(), true
}

// numberValue keeps integral JSON numbers as Int and the rest as Double
func numberValue(n json.Number, path string) (Value, error) {
	if !strings.ContainsAny(n.String(), ".eE") {
		if i, err := n.Int64(); err == nil {
			return IntValue(i), nil
		}
	}
	f, err := n.Float64()
	if err != nil {
		return Value{}, &ConvertError{Message: ErrMsgInvalidNumber, Path: path, Cause: err}
	}
	return DoubleValue(f), nil
}

// ValueFromJSON decodes a JSON document into a Value
func ValueFromJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var decoded any
	if err := dec.Decode(&decoded); err != nil {
		return Value{}, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Value{}, &ConvertError{Message: ErrMsgTrailingData, Cause: err}
	}
	return ValueOf(decoded)
}

// ValueFromYAML decodes a YAML document into a Value
func ValueFromYAML(data []byte) (Value, error) {
	var decoded any
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		return Value{}, err
	}
	return ValueOf(decoded)
}

func indexPath(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}

func keyPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + StrDot + key
}
