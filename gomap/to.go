package gomap

import (
	"encoding"
	"encoding/base64"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/nest-format/go-nest/ir"
)

// ToIR converts a Go value to an IR node.
func ToIR(v any) (*ir.Node, error) {
	if v == nil {
		return ir.Null(), nil
	}
	if m, ok := v.(encoding.TextMarshaler); ok {
		text, err := m.MarshalText()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMarshal, err)
		}
		return ir.FromString(string(text)), nil
	}

	val := reflect.ValueOf(v)
	switch val.Kind() {
	case reflect.Pointer, reflect.Interface:
		if val.IsNil() {
			return ir.Null(), nil
		}
		return ToIR(val.Elem().Interface())
	case reflect.String:
		return ir.FromString(val.String()), nil
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return ir.FromString(fmt.Sprint(v)), nil
	case reflect.Slice, reflect.Array:
		if val.Kind() == reflect.Slice && val.Type().Elem().Kind() == reflect.Uint8 {
			return ir.FromString(base64.RawStdEncoding.EncodeToString(val.Bytes())), nil
		}
		res := ir.NewList()
		for i := range val.Len() {
			elt, err := ToIR(val.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			res.Append(elt)
		}
		return res, nil
	case reflect.Map:
		res := ir.NewMap()
		keys := make([]string, 0, val.Len())
		byKey := make(map[string]reflect.Value, val.Len())
		for _, mk := range val.MapKeys() {
			key, err := mapKey(mk.Interface())
			if err != nil {
				return nil, err
			}
			keys = append(keys, key)
			byKey[key] = val.MapIndex(mk)
		}
		slices.Sort(keys)
		for _, key := range keys {
			child, err := ToIR(byKey[key].Interface())
			if err != nil {
				return nil, err
			}
			res.Set(key, child)
		}
		return res, nil
	case reflect.Struct:
		return structToIR(val)
	default:
		return nil, fmt.Errorf("%w: unsupported type %s", ErrMarshal, val.Type())
	}
}

func mapKey(v any) (string, error) {
	if m, ok := v.(encoding.TextMarshaler); ok {
		text, err := m.MarshalText()
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrMarshal, err)
		}
		return string(text), nil
	}
	val := reflect.ValueOf(v)
	switch val.Kind() {
	case reflect.Pointer, reflect.Interface:
		if !val.IsNil() {
			return mapKey(val.Elem().Interface())
		}
	case reflect.String:
		return val.String(), nil
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return fmt.Sprint(v), nil
	}
	return "", fmt.Errorf("%w: unsupported map key type %s", ErrMarshal, reflect.TypeOf(v))
}

func structToIR(val reflect.Value) (*ir.Node, error) {
	res := ir.NewMap()
	t := val.Type()
	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name, opts := fieldName(field)
		if name == "-" {
			continue
		}
		fv := val.Field(i)
		if strings.Contains(opts, "omitempty") && fv.IsZero() {
			continue
		}
		child, err := ToIR(fv.Interface())
		if err != nil {
			return nil, err
		}
		res.Set(name, child)
	}
	return res, nil
}

// fieldName resolves the encoded name of a struct field: the nest tag,
// then the json tag, then the snake_case field name.
func fieldName(field reflect.StructField) (name, opts string) {
	tag, ok := field.Tag.Lookup("nest")
	if !ok {
		tag, ok = field.Tag.Lookup("json")
	}
	if ok {
		name, opts, _ = strings.Cut(tag, ",")
		if name == "" {
			name = toSnakeCase(field.Name)
		}
		return name, opts
	}
	return toSnakeCase(field.Name), ""
}
