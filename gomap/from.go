package gomap

import (
	"encoding"
	"encoding/base64"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/nest-format/go-nest/ir"
)

// FromIR fills the value pointed to by v from an IR node.
func FromIR(node *ir.Node, v any) error {
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Pointer || val.IsNil() {
		return fmt.Errorf("%w: target must be a non-nil pointer", ErrUnmarshal)
	}
	return fromIR(node, val.Elem())
}

func fromIR(node *ir.Node, v reflect.Value) error {
	if node == nil || node.Type == ir.NullType {
		v.Set(reflect.Zero(v.Type()))
		return nil
	}

	if v.Kind() != reflect.Pointer && v.CanAddr() {
		if tu, ok := v.Addr().Interface().(encoding.TextUnmarshaler); ok {
			if node.Type != ir.ScalarType {
				return fmt.Errorf("%w: line %d: expected scalar for %s",
					ErrUnmarshal, node.Line, v.Type())
			}
			if err := tu.UnmarshalText([]byte(node.Scalar)); err != nil {
				return fmt.Errorf("%w: line %d: %w", ErrUnmarshal, node.Line, err)
			}
			return nil
		}
	}

	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		return fromIR(node, v.Elem())
	case reflect.Interface:
		v.Set(reflect.ValueOf(node.ToAny()))
		return nil
	case reflect.Struct:
		return structFromIR(node, v)
	case reflect.Map:
		return mapFromIR(node, v)
	case reflect.Slice:
		return sliceFromIR(node, v)
	case reflect.Array:
		return arrayFromIR(node, v)
	default:
		if node.Type != ir.ScalarType {
			return fmt.Errorf("%w: line %d: expected scalar for %s",
				ErrUnmarshal, node.Line, v.Type())
		}
		return setScalar(node, v)
	}
}

func setScalar(node *ir.Node, v reflect.Value) error {
	s := node.Scalar
	fail := func(err error) error {
		return fmt.Errorf("%w: line %d: %q: %w", ErrUnmarshal, node.Line, s, err)
	}
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return fail(err)
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 10, v.Type().Bits())
		if err != nil {
			return fail(err)
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u, err := strconv.ParseUint(s, 10, v.Type().Bits())
		if err != nil {
			return fail(err)
		}
		v.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return fail(err)
		}
		v.SetFloat(f)
	default:
		return fmt.Errorf("%w: unsupported type %s", ErrUnmarshal, v.Type())
	}
	return nil
}

func structFromIR(node *ir.Node, v reflect.Value) error {
	if node.Type != ir.MapType {
		return fmt.Errorf("%w: line %d: expected map for %s",
			ErrUnmarshal, node.Line, v.Type())
	}
	t := v.Type()
	fields := make(map[string]reflect.Value)
	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name, _ := fieldName(field)
		if name == "-" {
			continue
		}
		fields[name] = v.Field(i)
		fields[field.Name] = v.Field(i)
	}
	for i, key := range node.Keys {
		field, ok := fields[key]
		if !ok {
			return fmt.Errorf("%w: line %d: unknown field %q for %s",
				ErrUnmarshal, node.Values[i].Line, key, t)
		}
		if err := fromIR(node.Values[i], field); err != nil {
			return err
		}
	}
	return nil
}

func mapFromIR(node *ir.Node, v reflect.Value) error {
	if node.Type != ir.MapType {
		return fmt.Errorf("%w: line %d: expected map for %s",
			ErrUnmarshal, node.Line, v.Type())
	}
	if v.IsNil() {
		v.Set(reflect.MakeMapWithSize(v.Type(), len(node.Keys)))
	}
	keyType := v.Type().Key()
	for i, key := range node.Keys {
		mk := reflect.New(keyType).Elem()
		if err := setMapKey(key, mk); err != nil {
			return err
		}
		mv := reflect.New(v.Type().Elem()).Elem()
		if err := fromIR(node.Values[i], mv); err != nil {
			return err
		}
		v.SetMapIndex(mk, mv)
	}
	return nil
}

func setMapKey(key string, v reflect.Value) error {
	if v.CanAddr() {
		if tu, ok := v.Addr().Interface().(encoding.TextUnmarshaler); ok {
			return tu.UnmarshalText([]byte(key))
		}
	}
	return setScalar(&ir.Node{Type: ir.ScalarType, Scalar: key}, v)
}

func sliceFromIR(node *ir.Node, v reflect.Value) error {
	if v.Type().Elem().Kind() == reflect.Uint8 && node.Type == ir.ScalarType {
		d, err := base64.RawStdEncoding.DecodeString(node.Scalar)
		if err != nil {
			return fmt.Errorf("%w: line %d: %w", ErrUnmarshal, node.Line, err)
		}
		v.SetBytes(d)
		return nil
	}
	if node.Type != ir.ListType {
		return fmt.Errorf("%w: line %d: expected list for %s",
			ErrUnmarshal, node.Line, v.Type())
	}
	res := reflect.MakeSlice(v.Type(), len(node.Values), len(node.Values))
	for i, elt := range node.Values {
		if err := fromIR(elt, res.Index(i)); err != nil {
			return err
		}
	}
	v.Set(res)
	return nil
}

func arrayFromIR(node *ir.Node, v reflect.Value) error {
	if node.Type != ir.ListType {
		return fmt.Errorf("%w: line %d: expected list for %s",
			ErrUnmarshal, node.Line, v.Type())
	}
	if len(node.Values) != v.Len() {
		return fmt.Errorf("%w: line %d: expected %d elements, got %d",
			ErrUnmarshal, node.Line, v.Len(), len(node.Values))
	}
	for i, elt := range node.Values {
		if err := fromIR(elt, v.Index(i)); err != nil {
			return err
		}
	}
	return nil
}

func toSnakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteRune('_')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
