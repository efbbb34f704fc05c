package dsv

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// tagName is the struct tag key used by Marshal and Unmarshal.
const tagName = "dsv"

// fieldInfo describes how a struct field maps to a column.
type fieldInfo struct {
	name      string
	omitEmpty bool
	skip      bool
}

// parseFieldTag reads a struct field's dsv tag.
//
// Tag format:
//
//	Field int `dsv:"column_name"`           // map to column "column_name"
//	Field int `dsv:"column_name,omitempty"` // empty values emit ""
//	Field int `dsv:"-"`                     // always ignored
//	Field int                               // column named after the field
func parseFieldTag(field reflect.StructField) fieldInfo {
	tag := field.Tag.Get(tagName)
	if tag == "-" {
		return fieldInfo{skip: true}
	}

	info := fieldInfo{name: field.Name}
	parts := strings.Split(tag, ",")
	if parts[0] != "" {
		info.name = parts[0]
	}
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			info.omitEmpty = true
		}
	}
	return info
}

// Marshal returns the delimited encoding of v using default options.
//
// v must be a slice of structs or of pointers to structs. Each struct
// becomes a row, with exported struct fields becoming columns in
// declaration order. A header row is emitted first, built from field names
// or dsv tags.
//
// With the "omitempty" option an empty value (false, 0, nil pointer, empty
// string) is emitted as an empty field, keeping the column structure
// consistent.
//
// Supported field types: string, ints, uints, floats, bool, and pointers
// to these. A nil pointer encodes as an empty field. An empty slice
// produces empty output.
func Marshal(v any) (string, error) {
	return MarshalWithOptions(v, DefaultStringifyOptions())
}

// MarshalWithOptions returns the delimited encoding of v with custom
// stringify options.
func MarshalWithOptions(v any, opts StringifyOptions) (string, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return "", fmt.Errorf("dsv: Marshal(nil)")
	}
	if rv.Kind() != reflect.Slice {
		return "", fmt.Errorf("dsv: Marshal expects slice, got %s", rv.Type())
	}
	if rv.Len() == 0 {
		return "", nil
	}

	elemType := rv.Type().Elem()
	if elemType.Kind() == reflect.Ptr {
		elemType = elemType.Elem()
	}
	if elemType.Kind() != reflect.Struct {
		return "", fmt.Errorf("dsv: Marshal expects slice of structs, got slice of %s", elemType)
	}

	type column struct {
		fieldInfo
		index int
	}
	var columns []column
	for i := 0; i < elemType.NumField(); i++ {
		field := elemType.Field(i)
		if !field.IsExported() {
			continue
		}
		info := parseFieldTag(field)
		if info.skip {
			continue
		}
		columns = append(columns, column{fieldInfo: info, index: i})
	}

	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.name
	}

	t := NewTable().SetHeaders(headers)
	for rowIdx := 0; rowIdx < rv.Len(); rowIdx++ {
		row := rv.Index(rowIdx)
		if row.Kind() == reflect.Ptr {
			if row.IsNil() {
				continue
			}
			row = row.Elem()
		}

		fields := make([]string, len(columns))
		for i, col := range columns {
			fieldVal := row.Field(col.index)
			if col.omitEmpty && isEmptyValue(fieldVal) {
				continue
			}
			s, err := encodeValue(fieldVal)
			if err != nil {
				return "", fmt.Errorf("dsv: marshal field %s: %w", col.name, err)
			}
			fields[i] = s
		}
		t.AddRow(fields)
	}

	return StringifyWithOptions(t, opts), nil
}

// encodeValue converts a single struct field value to its text form.
func encodeValue(rv reflect.Value) (string, error) {
	if !rv.IsValid() {
		return "", nil
	}

	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return "", nil
		}
		return encodeValue(rv.Elem())
	case reflect.String:
		return rv.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64), nil
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), nil
	default:
		return "", fmt.Errorf("unsupported type %s", rv.Type())
	}
}

// isEmptyValue reports whether the value is the zero value for omitempty.
func isEmptyValue(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.String:
		return rv.Len() == 0
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
