package dsv

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Unmarshal parses the delimited input and stores the result in the value
// pointed to by v, using default parse options.
//
// Two target types are supported:
//
//  1. *[][]string — raw rows, header row included:
//
//     var rows [][]string
//     err := dsv.Unmarshal(input, &rows)
//
//  2. *[]Struct — the first row is treated as headers and matched to
//     struct fields by dsv tag or field name, case-insensitively:
//
//     type Person struct {
//         Name string `dsv:"name"`
//         Age  int    `dsv:"age"`
//     }
//     var people []Person
//     err := dsv.Unmarshal(input, &people)
//
// Columns with no matching struct field are ignored; struct fields with no
// matching column keep their zero value. Supported field types: string,
// ints, uints, floats, bool, and pointers to these (an empty field yields
// a nil pointer).
func Unmarshal(input string, v any) error {
	return UnmarshalWithOptions(input, v, DefaultParseOptions())
}

// UnmarshalWithOptions parses the delimited input with custom parse options
// and stores the result in the value pointed to by v.
func UnmarshalWithOptions(input string, v any, opts ParseOptions) error {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return fmt.Errorf("dsv: Unmarshal(nil)")
	}
	if rv.Kind() != reflect.Ptr {
		return fmt.Errorf("dsv: Unmarshal(non-pointer %s)", rv.Type())
	}
	if rv.IsNil() {
		return fmt.Errorf("dsv: Unmarshal(nil %s)", rv.Type())
	}

	elem := rv.Elem()
	if elem.Kind() != reflect.Slice {
		return fmt.Errorf("dsv: Unmarshal expects pointer to slice, got %s", elem.Type())
	}
	sliceElemType := elem.Type().Elem()

	t, err := ParseWithOptions(input, "", opts)
	if err != nil {
		return err
	}

	// Raw path: *[][]string gets every row, headers included.
	if sliceElemType.Kind() == reflect.Slice && sliceElemType.Elem().Kind() == reflect.String {
		rows := make([][]string, t.RowCount())
		for i, row := range t.Rows() {
			rows[i] = row.Fields()
		}
		elem.Set(reflect.ValueOf(rows))
		return nil
	}

	if sliceElemType.Kind() != reflect.Struct {
		return fmt.Errorf("dsv: Unmarshal expects *[][]string or pointer to slice of structs, got slice of %s", sliceElemType)
	}

	if t.RowCount() == 0 {
		elem.Set(reflect.MakeSlice(elem.Type(), 0, 0))
		return nil
	}

	headerRow, _ := t.Row(0)
	headers := headerRow.Fields()
	fieldForColumn := mapColumns(sliceElemType, headers)

	result := reflect.MakeSlice(elem.Type(), 0, t.RowCount()-1)
	for rowIdx, row := range t.Rows()[1:] {
		structVal := reflect.New(sliceElemType).Elem()
		for colIdx, value := range row.Fields() {
			if colIdx >= len(headers) {
				continue
			}
			fieldIdx, ok := fieldForColumn[colIdx]
			if !ok {
				continue
			}
			if err := setField(structVal.Field(fieldIdx), value); err != nil {
				return fmt.Errorf("dsv: row %d, column %q: %w", rowIdx+1, headers[colIdx], err)
			}
		}
		result = reflect.Append(result, structVal)
	}

	elem.Set(result)
	return nil
}

// mapColumns resolves each header to a struct field index, matching the dsv
// tag first and the field name second, both case-insensitively.
func mapColumns(structType reflect.Type, headers []string) map[int]int {
	byName := make(map[string]int, structType.NumField())
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if !field.IsExported() {
			continue
		}
		info := parseFieldTag(field)
		if info.skip {
			continue
		}
		byName[strings.ToLower(info.name)] = i
	}

	fieldForColumn := make(map[int]int, len(headers))
	for col, header := range headers {
		if idx, ok := byName[strings.ToLower(strings.TrimSpace(header))]; ok {
			fieldForColumn[col] = idx
		}
	}
	return fieldForColumn
}

// setField stores a text value into a struct field.
func setField(field reflect.Value, value string) error {
	if field.Kind() == reflect.Ptr {
		if value == "" {
			return nil // leave nil
		}
		field.Set(reflect.New(field.Type().Elem()))
		field = field.Elem()
	}

	// An empty field leaves non-string targets at their zero value.
	if value == "" && field.Kind() != reflect.String {
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(strings.TrimSpace(value), 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("cannot parse %q as %s", value, field.Type())
		}
		field.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(strings.TrimSpace(value), 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("cannot parse %q as %s", value, field.Type())
		}
		field.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(strings.TrimSpace(value), field.Type().Bits())
		if err != nil {
			return fmt.Errorf("cannot parse %q as %s", value, field.Type())
		}
		field.SetFloat(f)
	case reflect.Bool:
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("cannot parse %q as bool", value)
		}
		field.SetBool(b)
	default:
		return fmt.Errorf("unsupported type %s", field.Type())
	}
	return nil
}
