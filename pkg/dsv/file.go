// Package dsv file reading and writing.
//
// These are thin wrappers around the core codec: the core itself never
// performs I/O.
package dsv

import (
	"fmt"
	"os"
)

// ParseFile reads the file at path and parses its contents.
// The path is used as the source label in error messages.
func ParseFile(path string, opts ParseOptions) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dsv: read %s: %w", path, err)
	}
	return ParseWithOptions(string(data), path, opts)
}

// WriteFile stringifies the table and writes the result to path.
// It returns the text written, so calls can be chained with further
// processing of the serialized form.
func WriteFile(path string, t *Table, opts StringifyOptions) (string, error) {
	text := StringifyWithOptions(t, opts)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("dsv: write %s: %w", path, err)
	}
	return text, nil
}
