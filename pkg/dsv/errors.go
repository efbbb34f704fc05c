// Package dsv error types.
package dsv

import (
	"fmt"

	"github.com/shapestone/shape-dsv/internal/tokenizer"
)

// ParseError represents a parsing error with position information.
// It provides context about where the error occurred in the input.
type ParseError struct {
	// Source is the label passed to Parse, typically a file name. May be
	// empty.
	Source string
	// Line is the 1-indexed line number where the error occurred, counted
	// over non-blank lines.
	Line int
	// Column is the 1-indexed column (in runes) where the error occurred,
	// or 0 when unknown.
	Column int
	// Err is the underlying error.
	Err error
}

// Error returns a formatted message with position information.
func (e *ParseError) Error() string {
	pos := fmt.Sprintf("line %d", e.Line)
	if e.Column > 0 {
		pos = fmt.Sprintf("line %d, column %d", e.Line, e.Column)
	}
	if e.Source == "" {
		return fmt.Sprintf("parse error on %s: %v", pos, e.Err)
	}
	return fmt.Sprintf("%s: parse error on %s: %v", e.Source, pos, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Sentinel errors surfaced through ParseError. Use errors.Is to test for
// them.
var (
	// ErrUnterminatedQuote indicates a quoted field with no closing quote
	// before the end of its line.
	ErrUnterminatedQuote = tokenizer.ErrUnterminatedQuote

	// ErrTrailingEscape indicates the escape character as the last
	// character of a line.
	ErrTrailingEscape = tokenizer.ErrTrailingEscape

	// ErrQuote indicates content after a closing quote that is not a
	// separator.
	ErrQuote = tokenizer.ErrQuote
)
