// Package dsv parsing and stringification options.
package dsv

import (
	"strings"
	"unicode/utf8"
)

// ParseOptions configures parsing behavior.
type ParseOptions struct {
	// Comma is the field separator.
	// It must be a valid rune and not \r, \n, or the Unicode replacement
	// character (0xFFFD).
	// Default: ','
	Comma rune

	// Quote is the quote character delimiting fields that may contain the
	// separator, whitespace, or quote characters.
	// Default: '"'
	Quote rune

	// Escape, if not 0, allows a literal quote character inside a quoted
	// field by preceding it with this character.
	// Default: 0 (disabled)
	Escape rune

	// TrimLeadingSpace discards spaces and tabs immediately after a
	// separator, before field content begins.
	// Default: false
	TrimLeadingSpace bool

	// SkipBlankLastField treats a separator at the end of every line as a
	// formatting artifact: one trailing separator is stripped per line
	// before tokenizing, and a single empty trailing field is restored on
	// each affected row. The stripping is all-or-nothing across lines.
	// Default: false
	SkipBlankLastField bool
}

// DefaultParseOptions returns the default parse configuration.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		Comma: ',',
		Quote: '"',
	}
}

// StringifyOptions configures stringification behavior.
type StringifyOptions struct {
	// Comma is the field separator string placed between fields.
	// Default: ","
	Comma string

	// EscapeQuotes replaces each quote character with a backslash-escaped
	// quote, and each apostrophe with a backslash-escaped apostrophe,
	// before quoting decisions are made.
	// Default: false
	EscapeQuotes bool

	// AlwaysQuote wraps every field in quote characters regardless of
	// content.
	// Default: false
	AlwaysQuote bool

	// SpaceAfterComma emits a single space after each separator.
	// Default: false
	SpaceAfterComma bool
}

// DefaultStringifyOptions returns the default stringify configuration.
func DefaultStringifyOptions() StringifyOptions {
	return StringifyOptions{
		Comma: ",",
	}
}

// validDelim reports whether r is a valid field separator.
func validDelim(r rune) bool {
	return r != 0 && r != '\r' && r != '\n' && utf8.ValidRune(r) && r != utf8.RuneError
}

// Validate checks if the parse options are valid.
func (o ParseOptions) Validate() error {
	if !validDelim(o.Comma) {
		return &OptionsError{Field: "Comma", Message: "invalid separator"}
	}
	if !validDelim(o.Quote) {
		return &OptionsError{Field: "Quote", Message: "invalid quote character"}
	}
	if o.Quote == o.Comma {
		return &OptionsError{Field: "Quote", Message: "quote character same as separator"}
	}
	if o.Escape != 0 {
		if !validDelim(o.Escape) {
			return &OptionsError{Field: "Escape", Message: "invalid escape character"}
		}
		if o.Escape == o.Comma {
			return &OptionsError{Field: "Escape", Message: "escape character same as separator"}
		}
		if o.Escape == o.Quote {
			return &OptionsError{Field: "Escape", Message: "escape character same as quote"}
		}
	}
	return nil
}

// Validate checks if the stringify options are valid.
func (o StringifyOptions) Validate() error {
	if o.Comma == "" {
		return &OptionsError{Field: "Comma", Message: "empty separator"}
	}
	if strings.ContainsAny(o.Comma, "\r\n") {
		return &OptionsError{Field: "Comma", Message: "separator contains newline"}
	}
	return nil
}

// OptionsError represents an invalid option configuration.
type OptionsError struct {
	Field   string
	Message string
}

func (e *OptionsError) Error() string {
	return "dsv: invalid " + e.Field + ": " + e.Message
}
