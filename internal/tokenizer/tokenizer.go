package tokenizer

import (
	"errors"
	"fmt"
	"strings"
)

// Config configures line tokenization.
type Config struct {
	// Comma is the field separator. Default: ','
	Comma rune
	// Quote is the quote character. Default: '"'
	Quote rune
	// Escape allows a literal quote character inside a quoted span.
	// Default: 0 (disabled)
	Escape rune
	// TrimLeadingSpace discards spaces and tabs immediately after a
	// separator, before field content begins.
	TrimLeadingSpace bool
}

// DefaultConfig returns the default tokenizer configuration.
func DefaultConfig() Config {
	return Config{
		Comma: ',',
		Quote: '"',
	}
}

// Sentinel errors for malformed lines.
var (
	// ErrUnterminatedQuote indicates a quoted span with no closing quote.
	ErrUnterminatedQuote = errors.New("unterminated quoted field")

	// ErrTrailingEscape indicates the escape character as the last
	// character of a line.
	ErrTrailingEscape = errors.New("escape character at end of line")

	// ErrQuote indicates content after a closing quote that is not a
	// separator.
	ErrQuote = errors.New("unexpected character after closing quote")
)

// Error is a tokenization failure at a specific column (1-indexed, in runes).
type Error struct {
	Column int
	Err    error
}

// Error returns the formatted message.
func (e *Error) Error() string {
	return fmt.Sprintf("column %d: %v", e.Column, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *Error) Unwrap() error {
	return e.Err
}

// SplitLine tokenizes a single line into fields.
//
// A quoted span begins only when the quote character is the first character
// of a field (optionally after whitespace discarded by TrimLeadingSpace).
// A quote anywhere else in an unquoted field is verbatim content. Inside a
// quoted span the separator is literal; the span ends at the next unescaped
// quote, which must be followed by a separator or the end of the line.
//
// The line must not contain newlines; callers split rows beforehand.
func SplitLine(line string, cfg Config) ([]string, error) {
	fields := make([]string, 0, 8)
	var field strings.Builder

	st := stateFieldStart
	afterSep := false // TrimLeadingSpace applies only after a separator
	col := 0
	openCol := 0 // column of the opening quote, for error reporting

	endField := func() {
		fields = append(fields, field.String())
		field.Reset()
	}

	for _, r := range line {
		col++

		switch st {
		case stateFieldStart:
			switch cfg.classify(r) {
			case classSep:
				endField()
				afterSep = true
			case classQuote:
				st = stateQuoted
				openCol = col
			default:
				if cfg.TrimLeadingSpace && afterSep && (r == ' ' || r == '\t') {
					continue // still at field start
				}
				field.WriteRune(r)
				st = stateUnquoted
			}

		case stateUnquoted:
			// Everything except the separator is verbatim content,
			// including quote and escape characters.
			if cfg.classify(r) == classSep {
				endField()
				st = stateFieldStart
				afterSep = true
			} else {
				field.WriteRune(r)
			}

		case stateQuoted:
			switch cfg.classify(r) {
			case classQuote:
				st = stateAfterQuote
			case classEscape:
				st = stateEscapePending
			default:
				field.WriteRune(r)
			}

		case stateEscapePending:
			field.WriteRune(r)
			st = stateQuoted

		case stateAfterQuote:
			if cfg.classify(r) != classSep {
				return nil, &Error{Column: col, Err: ErrQuote}
			}
			endField()
			st = stateFieldStart
			afterSep = true
		}
	}

	switch st {
	case stateQuoted:
		return nil, &Error{Column: openCol, Err: ErrUnterminatedQuote}
	case stateEscapePending:
		return nil, &Error{Column: col, Err: ErrTrailingEscape}
	}

	// End of line terminates the final field, including an empty field
	// after a trailing separator.
	endField()
	return fields, nil
}
