// Package dsv parses delimiter-separated text into an in-memory Table and
// serializes Tables back to text, with configurable separator, quoting, and
// escaping rules.
//
// # Parsing
//
// Parse materializes the entire input in memory as a Table of rows and
// string fields. Blank (whitespace-only) lines are dropped before
// tokenization and never appear as empty rows. Column counts may vary from
// row to row; no schema is enforced.
//
//	t, err := dsv.Parse("name,age\nAlice,30\nBob,25", "people.csv")
//	if err != nil {
//	    // handle error
//	}
//	row, _ := t.Row(0)
//	name, _ := row.Get(0)
//
// The source label ("people.csv" above) only annotates error messages; it
// has no semantic effect.
//
// # Stringification
//
// Stringify is total: any field content is representable through quoting
// and escaping, so it returns a string with no error.
//
//	out := dsv.Stringify(t)
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use by multiple
// goroutines. Each call operates on its own input and output with no shared
// mutable state, provided the caller does not mutate a Table while it is
// being stringified.
package dsv

import (
	"errors"

	"github.com/shapestone/shape-dsv/internal/preprocess"
	"github.com/shapestone/shape-dsv/internal/tokenizer"
)

// Parse parses delimited text into a Table using default options.
//
// source annotates error messages, typically with a file name; it may be
// empty. Empty or all-blank input yields an empty table and a nil error.
func Parse(input, source string) (*Table, error) {
	return ParseWithOptions(input, source, DefaultParseOptions())
}

// ParseWithOptions parses delimited text into a Table with custom options.
//
// Example:
//
//	opts := dsv.DefaultParseOptions()
//	opts.Comma = '\t' // tab-separated
//	opts.TrimLeadingSpace = true
//	t, err := dsv.ParseWithOptions(input, "data.tsv", opts)
func ParseWithOptions(input, source string, opts ParseOptions) (*Table, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	cleaned := preprocess.Clean(input, opts.Comma, opts.SkipBlankLastField)

	t := NewTable()
	if len(cleaned.Lines) == 0 {
		return t, nil
	}

	blankLast := make(map[int]bool, len(cleaned.SepEnded))
	for _, idx := range cleaned.SepEnded {
		blankLast[idx] = true
	}

	cfg := tokenizer.Config{
		Comma:            opts.Comma,
		Quote:            opts.Quote,
		Escape:           opts.Escape,
		TrimLeadingSpace: opts.TrimLeadingSpace,
	}

	for i, line := range cleaned.Lines {
		fields, err := tokenizer.SplitLine(line, cfg)
		if err != nil {
			perr := &ParseError{Source: source, Line: i + 1, Err: err}
			var tokErr *tokenizer.Error
			if errors.As(err, &tokErr) {
				perr.Column = tokErr.Column
				perr.Err = tokErr.Err
			}
			return nil, perr
		}

		// Restore the deliberately blank trailing field removed by the
		// preprocessor's separator stripping.
		if blankLast[i] {
			fields = append(fields, "")
		}

		t.rows = append(t.rows, fields)
	}

	return t, nil
}

// Validate checks if the input is well-formed under default options.
//
// Returns nil if the input parses cleanly, or the ParseError describing the
// first malformed line:
//
//	if err := dsv.Validate(input); err != nil {
//	    fmt.Println("invalid input:", err)
//	}
func Validate(input string) error {
	_, err := Parse(input, "")
	return err
}
