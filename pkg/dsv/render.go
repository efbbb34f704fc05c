// Package dsv table-to-text rendering.
//
// This file implements the serializer half of the codec: walking a Table
// and rendering each field back to text under a quoting and escaping
// policy.
package dsv

import (
	"strings"
)

// escaper backslash-escapes quote and apostrophe characters.
var escaper = strings.NewReplacer(`"`, `\"`, `'`, `\'`)

// Stringify renders the table to delimited text using default options.
//
// Rows are joined by a single newline with no trailing newline after the
// last row. Stringify is total; any field content is representable.
//
// Example:
//
//	t := dsv.NewTable().AddRow([]string{"hello world", "x,y", "plain"})
//	out := dsv.Stringify(t)
//	// out: "hello world","x,y",plain
func Stringify(t *Table) string {
	return StringifyWithOptions(t, DefaultStringifyOptions())
}

// StringifyWithOptions renders the table to delimited text with custom
// options.
//
// Per-field policy, in priority order:
//  1. With EscapeQuotes, quote and apostrophe characters are replaced by
//     their backslash-escaped forms.
//  2. With AlwaysQuote, the field is wrapped in quotes unconditionally.
//  3. A field containing a quote, apostrophe, or the separator string is
//     wrapped in quotes.
//  4. A field containing a space or tab whose first character is not a
//     quote is wrapped in quotes.
//  5. Anything else is emitted verbatim.
//
// If the table has headers set, they are rendered as the first line.
func StringifyWithOptions(t *Table, opts StringifyOptions) string {
	if t == nil {
		return ""
	}
	if opts.Comma == "" {
		opts.Comma = ","
	}

	sep := opts.Comma
	if opts.SpaceAfterComma {
		sep += " "
	}

	var sb strings.Builder
	first := true
	writeRow := func(fields []string) {
		if !first {
			sb.WriteByte('\n')
		}
		first = false
		for i, field := range fields {
			if i > 0 {
				sb.WriteString(sep)
			}
			writeField(&sb, field, opts)
		}
	}

	if len(t.headers) > 0 {
		writeRow(t.headers)
	}
	for _, row := range t.rows {
		writeRow(row)
	}

	return sb.String()
}

// writeField renders a single field under the quoting policy.
func writeField(sb *strings.Builder, field string, opts StringifyOptions) {
	if opts.EscapeQuotes && strings.ContainsAny(field, `"'`) {
		field = escaper.Replace(field)
	}

	switch {
	case opts.AlwaysQuote:
		writeQuoted(sb, field)
	case strings.ContainsAny(field, `"'`) || strings.Contains(field, opts.Comma):
		writeQuoted(sb, field)
	case strings.ContainsAny(field, " \t") && !strings.HasPrefix(field, `"`):
		// Minimal-quoting heuristic: whitespace forces quoting unless the
		// field already leads with a quote character.
		writeQuoted(sb, field)
	default:
		sb.WriteString(field)
	}
}

// writeQuoted wraps a field in quote characters.
func writeQuoted(sb *strings.Builder, field string) {
	sb.WriteByte('"')
	sb.WriteString(field)
	sb.WriteByte('"')
}
