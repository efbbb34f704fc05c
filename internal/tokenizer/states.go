// Package tokenizer splits one preprocessed line of delimited text into
// fields using an explicit finite-state machine.
//
// The machine has one transition per (state, character class) pair so that
// every edge case — unterminated quote, escape at end of line, content after
// a closing quote — is independently testable.
package tokenizer

// state identifies where the machine is within a field.
type state uint8

const (
	// stateFieldStart is the beginning of a field, before any content.
	stateFieldStart state = iota
	// stateUnquoted is inside an unquoted field.
	stateUnquoted
	// stateQuoted is inside a quoted span.
	stateQuoted
	// stateEscapePending follows the escape character inside a quoted span.
	stateEscapePending
	// stateAfterQuote follows the closing quote of a quoted span.
	stateAfterQuote
)

// charClass classifies an input character relative to the configuration.
type charClass uint8

const (
	classSep charClass = iota
	classQuote
	classEscape
	classOther
)

// classify maps a rune to its character class. The escape class exists only
// when an escape character is configured.
func (c Config) classify(r rune) charClass {
	switch {
	case r == c.Comma:
		return classSep
	case r == c.Quote:
		return classQuote
	case c.Escape != 0 && r == c.Escape:
		return classEscape
	default:
		return classOther
	}
}
