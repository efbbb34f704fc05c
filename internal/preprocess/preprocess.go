// Package preprocess cleans raw delimited text before tokenization.
//
// Cleaning removes whitespace-only lines, trims trailing line terminators
// from the end of the whole input, and optionally strips one trailing
// separator from every line. Stripping is all-or-nothing: it happens only when every
// remaining line ends with the separator, so a file where the trailing
// separator is a formatting artifact is normalized while a file with a
// genuinely ragged last column is left alone.
package preprocess

import (
	"strings"
)

// Result is the output of Clean.
type Result struct {
	// Lines are the cleaned lines, in input order, with whitespace-only
	// lines removed.
	Lines []string

	// SepEnded holds the indices (into Lines) of lines that ended with the
	// separator before stripping. It is populated only when Stripped is
	// true; the tokenizing layer re-inserts one empty trailing field on
	// exactly these lines.
	SepEnded []int

	// Stripped reports whether one trailing separator was removed from
	// every line.
	Stripped bool
}

// Clean prepares raw text for tokenization.
//
// When stripTrailingSep is false the text is only split and blank-filtered.
// When true, and every non-blank line ends with sep, one trailing sep is
// removed per line and the affected line indices are recorded in SepEnded.
func Clean(text string, sep rune, stripTrailingSep bool) Result {
	// Only line terminators are trimmed here: a trailing space on the last
	// line is field content, not framing. Whitespace-only trailing lines
	// fall out of the blank filter below.
	text = strings.TrimRight(text, "\r\n")
	if text == "" {
		return Result{Lines: []string{}}
	}

	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if isBlank(line) {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return Result{Lines: lines}
	}

	res := Result{Lines: lines}
	if !stripTrailingSep {
		return res
	}

	// All-or-nothing: one line without the trailing separator disables
	// stripping everywhere.
	for _, line := range lines {
		if !strings.HasSuffix(line, string(sep)) {
			return res
		}
	}

	res.Stripped = true
	res.SepEnded = make([]int, 0, len(lines))
	for i, line := range lines {
		res.SepEnded = append(res.SepEnded, i)
		lines[i] = line[:len(line)-len(string(sep))]
	}
	return res
}

// isBlank reports whether a line contains only whitespace.
func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
