// Package dsv dialect detection.
package dsv

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/shapestone/shape-dsv/internal/tokenizer"
)

// Sniffer detects the dialect (separator, header presence) of a sample of
// delimited text. For best results provide at least two or three lines.
type Sniffer struct {
	sample    string
	comma     rune
	hasHeader bool
	analyzed  bool
}

// NewSniffer creates a Sniffer over a sample of delimited text.
func NewSniffer(sample string) *Sniffer {
	return &Sniffer{sample: sample}
}

// DetectComma returns the detected field separator.
// Candidates checked: comma, tab, semicolon, pipe.
func (s *Sniffer) DetectComma() rune {
	s.analyze()
	return s.comma
}

// HasHeader reports whether the first row appears to be a header.
func (s *Sniffer) HasHeader() bool {
	s.analyze()
	return s.hasHeader
}

func (s *Sniffer) analyze() {
	if s.analyzed {
		return
	}
	s.comma = s.detectComma()
	s.hasHeader = s.detectHeader()
	s.analyzed = true
}

var candidateCommas = []rune{',', '\t', ';', '|'}

// detectComma scores each candidate separator by its occurrence count
// outside quoted spans, with a bonus when the count is identical on every
// non-blank line.
func (s *Sniffer) detectComma() rune {
	lines := sampleLines(s.sample)
	if len(lines) == 0 {
		return ','
	}

	best := ','
	bestScore := 0
	for _, comma := range candidateCommas {
		first := countUnquoted(lines[0], comma)
		if first == 0 {
			continue
		}
		score := first
		consistent := true
		for _, line := range lines[1:] {
			if countUnquoted(line, comma) != first {
				consistent = false
				break
			}
		}
		if consistent {
			score *= 10
		}
		if score > bestScore {
			best = comma
			bestScore = score
		}
	}
	return best
}

// countUnquoted counts occurrences of comma outside quoted sections.
func countUnquoted(line string, comma rune) int {
	count := 0
	inQuotes := false
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == comma && !inQuotes:
			count++
		}
	}
	return count
}

// detectHeader scores the fields of the first row: header fields tend to be
// identifier-like text, data fields tend to be numeric, dates, or addresses.
func (s *Sniffer) detectHeader() bool {
	lines := sampleLines(s.sample)
	if len(lines) < 2 {
		return false
	}

	cfg := tokenizer.DefaultConfig()
	cfg.Comma = s.detectComma()
	firstFields, err := tokenizer.SplitLine(lines[0], cfg)
	if err != nil || len(firstFields) == 0 {
		return false
	}

	headerScore := 0
	dataScore := 0
	for _, field := range firstFields {
		field = strings.TrimSpace(field)
		if looksLikeHeader(field) {
			headerScore++
		}
		if looksLikeData(field) {
			dataScore++
		}
	}
	return headerScore > dataScore
}

// sampleLines returns the non-blank lines of the sample.
func sampleLines(sample string) []string {
	var lines []string
	for _, line := range strings.Split(sample, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

var headerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`),       // identifier / snake_case
	regexp.MustCompile(`^[A-Z][a-z]+([ ][A-Z][a-z]+)*$`), // Title Case
}

var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),
	regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`),
}

func looksLikeHeader(field string) bool {
	if field == "" || isNumeric(field) {
		return false
	}
	for _, pattern := range headerPatterns {
		if pattern.MatchString(field) {
			return true
		}
	}
	return false
}

func looksLikeData(field string) bool {
	if field == "" {
		return false
	}
	if isNumeric(field) || strings.Contains(field, "@") {
		return true
	}
	for _, pattern := range datePatterns {
		if pattern.MatchString(field) {
			return true
		}
	}
	return false
}

func isNumeric(field string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	return err == nil
}

// HeaderConverter transforms header names, typically before SetHeaders.
type HeaderConverter func(string) string

// LowercaseHeader converts headers to lowercase.
func LowercaseHeader(s string) string {
	return strings.ToLower(s)
}

// UppercaseHeader converts headers to uppercase.
func UppercaseHeader(s string) string {
	return strings.ToUpper(s)
}

// SnakeCaseHeader converts headers to snake_case.
func SnakeCaseHeader(s string) string {
	var result strings.Builder
	prevWasSpace := false
	for i, ch := range s {
		if ch == ' ' {
			if result.Len() > 0 && !prevWasSpace {
				result.WriteRune('_')
			}
			prevWasSpace = true
			continue
		}
		if unicode.IsUpper(ch) && i > 0 && !prevWasSpace {
			result.WriteRune('_')
		}
		result.WriteRune(unicode.ToLower(ch))
		prevWasSpace = false
	}
	return result.String()
}
