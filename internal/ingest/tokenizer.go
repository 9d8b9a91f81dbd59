package ingest

import "strings"

// Tokenizer splits raw document text into rows and fields. Double quotes
// toggle an "inside quotes" state so delimiters inside quoted regions do not
// break fields; embedded quote escaping is not supported.
type Tokenizer struct {
	delimiters map[rune]struct{}
}

// NewTokenizer builds a tokenizer for the given field delimiters. With no
// arguments it splits on commas and tabs.
func NewTokenizer(delimiters ...rune) *Tokenizer {
	if len(delimiters) == 0 {
		delimiters = []rune{',', '\t'}
	}
	set := make(map[rune]struct{}, len(delimiters))
	for _, d := range delimiters {
		set[d] = struct{}{}
	}
	return &Tokenizer{delimiters: set}
}

// Rows tokenizes the document into an ordered sequence of field sequences.
// Blank lines are dropped; row 0 is the header.
func (t *Tokenizer) Rows(content string) [][]string {
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, t.fields(line))
	}
	return rows
}

func (t *Tokenizer) fields(line string) []string {
	var result []string
	var current strings.Builder
	inQuotes := false

	for _, ch := range line {
		if ch == '"' {
			inQuotes = !inQuotes
			continue
		}
		if _, isDelim := t.delimiters[ch]; isDelim && !inQuotes {
			result = append(result, strings.TrimSpace(current.String()))
			current.Reset()
			continue
		}
		current.WriteRune(ch)
	}
	result = append(result, strings.TrimSpace(current.String()))
	return result
}
