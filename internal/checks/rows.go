package checks

import (
	"strings"
	"unicode"
)

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Normalize converts CRLF and bare CR line endings to LF.
func Normalize(s string) string {
	return lineEndings.Replace(s)
}

// isTrimSpace is unicode.IsSpace without NEL (U+0085) and with the byte
// order mark (U+FEFF). NEL is content, not padding.
func isTrimSpace(r rune) bool {
	switch r {
	case '\u0085':
		return false
	case '\uFEFF':
		return true
	}
	return unicode.IsSpace(r)
}

func trimSpace(s string) string {
	return strings.TrimFunc(s, isTrimSpace)
}

func isBlankField(s string) bool { return trimSpace(s) == "" }

// isEmptyRow reports whether every ';'-separated field of row is blank.
func isEmptyRow(row string) bool {
	for _, f := range strings.Split(row, ";") {
		if !isBlankField(f) {
			return false
		}
	}
	return true
}

// FirstEmptyRow returns the 1-based line of the first row whose fields are
// all blank when split on ';'. The final row is skipped only when it is the
// literal empty string left by a trailing newline.
func FirstEmptyRow(normalized string) (int, bool) {
	rows := strings.Split(normalized, "\n")
	last := len(rows) - 1
	for i, row := range rows {
		if i == last && row == "" {
			continue
		}
		if isEmptyRow(row) {
			return i + 1, true
		}
	}
	return 0, false
}

// DelimiterCounts holds candidate separator occurrences over non-blank rows.
type DelimiterCounts struct {
	Semicolon int
	Comma     int
	Pipe      int
	Tab       int
	// Rows is the number of non-blank rows counted.
	Rows int
	// FirstRowSemicolons is the ';' count of the first non-blank row.
	FirstRowSemicolons int
}

func CountDelimiters(normalized string) DelimiterCounts {
	var dc DelimiterCounts
	for _, row := range strings.Split(normalized, "\n") {
		if trimSpace(row) == "" {
			continue
		}
		semi := strings.Count(row, ";")
		if dc.Rows == 0 {
			dc.FirstRowSemicolons = semi
		}
		dc.Rows++
		dc.Semicolon += semi
		dc.Comma += strings.Count(row, ",")
		dc.Pipe += strings.Count(row, "|")
		dc.Tab += strings.Count(row, "\t")
	}
	return dc
}
