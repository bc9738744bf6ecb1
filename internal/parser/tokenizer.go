package parser

import "strings"

// EMS records are pipe-delimited; a backslash escapes the next character so
// descriptions may carry literal pipes (and literal backslashes).
const (
	fieldDelimiter = '|'
	escapeChar     = '\\'
)

// TokenizeRecord splits one EMS record line into its ordered, trimmed fields.
//
// Behavior:
//   - `\|` yields a literal pipe inside a field; `\\` a literal backslash.
//   - Fields are whitespace-trimmed.
//   - A trailing delimiter still produces the (empty) final field.
//   - Blank or whitespace-only lines yield zero fields.
//   - A dangling escape at end of line is not an error; the escape flag
//     simply dies with the line.
func TokenizeRecord(line string) []string {
	if strings.TrimSpace(line) == "" {
		return nil
	}

	var fields []string
	var buf strings.Builder
	escaped := false

	for _, r := range line {
		switch {
		case escaped:
			buf.WriteRune(r)
			escaped = false
		case r == escapeChar:
			escaped = true
		case r == fieldDelimiter:
			fields = append(fields, strings.TrimSpace(buf.String()))
			buf.Reset()
		default:
			buf.WriteRune(r)
		}
	}
	fields = append(fields, strings.TrimSpace(buf.String()))

	return fields
}
