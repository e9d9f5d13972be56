// Package csvtable parses the small comma-separated tables published by the
// service options sheet.
//
// Quoting is deliberately simple: every double quote toggles the in-quotes
// state, so `""` is two toggles rather than an escaped quote. encoding/csv
// rejects or rewrites such input, which is why the tokenizer is local.
package csvtable

import (
	"errors"
	"strings"
)

// ErrMalformedInput is returned when the header line is empty.
var ErrMalformedInput = errors.New("csvtable: header line is empty")

// Row maps header names to trimmed field values.
type Row map[string]string

// Table is a parsed sheet in source order.
type Table struct {
	Headers []string
	Rows    []Row
}

// Parse tokenizes text into a Table. The first non-blank line is the header.
// Short rows are padded with empty strings and extra fields are dropped.
func Parse(text string) (Table, error) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return Table{}, ErrMalformedInput
	}

	headers := SplitLine(lines[0])
	table := Table{Headers: headers, Rows: make([]Row, 0, len(lines)-1)}
	for _, line := range lines[1:] {
		table.Rows = append(table.Rows, NewRow(headers, SplitLine(line)))
	}
	return table, nil
}

// SplitLine splits one line on commas that are outside double quotes.
// Quote characters are removed and each field is trimmed.
func SplitLine(line string) []string {
	var (
		fields  []string
		current strings.Builder
		inQuote bool
	)
	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
		case r == ',' && !inQuote:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	return append(fields, strings.TrimSpace(current.String()))
}

// NewRow pairs values with headers positionally.
func NewRow(headers, values []string) Row {
	row := make(Row, len(headers))
	for i, h := range headers {
		if i < len(values) {
			row[h] = values[i]
		} else {
			row[h] = ""
		}
	}
	return row
}
