// Package csvexport parses the vendor's CSV export layout: a key/value
// preamble line pair followed by a tabular results block. It is not a
// general CSV parser; it targets this one layout only.
package csvexport

import (
	"errors"
	"strings"
)

var (
	ErrPreambleNotFound = errors.New("preamble not found")
	ErrTableNotFound    = errors.New("results table not found")
)

const (
	// first cell of the preamble header line
	preambleMarker = "start time"
	// cell that identifies the results table header line
	tableMarker = "fin pos"
)

// SplitLine splits one line on commas, honoring double-quote enclosed
// fields and doubled quotes within them. Each field is trimmed.
// A trailing field without terminating comma is kept.
func SplitLine(line string) []string {
	fields := make([]string, 0, 16)
	var cur strings.Builder
	inQuotes := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				// escaped quote inside a quoted field
				cur.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	return append(fields, strings.TrimSpace(cur.String()))
}

// Lines splits raw export text into lines, tolerating CRLF endings.
func Lines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

// Preamble scans for the line whose first cell matches the preamble marker
// and zips it with the following values line into a key/value mapping.
func Preamble(lines []string) (map[string]string, error) {
	for i, line := range lines {
		cells := SplitLine(line)
		if len(cells) == 0 || !strings.EqualFold(stripQuotes(cells[0]), preambleMarker) {
			continue
		}
		if i+1 >= len(lines) {
			return nil, ErrPreambleNotFound
		}
		values := SplitLine(lines[i+1])
		ret := make(map[string]string, len(cells))
		for j, key := range cells {
			key = stripQuotes(key)
			if key == "" {
				continue
			}
			if j < len(values) {
				ret[key] = stripQuotes(values[j])
			} else {
				ret[key] = ""
			}
		}
		return ret, nil
	}
	return nil, ErrPreambleNotFound
}

// ResultsTable scans for the header line containing the table marker cell
// and consumes the following non-blank lines as data rows. Short rows are
// padded, anything after the first blank line is ignored.
func ResultsTable(lines []string) ([]map[string]string, error) {
	headerIdx := -1
	var header []string
	for i, line := range lines {
		cells := SplitLine(line)
		for _, c := range cells {
			if strings.EqualFold(stripQuotes(c), tableMarker) {
				headerIdx = i
				header = cells
				break
			}
		}
		if headerIdx >= 0 {
			break
		}
	}
	if headerIdx < 0 {
		return nil, ErrTableNotFound
	}

	rows := make([]map[string]string, 0)
	for _, line := range lines[headerIdx+1:] {
		if strings.TrimSpace(line) == "" {
			break
		}
		values := SplitLine(line)
		row := make(map[string]string, len(header))
		for j, key := range header {
			key = stripQuotes(key)
			if key == "" {
				continue
			}
			if j < len(values) {
				row[key] = stripQuotes(values[j])
			} else {
				row[key] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func stripQuotes(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return strings.TrimSpace(s)
}
