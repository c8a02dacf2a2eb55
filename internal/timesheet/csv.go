// Package timesheet implements the yearly CSV archive: a minimal CSV
// codec matching the historical file format, and the append-only
// writer that adds one row per answered day.
package timesheet

import (
	"sort"
	"strings"
)

// Record is one row of a timesheet file, mapping column name to raw
// string value.
type Record map[string]string

// ParseCSV decodes CSV text into records. The first line names the
// columns in file order; each following line is split positionally on
// commas. There is no quoting or escaping, and a row with a different
// field count than the header silently yields a malformed record:
// this is a known limitation of the format, kept as-is.
func ParseCSV(text string) []Record {
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	columns := strings.Split(lines[0], ",")

	var records []Record
	for _, line := range lines[1:] {
		values := strings.Split(line, ",")
		rec := Record{}
		for j, v := range values {
			if j < len(columns) {
				rec[columns[j]] = v
			}
		}
		records = append(records, rec)
	}
	return records
}

// FormatCSV encodes records as CSV text. Columns are the union of all
// keys across all records, sorted lexicographically ascending, not by
// first appearance, so column order may change from file to file.
// Missing values render as the empty string. No trailing newline.
func FormatCSV(records []Record) string {
	if len(records) == 0 {
		return ""
	}

	columnSet := map[string]struct{}{}
	for _, rec := range records {
		for k := range rec {
			columnSet[k] = struct{}{}
		}
	}

	columns := make([]string, 0, len(columnSet))
	for k := range columnSet {
		columns = append(columns, k)
	}
	sort.Strings(columns)

	lines := make([]string, 0, len(records)+1)
	lines = append(lines, strings.Join(columns, ","))
	for _, rec := range records {
		values := make([]string, len(columns))
		for i, c := range columns {
			values[i] = rec[c]
		}
		lines = append(lines, strings.Join(values, ","))
	}
	return strings.Join(lines, "\n")
}
