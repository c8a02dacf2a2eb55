package timesheet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mrenard/pointage/internal/timesheet"
)

func TestFormatCSVEmpty(t *testing.T) {
	assert.Equal(t, "", timesheet.FormatCSV(nil))
	assert.Equal(t, "", timesheet.FormatCSV([]timesheet.Record{}))
}

func TestParseCSVEmpty(t *testing.T) {
	assert.Empty(t, timesheet.ParseCSV(""))
}

func TestFormatCSVSortsColumns(t *testing.T) {
	records := []timesheet.Record{
		{"date": "2024-03-07", "synergee": "5h", "admin": "3h"},
	}
	assert.Equal(t,
		"admin,date,synergee\n3h,2024-03-07,5h",
		timesheet.FormatCSV(records))
}

func TestFormatCSVMissingValues(t *testing.T) {
	records := []timesheet.Record{
		{"date": "2024-03-07", "admin": "3h"},
		{"date": "2024-03-08", "synergee": "8h"},
	}
	assert.Equal(t,
		"admin,date,synergee\n3h,2024-03-07,\n,2024-03-08,8h",
		timesheet.FormatCSV(records))
}

func TestCSVRoundTrip(t *testing.T) {
	records := []timesheet.Record{
		{"date": "2024-03-07", "admin": "3h", "synergee": "5h"},
		{"date": "2024-03-08", "admin": "1h", "synergee": "7h"},
	}
	parsed := timesheet.ParseCSV(timesheet.FormatCSV(records))
	assert.Equal(t, records, parsed)
}

func TestParseCSVRaggedRow(t *testing.T) {
	// A row with more fields than the header silently drops the extra
	// values; a short row just misses keys. Neither is an error.
	records := timesheet.ParseCSV("a,b\n1,2,3\n9")
	assert.Equal(t, []timesheet.Record{
		{"a": "1", "b": "2"},
		{"a": "9"},
	}, records)
}
