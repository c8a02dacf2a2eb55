package storage

import (
	"github.com/mrenard/pointage/internal/model"
)

// Store defines the persistence interface for the two documents the
// application owns: the pending-quiz queue and the yearly timesheet
// files. Both are read and written wholesale; there is no incremental
// update granularity. Implementations assume a single writer process.
type Store interface {
	// ReadQueue loads the pending-quiz queue. A missing document is
	// not an error and yields an empty queue.
	ReadQueue() ([]model.QuizzDate, error)

	// WriteQueue replaces the persisted queue.
	WriteQueue(days []model.QuizzDate) error

	// ReadTimesheet loads the raw CSV text for the given year. A
	// missing file is not an error and yields the empty string.
	ReadTimesheet(year int) (string, error)

	// WriteTimesheet replaces the CSV file for the given year.
	WriteTimesheet(year int, text string) error

	// ListTimesheets returns the names of the existing yearly files,
	// sorted ascending.
	ListTimesheets() ([]string, error)

	// TimesheetPath returns the absolute path of a yearly file, for
	// exporting it outside the data directory.
	TimesheetPath(name string) string

	// DeleteTimesheet removes one yearly file by name.
	DeleteTimesheet(name string) error
}
