package timesheet

import (
	"fmt"

	"github.com/mrenard/pointage/internal/model"
	"github.com/mrenard/pointage/internal/storage"
)

// Archive appends answered days into the yearly CSV files. Each append
// is a read-modify-write of the whole year's file, which is fine at
// this scale (at most 366 rows) but assumes a single writer.
type Archive struct {
	store storage.Store
}

// NewArchive creates an Archive over the given store.
func NewArchive(store storage.Store) *Archive {
	return &Archive{store: store}
}

// Append adds one row for the result's day to its year's file. The row
// holds the date as yyyy-MM-dd plus one "<hours>h" cell per task id
// with recorded time.
func (a *Archive) Append(res model.TimeResult) error {
	year := res.Date.Year

	text, err := a.store.ReadTimesheet(year)
	if err != nil {
		return err
	}

	records := ParseCSV(text)
	records = append(records, newRow(res))

	if err := a.store.WriteTimesheet(year, FormatCSV(records)); err != nil {
		return fmt.Errorf("appending to %d timesheet: %w", year, err)
	}
	return nil
}

// newRow builds the archive record for one answered day.
func newRow(res model.TimeResult) Record {
	rec := Record{"date": res.Date.String()}
	for _, t := range res.Times {
		rec[t.ID] = fmt.Sprintf("%dh", t.Time)
	}
	return rec
}
