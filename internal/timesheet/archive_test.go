package timesheet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrenard/pointage/internal/model"
	"github.com/mrenard/pointage/internal/storage"
	"github.com/mrenard/pointage/internal/timesheet"
)

func newArchive(t *testing.T) (*timesheet.Archive, *storage.FileStore) {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return timesheet.NewArchive(store), store
}

func TestAppendToEmptyYear(t *testing.T) {
	archive, store := newArchive(t)

	err := archive.Append(model.TimeResult{
		Date:  model.QuizzDate{Day: 7, Month: 2, Year: 2024},
		Times: []model.Time{{ID: "x", Title: "X", Time: 3}},
	})
	require.NoError(t, err)

	text, err := store.ReadTimesheet(2024)
	require.NoError(t, err)
	assert.Equal(t, "date,x\n2024-03-07,3h", text)
}

func TestAppendPreservesExistingRows(t *testing.T) {
	archive, store := newArchive(t)

	require.NoError(t, archive.Append(model.TimeResult{
		Date:  model.QuizzDate{Day: 7, Month: 2, Year: 2024},
		Times: []model.Time{{ID: "admin", Title: "Administratif", Time: 3}},
	}))
	require.NoError(t, archive.Append(model.TimeResult{
		Date: model.QuizzDate{Day: 8, Month: 2, Year: 2024},
		Times: []model.Time{
			{ID: "admin", Title: "Administratif", Time: 1},
			{ID: "synergee", Title: "Synergee", Time: 7},
		},
	}))

	text, err := store.ReadTimesheet(2024)
	require.NoError(t, err)
	assert.Equal(t,
		"admin,date,synergee\n3h,2024-03-07,\n1h,2024-03-08,7h",
		text)
}

func TestAppendSplitsByYear(t *testing.T) {
	archive, store := newArchive(t)

	require.NoError(t, archive.Append(model.TimeResult{
		Date:  model.QuizzDate{Day: 31, Month: 11, Year: 2023},
		Times: []model.Time{{ID: "x", Title: "X", Time: 8}},
	}))
	require.NoError(t, archive.Append(model.TimeResult{
		Date:  model.QuizzDate{Day: 1, Month: 0, Year: 2024},
		Times: []model.Time{{ID: "x", Title: "X", Time: 8}},
	}))

	names, err := store.ListTimesheets()
	require.NoError(t, err)
	assert.Equal(t, []string{"2023.csv", "2024.csv"}, names)
}
