package queue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrenard/pointage/internal/model"
	"github.com/mrenard/pointage/internal/queue"
	"github.com/mrenard/pointage/internal/storage"
)

func newQueue(t *testing.T) (*queue.Queue, storage.Store) {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	q, err := queue.Load(store)
	require.NoError(t, err)
	return q, store
}

func TestLoadEmpty(t *testing.T) {
	q, _ := newQueue(t)
	assert.Zero(t, q.Len())
}

func TestAddPersists(t *testing.T) {
	q, store := newQueue(t)
	day := model.QuizzDate{Day: 7, Month: 2, Year: 2024}
	require.NoError(t, q.Add(day))

	reloaded, err := queue.Load(store)
	require.NoError(t, err)
	assert.Equal(t, []model.QuizzDate{day}, reloaded.Days())
}

func TestAddDeduplicates(t *testing.T) {
	q, _ := newQueue(t)
	day := model.QuizzDate{Day: 7, Month: 2, Year: 2024}
	require.NoError(t, q.Add(day))
	require.NoError(t, q.Add(day))
	assert.Equal(t, 1, q.Len())
}

func TestAddThenRemoveRestoresEmptyState(t *testing.T) {
	q, store := newQueue(t)
	day := model.QuizzDate{Day: 7, Month: 2, Year: 2024}

	require.NoError(t, q.Add(day))
	require.NoError(t, q.Remove(day))
	assert.Zero(t, q.Len())

	reloaded, err := queue.Load(store)
	require.NoError(t, err)
	assert.Zero(t, reloaded.Len())
}

func TestRemoveByValue(t *testing.T) {
	q, _ := newQueue(t)
	require.NoError(t, q.Add(model.QuizzDate{Day: 7, Month: 2, Year: 2024}))
	require.NoError(t, q.Add(model.QuizzDate{Day: 8, Month: 2, Year: 2024}))

	// A freshly constructed value must match the stored one.
	require.NoError(t, q.Remove(model.QuizzDate{Day: 7, Month: 2, Year: 2024}))
	assert.Equal(t, []model.QuizzDate{{Day: 8, Month: 2, Year: 2024}}, q.Days())
}

func TestRemoveAbsentDay(t *testing.T) {
	q, _ := newQueue(t)
	require.NoError(t, q.Add(model.QuizzDate{Day: 7, Month: 2, Year: 2024}))
	require.NoError(t, q.Remove(model.QuizzDate{Day: 1, Month: 0, Year: 2024}))
	assert.Equal(t, 1, q.Len())
}
