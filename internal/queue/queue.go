// Package queue manages the ordered list of days awaiting an answer.
// The whole queue is persisted on every change; there is no finer
// update granularity.
package queue

import (
	"github.com/mrenard/pointage/internal/model"
	"github.com/mrenard/pointage/internal/storage"
)

// Queue is the set of pending quiz days, ordered by insertion.
type Queue struct {
	store storage.Store
	days  []model.QuizzDate
}

// Load reads the persisted queue from the store.
func Load(store storage.Store) (*Queue, error) {
	days, err := store.ReadQueue()
	if err != nil {
		return nil, err
	}
	return &Queue{store: store, days: days}, nil
}

// Days returns the pending days in insertion order.
func (q *Queue) Days() []model.QuizzDate {
	return q.days
}

// Len returns the number of pending days.
func (q *Queue) Len() int {
	return len(q.days)
}

// Contains reports whether the day is already queued. QuizzDate is a
// value type, so this is structural equality, not identity.
func (q *Queue) Contains(day model.QuizzDate) bool {
	for _, d := range q.days {
		if d == day {
			return true
		}
	}
	return false
}

// Add appends a day and persists the queue. Adding a day that is
// already queued is a no-op, keeping the queue duplicate-free.
func (q *Queue) Add(day model.QuizzDate) error {
	if q.Contains(day) {
		return nil
	}
	q.days = append(q.days, day)
	return q.store.WriteQueue(q.days)
}

// Remove filters out every entry equal to the day by value and
// persists the queue. Removing an absent day still rewrites the
// document.
func (q *Queue) Remove(day model.QuizzDate) error {
	kept := q.days[:0]
	for _, d := range q.days {
		if d != day {
			kept = append(kept, d)
		}
	}
	q.days = kept
	return q.store.WriteQueue(q.days)
}
