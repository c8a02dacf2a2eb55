// Package submit orchestrates what happens when a quiz is answered:
// archive the day locally, submit the worklogs remotely, then drop the
// day from the pending queue.
package submit

import (
	"context"

	"github.com/mrenard/pointage/internal/model"
	"github.com/mrenard/pointage/internal/queue"
	"github.com/mrenard/pointage/internal/timesheet"
)

// Reconciler is the remote-submission step of a completed day.
// *worklog.Reconciler implements it.
type Reconciler interface {
	Submit(ctx context.Context, res model.TimeResult) error
}

// Submitter runs the end of one quiz. Steps execute strictly in order
// and the first failure aborts the rest; nothing is retried. The
// archive row is written before any remote call, so the local record
// survives a failed worklog submission. The converse risk remains: a
// re-attempt after a remote failure appends a second archive row for
// the same day.
type Submitter struct {
	archive    *timesheet.Archive
	reconciler Reconciler
	queue      *queue.Queue
}

// New creates a Submitter over the given collaborators.
func New(archive *timesheet.Archive, reconciler Reconciler, q *queue.Queue) *Submitter {
	return &Submitter{archive: archive, reconciler: reconciler, queue: q}
}

// Submit finalizes one answered day: append to the year's timesheet,
// push the worklogs, remove the day from the queue.
func (s *Submitter) Submit(ctx context.Context, res model.TimeResult) error {
	if err := s.archive.Append(res); err != nil {
		return err
	}
	if err := s.reconciler.Submit(ctx, res); err != nil {
		return err
	}
	return s.queue.Remove(res.Date)
}
