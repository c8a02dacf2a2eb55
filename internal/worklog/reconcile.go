// Package worklog reconciles a completed day against the external
// tracker: it resolves which tasks map to a ticket and turns their
// recorded hours into Tempo worklog submissions.
package worklog

import (
	"context"
	"fmt"

	"github.com/mrenard/pointage/internal/jira"
	"github.com/mrenard/pointage/internal/model"
	"github.com/mrenard/pointage/internal/tempo"
)

// worklogStartTime is the nominal start of the logged workday.
const worklogStartTime = "08:00:00"

// Searcher resolves tickets assigned to the current user by status.
// *jira.Client implements it.
type Searcher interface {
	SearchAssigned(ctx context.Context, status string, max int) ([]jira.Issue, error)
}

// SearcherFactory builds a Searcher for a Jira configuration. Tasks
// may override the default credentials, so a searcher is created per
// effective configuration.
type SearcherFactory func(cfg model.JiraConfig) Searcher

// Submitter records one worklog remotely. *tempo.Client implements it.
type Submitter interface {
	CreateWorklog(ctx context.Context, w tempo.Worklog, cfg model.TempoConfig) error
}

// Reconciler computes and submits the worklog entries for completed
// quizzes.
type Reconciler struct {
	cfg       *model.Config
	searchers SearcherFactory
	submitter Submitter
}

// NewReconciler creates a Reconciler for the given configuration and
// collaborators.
func NewReconciler(cfg *model.Config, searchers SearcherFactory, submitter Submitter) *Reconciler {
	return &Reconciler{cfg: cfg, searchers: searchers, submitter: submitter}
}

// ResolveTicket resolves the ticket a jira-linked task points at:
// a fixed key is used directly with no remote call, otherwise a
// status query returns the first matching ticket. A nil result with
// no error means the link resolved to nothing and the task is skipped.
func (r *Reconciler) ResolveTicket(ctx context.Context, jt *model.JiraTask) (*jira.Issue, error) {
	if jt == nil {
		return nil, nil
	}
	if jt.Ticket != "" {
		return &jira.Issue{Key: jt.Ticket}, nil
	}
	if jt.Status == "" {
		return nil, nil
	}

	keep := jt.Keep
	if keep <= 0 {
		keep = 1
	}

	searcher := r.searchers(r.cfg.EffectiveJira(jt))
	issues, err := searcher.SearchAssigned(ctx, jt.Status, keep)
	if err != nil {
		return nil, err
	}
	if len(issues) == 0 {
		return nil, nil
	}
	return &issues[0], nil
}

// Updates computes the worklog submissions for a completed day: one
// TempoUpdate per task that has recorded time, carries a jira link,
// resolves to a ticket, and whose effective configuration has Tempo
// credentials. Task ids resolve first-match-wins against the
// configuration. A resolution failure aborts the whole computation.
func (r *Reconciler) Updates(ctx context.Context, res model.TimeResult) ([]model.TempoUpdate, error) {
	var updates []model.TempoUpdate
	for _, tm := range res.Times {
		task := r.cfg.FindTaskByID(tm.ID)
		if task == nil || task.Jira == nil {
			continue
		}

		eff := r.cfg.EffectiveJira(task.Jira)
		if eff.Tempo == nil {
			// Ticket may be resolvable, but there is nowhere to
			// submit it.
			continue
		}

		issue, err := r.ResolveTicket(ctx, task.Jira)
		if err != nil {
			return nil, fmt.Errorf("resolving ticket for task %s: %w", tm.ID, err)
		}
		if issue == nil {
			continue
		}

		updates = append(updates, model.TempoUpdate{
			Ticket: issue.Key,
			Time:   tm.Time,
			Tempo:  *eff.Tempo,
		})
	}
	return updates, nil
}

// Submit computes the updates for the day and submits them
// sequentially, in task-configuration order, each as one worklog
// starting at 08:00:00 with time*3600 seconds. The first failure
// aborts the remaining submissions.
func (r *Reconciler) Submit(ctx context.Context, res model.TimeResult) error {
	updates, err := r.Updates(ctx, res)
	if err != nil {
		return err
	}

	for _, u := range updates {
		w := tempo.Worklog{
			StartDate:        res.Date.String(),
			StartTime:        worklogStartTime,
			IssueKey:         u.Ticket,
			TimeSpentSeconds: u.Time * 3600,
			AuthorAccountID:  u.Tempo.AccountID,
		}
		if err := r.submitter.CreateWorklog(ctx, w, u.Tempo); err != nil {
			return fmt.Errorf("worklog for %s: %w", u.Ticket, err)
		}
	}
	return nil
}
