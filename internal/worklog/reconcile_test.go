package worklog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrenard/pointage/internal/jira"
	"github.com/mrenard/pointage/internal/model"
	"github.com/mrenard/pointage/internal/tempo"
	"github.com/mrenard/pointage/internal/worklog"
)

type fakeSearcher struct {
	cfg    model.JiraConfig
	issues []jira.Issue
	err    error

	gotStatus string
	gotMax    int
}

func (f *fakeSearcher) SearchAssigned(ctx context.Context, status string, max int) ([]jira.Issue, error) {
	f.gotStatus = status
	f.gotMax = max
	return f.issues, f.err
}

type fakeSubmitter struct {
	worklogs []tempo.Worklog
	configs  []model.TempoConfig
	failOn   string
}

func (f *fakeSubmitter) CreateWorklog(ctx context.Context, w tempo.Worklog, cfg model.TempoConfig) error {
	if f.failOn != "" && w.IssueKey == f.failOn {
		return errors.New("tempo error 500: boom")
	}
	f.worklogs = append(f.worklogs, w)
	f.configs = append(f.configs, cfg)
	return nil
}

var testTempo = model.TempoConfig{AccountID: "acc-1", APIKey: "key"}

func testConfig() *model.Config {
	return &model.Config{
		DefaultJira: model.JiraConfig{
			Account: "me@example.com",
			Token:   "t",
			Tempo:   &testTempo,
		},
		Tasks: []model.Task{
			{ID: "off", Title: "Pas travaillé"},
			{ID: "synergee", Title: "Synergee", Jira: &model.JiraTask{Status: "6 In Progress"}},
			{ID: "admin", Title: "Administratif", Jira: &model.JiraTask{Ticket: "ADM-12"}},
		},
	}
}

func reconcilerWith(cfg *model.Config, s *fakeSearcher, sub *fakeSubmitter) *worklog.Reconciler {
	return worklog.NewReconciler(cfg, func(jc model.JiraConfig) worklog.Searcher {
		s.cfg = jc
		return s
	}, sub)
}

func result(times ...model.Time) model.TimeResult {
	return model.TimeResult{
		Date:  model.QuizzDate{Day: 7, Month: 2, Year: 2024},
		Times: times,
	}
}

func TestUpdatesSkipsTaskWithoutJiraLink(t *testing.T) {
	r := reconcilerWith(testConfig(), &fakeSearcher{}, &fakeSubmitter{})

	updates, err := r.Updates(context.Background(), result(
		model.Time{ID: "off", Title: "Pas travaillé", Time: 8},
	))
	require.NoError(t, err)
	assert.Empty(t, updates)
}

func TestUpdatesSkipsWithoutTempoCredentials(t *testing.T) {
	cfg := testConfig()
	cfg.DefaultJira.Tempo = nil
	searcher := &fakeSearcher{issues: []jira.Issue{{Key: "SYN-42"}}}
	r := reconcilerWith(cfg, searcher, &fakeSubmitter{})

	// Both a resolvable status task and a fixed-ticket task: neither
	// produces an update without a submission target.
	updates, err := r.Updates(context.Background(), result(
		model.Time{ID: "synergee", Time: 5},
		model.Time{ID: "admin", Time: 3},
	))
	require.NoError(t, err)
	assert.Empty(t, updates)
}

func TestUpdatesFixedTicketSkipsRemoteCall(t *testing.T) {
	searcher := &fakeSearcher{}
	r := reconcilerWith(testConfig(), searcher, &fakeSubmitter{})

	updates, err := r.Updates(context.Background(), result(
		model.Time{ID: "admin", Time: 3},
	))
	require.NoError(t, err)

	require.Len(t, updates, 1)
	assert.Equal(t, model.TempoUpdate{Ticket: "ADM-12", Time: 3, Tempo: testTempo}, updates[0])
	assert.Empty(t, searcher.gotStatus, "fixed ticket must not trigger a search")
}

func TestUpdatesStatusQueryTakesFirstResult(t *testing.T) {
	searcher := &fakeSearcher{issues: []jira.Issue{
		{Key: "SYN-42", Summary: "First by rank"},
		{Key: "SYN-40", Summary: "Second"},
	}}
	r := reconcilerWith(testConfig(), searcher, &fakeSubmitter{})

	updates, err := r.Updates(context.Background(), result(
		model.Time{ID: "synergee", Time: 5},
	))
	require.NoError(t, err)

	require.Len(t, updates, 1)
	assert.Equal(t, "SYN-42", updates[0].Ticket)
	assert.Equal(t, "6 In Progress", searcher.gotStatus)
	assert.Equal(t, 1, searcher.gotMax)
}

func TestUpdatesStatusQueryNoResultSkips(t *testing.T) {
	r := reconcilerWith(testConfig(), &fakeSearcher{}, &fakeSubmitter{})

	updates, err := r.Updates(context.Background(), result(
		model.Time{ID: "synergee", Time: 5},
	))
	require.NoError(t, err)
	assert.Empty(t, updates)
}

func TestUpdatesUnresolvedLinkSkips(t *testing.T) {
	cfg := testConfig()
	cfg.Tasks = append(cfg.Tasks, model.Task{ID: "misc", Jira: &model.JiraTask{}})
	r := reconcilerWith(cfg, &fakeSearcher{}, &fakeSubmitter{})

	updates, err := r.Updates(context.Background(), result(model.Time{ID: "misc", Time: 2}))
	require.NoError(t, err)
	assert.Empty(t, updates)
}

func TestUpdatesFailFastOnSearchError(t *testing.T) {
	searcher := &fakeSearcher{err: errors.New("jira error 400: bad jql")}
	r := reconcilerWith(testConfig(), searcher, &fakeSubmitter{})

	_, err := r.Updates(context.Background(), result(
		model.Time{ID: "synergee", Time: 5},
		model.Time{ID: "admin", Time: 3},
	))
	assert.ErrorContains(t, err, "bad jql")
}

func TestUpdatesTaskJiraConfigOverride(t *testing.T) {
	otherTempo := model.TempoConfig{AccountID: "acc-2", APIKey: "other"}
	cfg := testConfig()
	cfg.Tasks = append(cfg.Tasks, model.Task{
		ID: "side",
		Jira: &model.JiraTask{
			Ticket: "SIDE-1",
			Config: &model.JiraConfig{Account: "side@example.com", Tempo: &otherTempo},
		},
	})
	r := reconcilerWith(cfg, &fakeSearcher{}, &fakeSubmitter{})

	updates, err := r.Updates(context.Background(), result(model.Time{ID: "side", Time: 1}))
	require.NoError(t, err)
	require.Len(t, updates, 1)
	assert.Equal(t, otherTempo, updates[0].Tempo)
}

func TestSubmitBuildsWorklogs(t *testing.T) {
	searcher := &fakeSearcher{issues: []jira.Issue{{Key: "SYN-42"}}}
	submitter := &fakeSubmitter{}
	r := reconcilerWith(testConfig(), searcher, submitter)

	err := r.Submit(context.Background(), result(
		model.Time{ID: "off", Time: 1},
		model.Time{ID: "synergee", Time: 5},
		model.Time{ID: "admin", Time: 2},
	))
	require.NoError(t, err)

	require.Len(t, submitter.worklogs, 2)
	assert.Equal(t, tempo.Worklog{
		StartDate:        "2024-03-07",
		StartTime:        "08:00:00",
		IssueKey:         "SYN-42",
		TimeSpentSeconds: 5 * 3600,
		AuthorAccountID:  "acc-1",
	}, submitter.worklogs[0])
	assert.Equal(t, "ADM-12", submitter.worklogs[1].IssueKey)
	assert.Equal(t, 2*3600, submitter.worklogs[1].TimeSpentSeconds)
}

func TestSubmitFailFastStopsRemaining(t *testing.T) {
	searcher := &fakeSearcher{issues: []jira.Issue{{Key: "SYN-42"}}}
	submitter := &fakeSubmitter{failOn: "SYN-42"}
	r := reconcilerWith(testConfig(), searcher, submitter)

	err := r.Submit(context.Background(), result(
		model.Time{ID: "synergee", Time: 5},
		model.Time{ID: "admin", Time: 2},
	))
	require.Error(t, err)
	assert.ErrorContains(t, err, "SYN-42")
	assert.Empty(t, submitter.worklogs, "submission after the failure must not happen")
}
