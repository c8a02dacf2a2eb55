package jira_test

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrenard/pointage/internal/jira"
	"github.com/mrenard/pointage/internal/model"
)

func newServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *jira.Client) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := jira.NewClient(model.JiraConfig{
		BaseURL: srv.URL,
		Account: "me@example.com",
		Token:   "token-123",
	})
	return srv, client
}

func TestSearchAssigned(t *testing.T) {
	var gotAuth, gotJQL, gotMax, gotFields string
	_, client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotJQL = r.URL.Query().Get("jql")
		gotMax = r.URL.Query().Get("maxResults")
		gotFields = r.URL.Query().Get("fields")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"total": 2,
			"issues": [
				{"key": "SYN-42", "fields": {"summary": "Fix the sync"}},
				{"key": "SYN-43", "fields": {"summary": "Other"}}
			]
		}`))
	})

	issues, err := client.SearchAssigned(context.Background(), "6 In Progress", 1)
	require.NoError(t, err)

	creds := base64.StdEncoding.EncodeToString([]byte("me@example.com:token-123"))
	assert.Equal(t, "Basic "+creds, gotAuth)
	assert.Equal(t, `assignee=currentuser() and status="6 In Progress" order by rank`, gotJQL)
	assert.Equal(t, "1", gotMax)
	assert.Equal(t, "summary", gotFields)

	require.Len(t, issues, 2)
	assert.Equal(t, jira.Issue{Key: "SYN-42", Summary: "Fix the sync"}, issues[0])
}

func TestSearchAssignedNoCap(t *testing.T) {
	var sawMax bool
	_, client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		sawMax = r.URL.Query().Has("maxResults")
		_, _ = w.Write([]byte(`{"issues": []}`))
	})

	issues, err := client.SearchAssigned(context.Background(), "Done", 0)
	require.NoError(t, err)
	assert.Empty(t, issues)
	assert.False(t, sawMax)
}

func TestSearchAssignedRemoteError(t *testing.T) {
	_, client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errorMessages": ["The value 'nope' does not exist"]}`))
	})

	_, err := client.SearchAssigned(context.Background(), "nope", 1)
	require.Error(t, err)

	var apiErr *jira.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "does not exist")
}
