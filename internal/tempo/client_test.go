package tempo_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrenard/pointage/internal/model"
	"github.com/mrenard/pointage/internal/tempo"
)

func TestCreateWorklog(t *testing.T) {
	var gotAuth, gotPath string
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	client := tempo.NewClient(srv.URL)
	err := client.CreateWorklog(context.Background(), tempo.Worklog{
		StartDate:        "2024-03-07",
		StartTime:        "08:00:00",
		IssueKey:         "SYN-42",
		TimeSpentSeconds: 3 * 3600,
		AuthorAccountID:  "acc-1",
	}, model.TempoConfig{AccountID: "acc-1", APIKey: "key-1"})
	require.NoError(t, err)

	assert.Equal(t, "Bearer key-1", gotAuth)
	assert.Equal(t, "/worklogs", gotPath)
	assert.Equal(t, map[string]interface{}{
		"startDate":        "2024-03-07",
		"startTime":        "08:00:00",
		"issueKey":         "SYN-42",
		"timeSpentSeconds": float64(10800),
		"authorAccountId":  "acc-1",
	}, gotBody)
}

func TestCreateWorklogRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors": [{"message": "Invalid API key"}]}`))
	}))
	t.Cleanup(srv.Close)

	client := tempo.NewClient(srv.URL)
	err := client.CreateWorklog(context.Background(), tempo.Worklog{IssueKey: "SYN-42"},
		model.TempoConfig{APIKey: "bad"})
	require.Error(t, err)

	var apiErr *tempo.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid API key", apiErr.Message)
}
