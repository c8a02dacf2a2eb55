// Package jira is a thin client for the Jira Cloud REST API v3,
// covering the one operation the timesheet needs: searching the
// current user's tickets to resolve a task's linked issue key.
package jira

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mrenard/pointage/internal/model"
)

// Client performs authenticated requests against one Jira instance.
// Authentication is basic auth with the account email and an API
// token. Requests are single-shot: any failure surfaces to the user,
// nothing is retried.
type Client struct {
	baseURL    string
	account    string
	token      string
	httpClient *http.Client
}

// NewClient creates a client for the given Jira configuration.
func NewClient(cfg model.JiraConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		account: cfg.Account,
		token:   cfg.Token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SearchAssigned returns the current user's tickets in the given
// status, ordered by rank, capped at max results. Zero or negative max
// leaves the cap to the server default.
func (c *Client) SearchAssigned(ctx context.Context, status string, max int) ([]Issue, error) {
	jql := fmt.Sprintf("assignee=currentuser() and status=%q order by rank", status)

	params := url.Values{}
	params.Set("jql", jql)
	params.Set("fields", "summary")
	if max > 0 {
		params.Set("maxResults", strconv.Itoa(max))
	}

	var resp SearchResponse
	if err := c.get(ctx, "/rest/api/3/search?"+params.Encode(), &resp); err != nil {
		return nil, err
	}

	issues := make([]Issue, 0, len(resp.Issues))
	for _, raw := range resp.Issues {
		issues = append(issues, Issue{Key: raw.Key, Summary: raw.Fields.Summary})
	}
	return issues, nil
}

// get performs one GET request and unmarshals the JSON response.
func (c *Client) get(ctx context.Context, path string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.SetBasicAuth(c.account, c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return newAPIError(resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("unmarshaling response from GET %s: %w", path, err)
	}
	return nil
}

// APIError is a non-200 Jira response, carrying the remote-reported
// message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("jira error %d", e.StatusCode)
	}
	return fmt.Sprintf("jira error %d: %s", e.StatusCode, e.Message)
}

// newAPIError decodes the standard Jira error payload, falling back to
// the raw body when it does not parse.
func newAPIError(status int, body []byte) *APIError {
	var errResp ErrorResponse
	if json.Unmarshal(body, &errResp) == nil && len(errResp.ErrorMessages) > 0 {
		return &APIError{StatusCode: status, Message: errResp.ErrorMessages[0]}
	}
	return &APIError{StatusCode: status, Message: strings.TrimSpace(string(body))}
}
