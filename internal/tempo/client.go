// Package tempo submits worklogs to the Tempo Cloud REST API.
package tempo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mrenard/pointage/internal/model"
)

// DefaultBaseURL is the public Tempo Cloud API root.
const DefaultBaseURL = "https://api.tempo.io/core/3"

// Worklog is one time entry to record against a ticket.
type Worklog struct {
	StartDate        string `json:"startDate"`
	StartTime        string `json:"startTime"`
	IssueKey         string `json:"issueKey"`
	TimeSpentSeconds int    `json:"timeSpentSeconds"`
	AuthorAccountID  string `json:"authorAccountId"`
}

// Client submits worklogs. Authentication is a bearer API key carried
// by the TempoConfig of each call, so one client serves every task
// whatever credentials its configuration resolves to.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Tempo client. An empty baseURL selects the
// public Tempo Cloud endpoint.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// CreateWorklog posts one worklog. Non-200 responses are fatal for the
// submission and carry the remote-reported message; nothing is
// retried.
func (c *Client) CreateWorklog(ctx context.Context, w Worklog, cfg model.TempoConfig) error {
	payload, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("marshaling worklog: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+"/worklogs", bytes.NewReader(payload),
	)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("submitting worklog for %s: %w", w.IssueKey, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return newAPIError(resp.StatusCode, body)
	}
	return nil
}

// APIError is a non-200 Tempo response, carrying the remote-reported
// message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("tempo error %d", e.StatusCode)
	}
	return fmt.Sprintf("tempo error %d: %s", e.StatusCode, e.Message)
}

// errorResponse is the Tempo error payload shape.
type errorResponse struct {
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func newAPIError(status int, body []byte) *APIError {
	var errResp errorResponse
	if json.Unmarshal(body, &errResp) == nil && len(errResp.Errors) > 0 {
		return &APIError{StatusCode: status, Message: errResp.Errors[0].Message}
	}
	return &APIError{StatusCode: status, Message: strings.TrimSpace(string(body))}
}
