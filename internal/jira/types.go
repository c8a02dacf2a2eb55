package jira

// Issue is the slice of a Jira ticket the timesheet cares about.
type Issue struct {
	Key     string
	Summary string
}

// SearchResponse is the response from GET /rest/api/3/search.
type SearchResponse struct {
	StartAt    int        `json:"startAt"`
	MaxResults int        `json:"maxResults"`
	Total      int        `json:"total"`
	Issues     []rawIssue `json:"issues"`
}

// rawIssue is a single issue as returned by the REST API.
type rawIssue struct {
	ID     string      `json:"id"`
	Key    string      `json:"key"`
	Fields issueFields `json:"fields"`
}

type issueFields struct {
	Summary string `json:"summary"`
}

// ErrorResponse is the standard Jira error response format.
type ErrorResponse struct {
	ErrorMessages []string          `json:"errorMessages"`
	Errors        map[string]string `json:"errors"`
}
