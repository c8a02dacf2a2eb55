package model

// TaskColor is the display color of a task, one of the fixed palette
// the configuration file may name. Rendering lives in internal/theme.
type TaskColor string

const (
	TaskColorGray   TaskColor = "gray"
	TaskColorRed    TaskColor = "red"
	TaskColorGreen  TaskColor = "green"
	TaskColorYellow TaskColor = "yellow"
	TaskColorBlue   TaskColor = "blue"
	TaskColorIndigo TaskColor = "indigo"
	TaskColorPurple TaskColor = "purple"
)

// TempoConfig holds the credentials for submitting worklogs to Tempo.
type TempoConfig struct {
	AccountID string `mapstructure:"account_id" yaml:"account_id" json:"accountId"`
	APIKey    string `mapstructure:"api_key" yaml:"api_key" json:"apiKey"`
}

// JiraConfig holds Jira Cloud credentials. Tempo is optional: without
// it, tickets can still be resolved for display but no worklog is ever
// submitted.
type JiraConfig struct {
	BaseURL string       `mapstructure:"base_url" yaml:"base_url" json:"baseUrl"`
	Account string       `mapstructure:"account" yaml:"account" json:"account"`
	Token   string       `mapstructure:"token" yaml:"token" json:"token"`
	Tempo   *TempoConfig `mapstructure:"tempo" yaml:"tempo" json:"tempo,omitempty"`
}

// JiraTask links a task to an external ticket. Either Ticket (a fixed
// issue key) or Status (a query resolving to the first matching ticket
// assigned to the current user) is expected; with neither set, the
// link is present but unresolved and the task is skipped.
type JiraTask struct {
	// Config, when set, overrides the default Jira configuration for
	// this task only.
	Config *JiraConfig `mapstructure:"config" yaml:"config" json:"config,omitempty"`
	Ticket string      `mapstructure:"ticket" yaml:"ticket" json:"ticket,omitempty"`
	Status string      `mapstructure:"status" yaml:"status" json:"status,omitempty"`
	// Keep caps the number of search results requested during status
	// resolution. Zero means 1.
	Keep int `mapstructure:"keep" yaml:"keep" json:"keep,omitempty"`
}

// Task is one allocatable activity of the workday.
//
// ID is not guaranteed unique: observed configurations share an id
// between distinct tasks. Engine state is therefore keyed by task
// index; ids only matter at the aggregation boundary.
type Task struct {
	ID    string    `mapstructure:"id" yaml:"id" json:"id"`
	Title string    `mapstructure:"title" yaml:"title" json:"title"`
	Color TaskColor `mapstructure:"color" yaml:"color" json:"color"`
	// Percent, in [0,1], seeds round(Percent*SlotCount) default slots.
	// Zero means no seeding, matching configurations where the field
	// is simply absent.
	Percent float64   `mapstructure:"percent" yaml:"percent" json:"percent,omitempty"`
	Jira    *JiraTask `mapstructure:"jira" yaml:"jira" json:"jira,omitempty"`
}
