package model

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// ErrNoTasks is returned when a configuration declares no tasks. The
// application surfaces it as a "provide configuration" state instead
// of opening a quiz.
var ErrNoTasks = errors.New("no tasks configured")

// ReminderConfig controls when a new day is queued for answering.
type ReminderConfig struct {
	// Times are local clock times ("15:04") at which the scheduler
	// queues the current day.
	Times []string `mapstructure:"times" yaml:"times"`

	// WeekdaysOnly skips Saturday and Sunday triggers.
	WeekdaysOnly bool `mapstructure:"weekdays_only" yaml:"weekdays_only"`
}

// NotifyConfig is the process-wide notification display policy,
// injected once at startup rather than registered globally.
type NotifyConfig struct {
	ShowAlert bool `mapstructure:"show_alert" yaml:"show_alert"`
	PlaySound bool `mapstructure:"play_sound" yaml:"play_sound"`
	ShowBadge bool `mapstructure:"show_badge" yaml:"show_badge"`
}

// Config is the top-level application configuration: the declarative
// task set driving the quiz, default Jira credentials, reminder
// schedule and data directory.
type Config struct {
	DefaultJira JiraConfig     `mapstructure:"jira" yaml:"jira"`
	Tasks       []Task         `mapstructure:"tasks" yaml:"tasks"`
	Reminders   ReminderConfig `mapstructure:"reminders" yaml:"reminders"`
	Notify      NotifyConfig   `mapstructure:"notify" yaml:"notify"`
	DataDir     string         `mapstructure:"data_dir" yaml:"data_dir"`
}

// DefaultConfigPath returns the default path for the configuration
// file, located at ~/.config/pointage/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "pointage", "config.yaml")
}

// DefaultDataDir returns the default directory for the queue and the
// yearly timesheet files.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "pointage")
	}
	return filepath.Join(home, ".local", "share", "pointage")
}

// LoadConfig reads configuration from the given YAML file path using
// Viper. A missing file is not an error here: it yields a Config with
// defaults and no tasks, which Validate then rejects so the UI can
// show the "provide configuration" state.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("jira.base_url", "https://retaildrive.atlassian.net")
	v.SetDefault("reminders.times", []string{"17:30"})
	v.SetDefault("reminders.weekdays_only", true)
	v.SetDefault("notify.show_alert", true)
	v.SetDefault("notify.play_sound", false)
	v.SetDefault("notify.show_badge", false)
	v.SetDefault("data_dir", DefaultDataDir())

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			cfg := &Config{}
			_ = v.Unmarshal(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the minimal precondition for opening a quiz.
func (c *Config) Validate() error {
	if len(c.Tasks) == 0 {
		return ErrNoTasks
	}
	return nil
}

// FindTaskByID returns the first task carrying the given id, or nil.
// First match wins: ids are not guaranteed unique across tasks, so
// callers needing an exact task must keep its index instead.
func (c *Config) FindTaskByID(id string) *Task {
	for i := range c.Tasks {
		if c.Tasks[i].ID == id {
			return &c.Tasks[i]
		}
	}
	return nil
}

// EffectiveJira resolves the Jira configuration for a linked task: the
// task's own override when present, else the default configuration.
func (c *Config) EffectiveJira(jt *JiraTask) JiraConfig {
	if jt != nil && jt.Config != nil {
		return *jt.Config
	}
	return c.DefaultJira
}
