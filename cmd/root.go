package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mrenard/pointage/internal/app"
	"github.com/mrenard/pointage/internal/credential"
	"github.com/mrenard/pointage/internal/jira"
	"github.com/mrenard/pointage/internal/model"
	"github.com/mrenard/pointage/internal/notify"
	"github.com/mrenard/pointage/internal/queue"
	"github.com/mrenard/pointage/internal/storage"
	"github.com/mrenard/pointage/internal/submit"
	"github.com/mrenard/pointage/internal/tempo"
	"github.com/mrenard/pointage/internal/timesheet"
	"github.com/mrenard/pointage/internal/worklog"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "pointage",
	Short: "Pointage – daily timesheet quiz in the terminal",
	Long: `pointage paints eight hour-slots per day across configured tasks,
archives each day into a yearly CSV, and pushes worklogs to Tempo.
Configuration lives in ~/.config/pointage/config.yaml.`,
	RunE: runTUI,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/pointage/config.yaml)")
	rootCmd.AddCommand(queueCmd)
	rootCmd.AddCommand(exportCmd)
}

// runtime bundles everything the commands share.
type runtime struct {
	cfg       *model.Config
	store     *storage.FileStore
	queue     *queue.Queue
	archive   *timesheet.Archive
	submitter *submit.Submitter
	resolver  *worklog.Reconciler
}

// newRuntime loads the configuration, fills credentials from the system
// keyring, and opens the data directory.
func newRuntime() (*runtime, error) {
	path := configPath
	if path == "" {
		path = model.DefaultConfigPath()
	}
	cfg, err := model.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	credential.FillConfig(credential.NewStore(), cfg)

	store, err := storage.NewFileStore(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	q, err := queue.Load(store)
	if err != nil {
		return nil, err
	}

	archive := timesheet.NewArchive(store)
	resolver := worklog.NewReconciler(cfg,
		func(jc model.JiraConfig) worklog.Searcher { return jira.NewClient(jc) },
		tempo.NewClient(tempo.DefaultBaseURL),
	)
	return &runtime{
		cfg:       cfg,
		store:     store,
		queue:     q,
		archive:   archive,
		submitter: submit.New(archive, resolver, q),
		resolver:  resolver,
	}, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}

	scheduler := notify.New(rt.queue, rt.cfg.Reminders, notify.PolicyFromConfig(rt.cfg.Notify))
	root := app.New(rt.cfg, rt.store, rt.queue, rt.submitter, rt.resolver, scheduler)

	p := tea.NewProgram(root, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err = p.Run()
	return err
}
