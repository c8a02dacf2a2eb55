// Package app wires the views, the reminder scheduler, and the
// submission pipeline into the root Bubble Tea model.
package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mrenard/pointage/internal/keys"
	"github.com/mrenard/pointage/internal/model"
	"github.com/mrenard/pointage/internal/notify"
	"github.com/mrenard/pointage/internal/queue"
	"github.com/mrenard/pointage/internal/quiz"
	"github.com/mrenard/pointage/internal/storage"
	"github.com/mrenard/pointage/internal/submit"
	"github.com/mrenard/pointage/internal/ui"
	"github.com/mrenard/pointage/internal/ui/files"
	"github.com/mrenard/pointage/internal/ui/helpview"
	"github.com/mrenard/pointage/internal/ui/pending"
	"github.com/mrenard/pointage/internal/ui/quizview"
	"github.com/mrenard/pointage/internal/worklog"
)

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewPending ViewState = iota
	ViewQuiz
	ViewFiles
	ViewHelp
)

// Model is the root Bubble Tea model that manages view routing, layout,
// and the reminder scheduler.
type Model struct {
	currentView  ViewState
	previousView ViewState
	layout       ui.Layout
	cfg          *model.Config
	store        storage.Store
	queue        *queue.Queue
	submitter    *submit.Submitter
	resolver     *worklog.Reconciler
	scheduler    *notify.Scheduler
	keys         *keys.KeyMap

	pendingView pending.Model
	quizView    quizview.Model
	filesView   files.Model
	helpView    helpview.Model
	hasQuiz     bool

	ready         bool
	alert         string
	configMissing bool
}

// New creates the root application model. The quiz view is created
// lazily when a day is opened.
func New(
	cfg *model.Config,
	store storage.Store,
	q *queue.Queue,
	submitter *submit.Submitter,
	resolver *worklog.Reconciler,
	scheduler *notify.Scheduler,
) Model {
	k := keys.DefaultKeyMap()
	return Model{
		currentView:   ViewPending,
		cfg:           cfg,
		store:         store,
		queue:         q,
		submitter:     submitter,
		resolver:      resolver,
		scheduler:     scheduler,
		keys:          k,
		pendingView:   pending.New(k, q, 80, 24),
		filesView:     files.New(k, store, 80, 24),
		helpView:      helpview.New(k, 80, 24),
		configMissing: cfg.Validate() != nil,
	}
}

// Init starts the reminder scheduler alongside the initial view.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.pendingView.Init(),
		m.scheduler.Start(),
	)
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		w := m.layout.ContentWidth()
		h := m.layout.ContentHeight()
		m.pendingView.SetSize(w, h)
		m.filesView.SetSize(w, h)
		m.helpView.SetSize(w, h)
		if m.hasQuiz {
			m.quizView.SetSize(w, h)
		}
		return m.updateActiveView(msg)

	case notify.QuizzQueuedMsg:
		if m.scheduler.Policy().ShowAlert {
			m.alert = msg.Notification.Message
		}
		m.pendingView.Reset()
		return m, m.scheduler.WaitForNext()

	case pending.OpenQuizMsg:
		return m.openQuiz(msg.Day)

	case quizview.SubmittedMsg:
		if msg.Err == nil {
			m.hasQuiz = false
			m.alert = ""
			m.currentView = ViewPending
			m.pendingView.Reset()
			m.filesView.Refresh()
			return m, nil
		}
		return m.updateActiveView(msg)

	case tea.KeyMsg:
		// The deletion confirmation owns the keyboard while open.
		if m.currentView == ViewFiles && m.filesView.Confirming() {
			break
		}
		if cmd, handled := m.handleGlobalKey(msg); handled {
			return m, cmd
		}
	}

	return m.updateActiveView(msg)
}

// openQuiz seeds a fresh engine from the configuration and switches to
// the quiz view for the given day.
func (m Model) openQuiz(day model.QuizzDate) (tea.Model, tea.Cmd) {
	engine, err := quiz.NewEngine(m.cfg)
	if err != nil {
		m.configMissing = true
		return m, nil
	}
	m.quizView = quizview.New(
		m.keys, m.cfg, engine, day,
		m.submitter, m.resolver,
		m.layout.ContentWidth(), m.layout.ContentHeight(),
	)
	m.previousView = m.currentView
	m.currentView = ViewQuiz
	m.hasQuiz = true
	return m, m.quizView.Init()
}

// handleGlobalKey processes keys that work regardless of the active
// view. Returns handled=false so view-local bindings still apply.
func (m *Model) handleGlobalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.currentView == ViewQuiz && m.quizView.Submitting() {
			return nil, true
		}
		m.scheduler.Stop()
		return tea.Quit, true

	case key.Matches(msg, m.keys.Help):
		if m.currentView == ViewHelp {
			m.currentView = m.previousView
		} else {
			m.previousView = m.currentView
			m.currentView = ViewHelp
		}
		return nil, true

	case key.Matches(msg, m.keys.Quizzes):
		m.currentView = ViewPending
		m.pendingView.Reset()
		return nil, true

	case key.Matches(msg, m.keys.Files):
		if m.currentView != ViewFiles {
			m.previousView = m.currentView
			m.currentView = ViewFiles
			m.filesView.Refresh()
		}
		return nil, true

	case key.Matches(msg, m.keys.Back):
		if m.currentView != ViewPending {
			m.currentView = ViewPending
			m.pendingView.Reset()
			return nil, true
		}
	}
	return nil, false
}

// updateActiveView dispatches the message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewPending:
		m.pendingView, cmd = m.pendingView.Update(msg)
	case ViewQuiz:
		if m.hasQuiz {
			m.quizView, cmd = m.quizView.Update(msg)
		}
	case ViewFiles:
		m.filesView, cmd = m.filesView.Update(msg)
	case ViewHelp:
		m.helpView, cmd = m.helpView.Update(msg)
	}

	return m, cmd
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Chargement..."
	}

	header := m.layout.RenderHeader(m.headerTitle(), m.alert)
	content := m.renderContent()
	statusBar := m.layout.RenderStatusBar(m.keyHints())

	return m.layout.RenderWithFrame(header, content, statusBar)
}

func (m Model) headerTitle() string {
	if n := m.queue.Len(); n > 0 {
		return fmt.Sprintf("Pointage [%d en attente]", n)
	}
	return "Pointage"
}

// renderContent returns the rendered string for the current active view.
func (m Model) renderContent() string {
	if m.configMissing {
		return "\n  Aucune tâche configurée.\n" +
			"  Renseignez " + model.DefaultConfigPath() + " puis relancez.\n"
	}

	switch m.currentView {
	case ViewPending:
		return m.pendingView.View()
	case ViewQuiz:
		if m.hasQuiz {
			return m.quizView.View()
		}
		return ""
	case ViewFiles:
		return m.filesView.View()
	case ViewHelp:
		return m.helpView.View()
	default:
		return ""
	}
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	switch m.currentView {
	case ViewQuiz:
		return "glisser ou h/l+espace peindre | s envoyer | esc retour"
	case ViewFiles:
		return "x exporter | d supprimer | esc retour"
	case ViewHelp:
		return "? fermer l'aide | esc retour"
	default:
		return "enter ouvrir | f fichiers | ? aide | q quitter"
	}
}
