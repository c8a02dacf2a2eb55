// Package quizview is the interactive slot painter for one pending
// day: pick a task, drag or key across the hour boxes, submit.
package quizview

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mrenard/pointage/internal/jira"
	"github.com/mrenard/pointage/internal/keys"
	"github.com/mrenard/pointage/internal/model"
	"github.com/mrenard/pointage/internal/quiz"
	"github.com/mrenard/pointage/internal/submit"
	"github.com/mrenard/pointage/internal/theme"
	"github.com/mrenard/pointage/internal/ui"
	"github.com/mrenard/pointage/internal/worklog"
)

// Geometry of the hour box row. Each slot is slotCellWidth columns of
// colored cells plus one gap column; mouse positions map onto slots
// through this stride.
const (
	slotIndent    = 2
	slotCellWidth = 4
	slotStride    = slotCellWidth + 1
)

// SubmittedMsg reports the outcome of submitting the day. The root
// model watches it to leave the quiz on success.
type SubmittedMsg struct {
	Day model.QuizzDate
	Err error
}

// ticketResolvedMsg carries one task's resolved ticket for display.
// Resolution failures degrade to an absent badge, never an error.
type ticketResolvedMsg struct {
	index int
	issue *jira.Issue
}

// Model is the quiz view.
type Model struct {
	keys      *keys.KeyMap
	cfg       *model.Config
	engine    *quiz.Engine
	day       model.QuizzDate
	submitter *submit.Submitter
	resolver  *worklog.Reconciler

	cursor     int
	tickets    map[int]*jira.Issue
	spinner    spinner.Model
	submitting bool
	err        error

	width  int
	height int
}

// New creates a quiz view for one pending day. The engine has already
// been seeded from the configuration.
func New(
	k *keys.KeyMap,
	cfg *model.Config,
	engine *quiz.Engine,
	day model.QuizzDate,
	submitter *submit.Submitter,
	resolver *worklog.Reconciler,
	width, height int,
) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.ColorBlue)

	engine.SetExtent(quiz.DragExtent{
		Origin: slotIndent,
		Width:  quiz.SlotCount * slotStride,
	})

	return Model{
		keys:      k,
		cfg:       cfg,
		engine:    engine,
		day:       day,
		submitter: submitter,
		resolver:  resolver,
		tickets:   map[int]*jira.Issue{},
		spinner:   sp,
		width:     width,
		height:    height,
	}
}

// Init starts ticket resolution for every jira-linked task.
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	for i, t := range m.cfg.Tasks {
		if t.Jira == nil {
			continue
		}
		cmds = append(cmds, m.resolveTicket(i, t.Jira))
	}
	return tea.Batch(cmds...)
}

// resolveTicket returns a command resolving one task's ticket badge.
func (m Model) resolveTicket(index int, jt *model.JiraTask) tea.Cmd {
	return func() tea.Msg {
		issue, err := m.resolver.ResolveTicket(context.Background(), jt)
		if err != nil {
			return ticketResolvedMsg{index: index}
		}
		return ticketResolvedMsg{index: index, issue: issue}
	}
}

// Update handles messages for the quiz view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ticketResolvedMsg:
		if msg.issue != nil {
			m.tickets[msg.index] = msg.issue
		}
		return m, nil

	case spinner.TickMsg:
		if !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case SubmittedMsg:
		m.submitting = false
		m.err = msg.Err
		return m, nil

	case tea.MouseMsg:
		m.paintFromMouse(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// handleKey covers the discrete input path: task arming, slot cursor
// movement, painting, submission.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	k := m.keys
	switch {
	case key.Matches(msg, k.Up):
		m.engine.SelectTask(m.engine.ActiveTask() - 1)
	case key.Matches(msg, k.Down):
		m.engine.SelectTask(m.engine.ActiveTask() + 1)
	case key.Matches(msg, k.Left):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, k.Right):
		if m.cursor < quiz.SlotCount-1 {
			m.cursor++
		}
	case key.Matches(msg, k.Paint):
		m.engine.PaintSlot(m.cursor)
	case key.Matches(msg, k.Submit):
		m.submitting = true
		m.err = nil
		return m, tea.Batch(m.spinner.Tick, m.submitCmd())
	}
	return m, nil
}

// paintFromMouse maps a drag or click sample onto a slot. Only samples
// on the hour box row paint; everything else is ignored.
func (m *Model) paintFromMouse(msg tea.MouseMsg) {
	if m.submitting {
		return
	}
	if msg.Action != tea.MouseActionMotion && msg.Action != tea.MouseActionPress {
		return
	}
	if msg.Action == tea.MouseActionMotion && msg.Button != tea.MouseButtonLeft {
		return
	}
	if msg.Y != m.slotRowY() {
		return
	}
	m.engine.Paint(msg.X)
	if i := (msg.X - slotIndent) / slotStride; i >= 0 && i < quiz.SlotCount {
		m.cursor = i
	}
}

// submitCmd runs the full submission flow off the UI loop.
func (m Model) submitCmd() tea.Cmd {
	res := m.engine.Result(m.day)
	return func() tea.Msg {
		err := m.submitter.Submit(context.Background(), res)
		return SubmittedMsg{Day: m.day, Err: err}
	}
}

// slotRowY is the terminal row of the hour boxes: header, blank,
// date line, blank, one line per task, blank.
func (m Model) slotRowY() int {
	return 5 + len(m.cfg.Tasks)
}

// View renders the quiz: date headline, task list with ticket badges,
// hour box row, and the submission status line.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  " + theme.HeaderStyle.Render(ui.FrenchDate(m.day)) + "\n")
	b.WriteString("\n")

	for i, t := range m.cfg.Tasks {
		b.WriteString(m.renderTask(i, t) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderSlots() + "\n")
	b.WriteString(m.renderCursor() + "\n")
	b.WriteString("\n")

	switch {
	case m.submitting:
		b.WriteString("  " + m.spinner.View() + " envoi en cours…\n")
	case m.err != nil:
		b.WriteString("  " + theme.ErrorStyle.Render(m.err.Error()) + "\n")
	default:
		b.WriteString("  " + theme.HelpStyle.Render("space: paint · s: submit · esc: back") + "\n")
	}

	return b.String()
}

// renderTask renders one selectable task line with its ticket badge.
func (m Model) renderTask(index int, t model.Task) string {
	marker := "  "
	if index == m.engine.ActiveTask() {
		marker = "❯ "
	}

	line := marker + theme.TaskLabelStyle(t.Color, index == m.engine.ActiveTask()).Render(t.Title)
	if issue := m.tickets[index]; issue != nil {
		line += " " + theme.TicketStyle.Render(issue.Key)
		if issue.Summary != "" {
			line += " " + theme.HelpStyle.Render(issue.Summary)
		}
	}
	return "  " + line
}

// renderSlots renders the paintable hour box row.
func (m Model) renderSlots() string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", slotIndent))
	for _, taskIndex := range m.engine.Slots() {
		color := model.TaskColorGray
		if taskIndex >= 0 && taskIndex < len(m.cfg.Tasks) {
			color = m.cfg.Tasks[taskIndex].Color
		}
		b.WriteString(theme.SlotStyle(color).Render(strings.Repeat(" ", slotCellWidth)))
		b.WriteString(" ")
	}
	return b.String()
}

// renderCursor underlines the slot the keyboard cursor is on.
func (m Model) renderCursor() string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", slotIndent))
	for i := 0; i < quiz.SlotCount; i++ {
		cell := strings.Repeat(" ", slotCellWidth)
		if i == m.cursor {
			cell = strings.Repeat("▔", slotCellWidth)
		}
		b.WriteString(cell)
		b.WriteString(" ")
	}
	return b.String()
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Day returns the day this quiz answers.
func (m Model) Day() model.QuizzDate {
	return m.day
}

// Submitting reports whether a submission is in flight.
func (m Model) Submitting() bool {
	return m.submitting
}
