// Package pending lists the days awaiting an answer.
package pending

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mrenard/pointage/internal/keys"
	"github.com/mrenard/pointage/internal/model"
	"github.com/mrenard/pointage/internal/queue"
	"github.com/mrenard/pointage/internal/theme"
	"github.com/mrenard/pointage/internal/ui"
)

// OpenQuizMsg asks the root model to open the quiz for a day.
type OpenQuizMsg struct {
	Day model.QuizzDate
}

// Model is the pending-quiz list view.
type Model struct {
	keys   *keys.KeyMap
	queue  *queue.Queue
	cursor int
	width  int
	height int
}

// New creates a pending list over the queue.
func New(k *keys.KeyMap, q *queue.Queue, width, height int) Model {
	return Model{keys: k, queue: q, width: width, height: height}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the pending list.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	days := m.queue.Days()
	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(days)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Select):
		if m.cursor < len(days) {
			day := days[m.cursor]
			return m, func() tea.Msg { return OpenQuizMsg{Day: day} }
		}
	}
	return m, nil
}

// View renders the list, or the explicit nothing-to-do state when the
// queue is empty.
func (m Model) View() string {
	days := m.queue.Days()
	if len(days) == 0 {
		return "\n  " + theme.HelpStyle.Render("Plus de pointage à faire pour aujourd'hui") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, d := range days {
		line := ui.FrenchDate(d)
		if i == m.cursor {
			b.WriteString(theme.SelectedItemStyle.Render(line))
		} else {
			b.WriteString(theme.ListItemStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Reset clamps the cursor after the queue changed underneath the view.
func (m *Model) Reset() {
	if n := m.queue.Len(); m.cursor >= n && n > 0 {
		m.cursor = n - 1
	} else if n == 0 {
		m.cursor = 0
	}
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
