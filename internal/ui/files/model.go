// Package files browses the yearly timesheet archive.
package files

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mrenard/pointage/internal/keys"
	"github.com/mrenard/pointage/internal/storage"
	"github.com/mrenard/pointage/internal/theme"
)

// Model is the archive browser view.
type Model struct {
	keys    *keys.KeyMap
	store   storage.Store
	names   []string
	cursor  int
	status  string
	errMsg  string
	confirm *huh.Form
	approve bool
	target  string
	width   int
	height  int
}

// New creates an archive browser over the store.
func New(k *keys.KeyMap, store storage.Store, width, height int) Model {
	m := Model{keys: k, store: store, width: width, height: height}
	m.Refresh()
	return m
}

// Refresh reloads the file list from disk.
func (m *Model) Refresh() {
	names, err := m.store.ListTimesheets()
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.names = names
	if m.cursor >= len(names) && len(names) > 0 {
		m.cursor = len(names) - 1
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.confirm != nil {
		form, cmd := m.confirm.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.confirm = f
		}
		if m.confirm.State == huh.StateCompleted {
			if m.approve {
				m.deleteTarget()
			}
			m.confirm = nil
			m.target = ""
		}
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.names)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Share):
		m.share()
	case key.Matches(keyMsg, m.keys.Delete):
		if m.cursor < len(m.names) {
			m.target = m.names[m.cursor]
			m.approve = false
			m.confirm = huh.NewForm(huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Supprimer %s ?", m.target)).
					Affirmative("Oui").
					Negative("Non").
					Value(&m.approve),
			))
			return m, m.confirm.Init()
		}
	}
	return m, nil
}

// share copies the selected file into the working directory.
func (m *Model) share() {
	if m.cursor >= len(m.names) {
		return
	}
	name := m.names[m.cursor]
	src, err := os.Open(m.store.TimesheetPath(name))
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(".", name))
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.errMsg = ""
	m.status = fmt.Sprintf("%s exporté dans le dossier courant", name)
}

func (m *Model) deleteTarget() {
	if err := m.store.DeleteTimesheet(m.target); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.errMsg = ""
	m.status = fmt.Sprintf("%s supprimé", m.target)
	m.Refresh()
}

// View renders the archive list, confirmation form, or empty state.
func (m Model) View() string {
	if m.confirm != nil {
		return "\n" + m.confirm.View()
	}
	if len(m.names) == 0 {
		return "\n  " + theme.HelpStyle.Render("Aucune feuille de temps archivée") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, name := range m.names {
		if i == m.cursor {
			b.WriteString(theme.SelectedItemStyle.Render(name))
		} else {
			b.WriteString(theme.ListItemStyle.Render(name))
		}
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n  " + theme.ErrorStyle.Render(m.errMsg) + "\n")
	} else if m.status != "" {
		b.WriteString("\n  " + theme.HelpStyle.Render(m.status) + "\n")
	}
	return b.String()
}

// Confirming reports whether a deletion confirmation is open.
func (m Model) Confirming() bool {
	return m.confirm != nil
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
