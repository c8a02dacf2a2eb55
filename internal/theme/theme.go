package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mrenard/pointage/internal/model"
)

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorBlue   = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	ColorGreen  = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"}
	ColorYellow = lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"}
	ColorRed    = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	ColorIndigo = lipgloss.AdaptiveColor{Dark: "#748FFC", Light: "#4C51BF"}
	ColorPurple = lipgloss.AdaptiveColor{Dark: "#CC5DE8", Light: "#805AD5"}
	ColorGray   = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
	ColorWhite  = lipgloss.AdaptiveColor{Dark: "#F8F9FA", Light: "#1A202C"}
	ColorSubtle = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#CBD5E0"}
	ColorBorder = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E2E8F0"}
)

// HeaderStyle is used for top-level section headers and the application title.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorBlue).
	Padding(0, 1)

// StatusBarStyle is used for the bottom status bar.
var StatusBarStyle = lipgloss.NewStyle().
	Foreground(ColorWhite).
	Background(ColorSubtle).
	Padding(0, 1)

// PanelStyle wraps a view's content area.
var PanelStyle = lipgloss.NewStyle().
	Padding(1, 2).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// ListItemStyle is the base style for items in a list.
var ListItemStyle = lipgloss.NewStyle().
	PaddingLeft(2)

// SelectedItemStyle highlights the currently focused list item.
var SelectedItemStyle = lipgloss.NewStyle().
	PaddingLeft(1).
	Bold(true).
	Foreground(ColorBlue).
	Border(lipgloss.NormalBorder(), false, false, false, true).
	BorderForeground(ColorBlue)

// HelpStyle is used for keyboard shortcut hints and help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// ErrorStyle renders submission and configuration errors.
var ErrorStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorRed)

// TicketStyle renders resolved ticket keys beside task titles.
var TicketStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Bold(true)

// TaskColor maps a configured task color name onto the palette.
// Unknown names fall back to gray.
func TaskColor(c model.TaskColor) lipgloss.AdaptiveColor {
	switch c {
	case model.TaskColorRed:
		return ColorRed
	case model.TaskColorGreen:
		return ColorGreen
	case model.TaskColorYellow:
		return ColorYellow
	case model.TaskColorBlue:
		return ColorBlue
	case model.TaskColorIndigo:
		return ColorIndigo
	case model.TaskColorPurple:
		return ColorPurple
	default:
		return ColorGray
	}
}

// TaskLabelStyle renders a task title in its configured color, bold
// when the task is armed for painting.
func TaskLabelStyle(c model.TaskColor, selected bool) lipgloss.Style {
	style := lipgloss.NewStyle().Foreground(TaskColor(c))
	if selected {
		style = style.Bold(true)
	}
	return style
}

// SlotStyle renders one hour box filled with its task's color.
func SlotStyle(c model.TaskColor) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(TaskColor(c)).
		Foreground(ColorWhite)
}
