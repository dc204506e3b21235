package tui

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/roster/internal/tui/state"
	"github.com/thenoetrevino/roster/internal/tui/theme"
)

// Styles are built on demand so they always reflect the current theme

func titleBarStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Background(lipgloss.Color(theme.Accent)).
		Foreground(lipgloss.Color(theme.AccentFg))
}

func labelStyle(focused bool) lipgloss.Style {
	if focused {
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Focused))
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal))
}

func buttonStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Padding(0, 2).
		MarginTop(1).
		Background(lipgloss.Color(theme.Accent)).
		Foreground(lipgloss.Color(theme.AccentFg))
}

func statusStyle(level state.StatusLevel) lipgloss.Style {
	style := lipgloss.NewStyle().MarginTop(1)
	switch level {
	case state.LevelSuccess:
		return style.Foreground(lipgloss.Color(theme.Success))
	case state.LevelError:
		return style.Foreground(lipgloss.Color(theme.ErrorFg))
	default:
		return style.Foreground(lipgloss.Color(theme.Normal))
	}
}

func listingStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		MarginTop(1).
		Foreground(lipgloss.Color(theme.Normal))
}

func hintStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
}
