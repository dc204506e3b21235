package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

const screenTitle = "User Management"

// View renders the screen
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if m.showHelp {
		view.Content = m.renderHelp()
		return view
	}

	view.Content = m.renderScreen()
	return view
}

func (m Model) renderScreen() string {
	titleBar := titleBarStyle()
	if m.width > 0 {
		titleBar = titleBar.Width(m.width)
	}

	sections := []string{
		titleBar.Render(screenTitle),
		"",
		labelStyle(m.focus == firstNameField).Render("First Name"),
		m.inputs[firstNameField].View(),
		labelStyle(m.focus == lastNameField).Render("Last Name"),
		m.inputs[lastNameField].View(),
		buttonStyle().Render("Add User"),
	}

	if msg := m.Screen.StatusMessage(); msg != "" {
		sections = append(sections, statusStyle(m.Screen.StatusLevel()).Render(msg))
	}
	if listing := m.Screen.ListingText(); listing != "" {
		sections = append(sections, listingStyle().Render(listing))
	}

	sections = append(sections, "", m.renderKeyHints())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderKeyHints renders the footer, e.g. "enter add user • ctrl+l list users"
func (m Model) renderKeyHints() string {
	bindings := m.keys.ShortHelp()
	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, h.Key+" "+h.Desc)
	}
	return hintStyle().Render(strings.Join(hints, " • "))
}
