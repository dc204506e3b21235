package tui

import (
	"log/slog"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case UserAddedMsg:
		return m.handleUserAdded(msg)

	case UserDeletedMsg:
		return m.handleUserDeleted(msg)

	case UsersListedMsg:
		return m.handleUsersListed(msg)
	}

	return m.updateFocusedInput(msg)
}

// ============================================================================
// KEY HANDLING
// ============================================================================

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		return m.handleHelpKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.ShowHelp):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.ListUsers):
		return m, m.listUsersCmd()

	case key.Matches(msg, m.keys.DeleteLastUser):
		return m, m.deleteLastUserCmd()

	case key.Matches(msg, m.keys.SubmitUser):
		return m.handleSubmit()

	case key.Matches(msg, m.keys.NextField):
		return m, m.focusField((m.focus + 1) % fieldCount)

	case key.Matches(msg, m.keys.PrevField):
		return m, m.focusField((m.focus + fieldCount - 1) % fieldCount)
	}

	return m.updateFocusedInput(msg)
}

// handleHelpKey closes the help panel; everything except quit is swallowed
func (m Model) handleHelpKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ShowHelp), msg.String() == "esc":
		m.showHelp = false
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

// handleSubmit runs the validation gate and, when it passes, clears the
// inputs right away and dispatches the insert. Focus stays where it is.
func (m Model) handleSubmit() (tea.Model, tea.Cmd) {
	m.syncInputs()

	firstName, lastName, ok := m.Screen.Submit()
	if !ok {
		return m, nil
	}

	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}

	return m, m.addUserCmd(firstName, lastName)
}

func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.syncInputs()
	return m, cmd
}

// ============================================================================
// TASK RESULTS
// ============================================================================

func (m Model) handleUserAdded(msg UserAddedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		slog.Error("Error adding user", "task", msg.TaskID, "error", msg.Err)
		m.Screen.AddFailed()
		return m, nil
	}

	slog.Debug("store task finished", "task", msg.TaskID, "action", "add", "id", msg.User.ID)
	m.Screen.UserAdded(msg.FirstName, msg.LastName)
	return m, nil
}

func (m Model) handleUserDeleted(msg UserDeletedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		slog.Error("Error deleting user", "task", msg.TaskID, "error", msg.Err)
		m.Screen.DeleteFailed()
		return m, nil
	}

	slog.Debug("store task finished", "task", msg.TaskID, "action", "delete_last", "deleted", msg.Deleted)
	m.Screen.LastUserDeleted()
	return m, nil
}

func (m Model) handleUsersListed(msg UsersListedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		slog.Error("Error listing users", "task", msg.TaskID, "error", msg.Err)
		m.Screen.ListFailed()
		return m, nil
	}

	slog.Debug("store task finished", "task", msg.TaskID, "action", "list", "count", len(msg.Users))
	m.Screen.UsersListed(msg.Users)
	return m, nil
}
