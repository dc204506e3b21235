package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"github.com/thenoetrevino/roster/internal/models"
	userservice "github.com/thenoetrevino/roster/internal/services/user"
)

// Each user action returns one of the commands below. Bubble Tea runs every
// command on its own goroutine, so results arrive in completion order, not
// in the order the keys were pressed. Whichever message is applied last
// decides what the screen shows.

// UserAddedMsg reports the outcome of an add
type UserAddedMsg struct {
	TaskID    string
	FirstName string
	LastName  string
	User      *models.User
	Err       error
}

// UserDeletedMsg reports the outcome of a delete-most-recent
type UserDeletedMsg struct {
	TaskID  string
	Deleted bool
	Err     error
}

// UsersListedMsg reports the outcome of a listing
type UsersListedMsg struct {
	TaskID string
	Users  []*models.User
	Err    error
}

// addUserCmd inserts the submitted names
func (m Model) addUserCmd(firstName, lastName string) tea.Cmd {
	ctx, svc := m.Ctx, m.App.UserService
	taskID := dispatch("add")

	return func() tea.Msg {
		user, err := svc.CreateUser(ctx, userservice.CreateUserRequest{
			FirstName: firstName,
			LastName:  lastName,
		})
		return UserAddedMsg{TaskID: taskID, FirstName: firstName, LastName: lastName, User: user, Err: err}
	}
}

// deleteLastUserCmd removes the most recently inserted user
func (m Model) deleteLastUserCmd() tea.Cmd {
	ctx, svc := m.Ctx, m.App.UserService
	taskID := dispatch("delete_last")

	return func() tea.Msg {
		deleted, err := svc.DeleteMostRecentUser(ctx)
		return UserDeletedMsg{TaskID: taskID, Deleted: deleted, Err: err}
	}
}

// listUsersCmd reads every stored user
func (m Model) listUsersCmd() tea.Cmd {
	ctx, svc := m.Ctx, m.App.UserService
	taskID := dispatch("list")

	return func() tea.Msg {
		users, err := svc.ListUsers(ctx)
		return UsersListedMsg{TaskID: taskID, Users: users, Err: err}
	}
}

// dispatch assigns a task ID used to pair dispatch and completion log lines
func dispatch(action string) string {
	taskID := uuid.NewString()
	slog.Debug("dispatching store task", "task", taskID, "action", action)
	return taskID
}
