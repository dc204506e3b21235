package tui

import (
	"context"
	"database/sql"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/roster/internal/config"
	clitest "github.com/thenoetrevino/roster/internal/testutil/cli"
)

// setupTestModel creates a screen model backed by an in-memory database
func setupTestModel(t *testing.T) (Model, *sql.DB) {
	t.Helper()
	db, appInstance := clitest.SetupCLITest(t)

	cfg := &config.Config{
		KeyMappings: config.DefaultKeyMappings(),
		ColorScheme: config.DefaultColorScheme(),
	}
	return New(context.Background(), appInstance, cfg), db
}

// update sends msg to the model and returns the new model and command
func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	model, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	return model, cmd
}

// typeString types s into the focused input one rune at a time
func typeString(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m, _ = update(t, m, tea.KeyPressMsg{Text: string(r), Code: r})
	}
	return m
}

// pressKey sends a special key such as tea.KeyEnter
func pressKey(t *testing.T, m Model, code rune) (Model, tea.Cmd) {
	t.Helper()
	return update(t, m, tea.KeyPressMsg{Code: code})
}

// pressCtrl sends ctrl+<r>
func pressCtrl(t *testing.T, m Model, r rune) (Model, tea.Cmd) {
	t.Helper()
	return update(t, m, tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl})
}

// runCmd executes a store command synchronously, standing in for the
// goroutine Bubble Tea would use.
func runCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command, got nil")
	}
	return cmd()
}

// fillAndSubmit types both names and presses enter
func fillAndSubmit(t *testing.T, m Model, first, last string) (Model, tea.Cmd) {
	t.Helper()
	m = typeString(t, m, first)
	m, _ = pressKey(t, m, tea.KeyTab)
	m = typeString(t, m, last)
	return pressKey(t, m, tea.KeyEnter)
}
