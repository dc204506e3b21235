package tui

import (
	"context"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/roster/internal/app"
	"github.com/thenoetrevino/roster/internal/config"
	"github.com/thenoetrevino/roster/internal/tui/state"
	"github.com/thenoetrevino/roster/internal/tui/theme"
)

// Field indexes into Model.inputs
const (
	firstNameField = iota
	lastNameField
	fieldCount
)

// Model is the user management screen.
// Screen owns the display state; the text inputs only mirror the two name
// fields so the user can edit them.
type Model struct {
	Ctx    context.Context
	App    *app.App
	Config *config.Config
	Screen *state.ScreenState

	keys     KeyMap
	inputs   [fieldCount]textinput.Model
	focus    int
	width    int
	height   int
	showHelp bool
}

// New creates the screen model. ctx bounds every store operation the
// screen dispatches.
func New(ctx context.Context, application *app.App, cfg *config.Config) Model {
	theme.Init(cfg.ColorScheme)

	m := Model{
		Ctx:    ctx,
		App:    application,
		Config: cfg,
		Screen: state.NewScreenState(),
		keys:   NewKeyMap(cfg.KeyMappings),
	}

	m.inputs[firstNameField] = newNameInput("First Name")
	m.inputs[lastNameField] = newNameInput("Last Name")
	m.focusField(firstNameField)

	return m
}

func newNameInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "> "
	// Names have no length limit in the store
	ti.CharLimit = 0
	return ti
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// focusField moves keyboard focus to the given input
func (m *Model) focusField(field int) tea.Cmd {
	m.focus = field
	var cmd tea.Cmd
	for i := range m.inputs {
		if i == field {
			cmd = m.inputs[i].Focus()
			continue
		}
		m.inputs[i].Blur()
	}
	return cmd
}

// syncInputs copies the text input contents into the display state
func (m *Model) syncInputs() {
	m.Screen.SetInputs(m.inputs[firstNameField].Value(), m.inputs[lastNameField].Value())
}

// FocusedField returns the index of the input that receives typing
func (m Model) FocusedField() int {
	return m.focus
}

// HelpVisible reports whether the help panel is open
func (m Model) HelpVisible() bool {
	return m.showHelp
}
