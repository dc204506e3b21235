package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/roster/internal/config"
)

// KeyMap holds the screen's key bindings built from the config
type KeyMap struct {
	ListUsers      key.Binding
	DeleteLastUser key.Binding
	SubmitUser     key.Binding
	NextField      key.Binding
	PrevField      key.Binding
	ShowHelp       key.Binding
	Quit           key.Binding
}

// NewKeyMap converts configured key strings into bindings
func NewKeyMap(km config.KeyMappings) KeyMap {
	return KeyMap{
		ListUsers: key.NewBinding(
			key.WithKeys(km.ListUsers),
			key.WithHelp(km.ListUsers, "list users"),
		),
		DeleteLastUser: key.NewBinding(
			key.WithKeys(km.DeleteLastUser),
			key.WithHelp(km.DeleteLastUser, "delete last user"),
		),
		SubmitUser: key.NewBinding(
			key.WithKeys(km.SubmitUser),
			key.WithHelp(km.SubmitUser, "add user"),
		),
		NextField: key.NewBinding(
			key.WithKeys(km.NextField, "down"),
			key.WithHelp(km.NextField, "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys(km.PrevField, "up"),
			key.WithHelp(km.PrevField, "previous field"),
		),
		ShowHelp: key.NewBinding(
			key.WithKeys(km.ShowHelp),
			key.WithHelp(km.ShowHelp, "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys(km.Quit, "esc"),
			key.WithHelp(km.Quit, "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the footer
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SubmitUser, k.ListUsers, k.DeleteLastUser, k.ShowHelp, k.Quit}
}
