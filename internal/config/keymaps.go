package config

// KeyMappings defines all configurable key bindings.
// Every key here must be non-printable because the name inputs always
// have focus and receive ordinary characters.
type KeyMappings struct {
	// Actions
	ListUsers      string `yaml:"list_users"`
	DeleteLastUser string `yaml:"delete_last_user"`
	SubmitUser     string `yaml:"submit_user"`

	// Navigation
	NextField string `yaml:"next_field"`
	PrevField string `yaml:"prev_field"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		ListUsers:      "ctrl+l",
		DeleteLastUser: "ctrl+d",
		SubmitUser:     "enter",

		NextField: "tab",
		PrevField: "shift+tab",

		ShowHelp: "f1",
		Quit:     "ctrl+c",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.ListUsers == "" {
		k.ListUsers = defaults.ListUsers
	}
	if k.DeleteLastUser == "" {
		k.DeleteLastUser = defaults.DeleteLastUser
	}
	if k.SubmitUser == "" {
		k.SubmitUser = defaults.SubmitUser
	}
	if k.NextField == "" {
		k.NextField = defaults.NextField
	}
	if k.PrevField == "" {
		k.PrevField = defaults.PrevField
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
