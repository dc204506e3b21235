package theme

import "github.com/thenoetrevino/roster/internal/config"

// Colors holds the current theme colors, initialized by Init.
// They start out as the default scheme so tests can render without Init.
var (
	Accent   string
	AccentFg string
	Normal   string
	Subtle   string
	Focused  string
	Success  string
	ErrorFg  string
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Accent = colors.Accent
	AccentFg = colors.AccentFg
	Normal = colors.Normal
	Subtle = colors.Subtle
	Focused = colors.Focused
	Success = colors.Success
	ErrorFg = colors.ErrorFg
}
