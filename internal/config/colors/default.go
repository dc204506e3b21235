package colors

// Default returns the default color scheme (purple title bar)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		Accent:   "#6200EE",
		AccentFg: "#FFFFFF",

		Normal:  "#D0D0D0",
		Subtle:  "#585858",
		Focused: "#BB86FC",

		Success: "#5FD75F",
		ErrorFg: "#FF5F5F",
	}
}
