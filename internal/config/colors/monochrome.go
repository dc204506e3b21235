package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent:   "#FFFFFF",
		AccentFg: "#000000",

		Normal:  "#D0D0D0",
		Subtle:  "#808080",
		Focused: "#FFFFFF",

		Success: "#FFFFFF",
		ErrorFg: "#FFFFFF",
	}
}
