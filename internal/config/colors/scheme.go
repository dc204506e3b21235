package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name ("default" or "monochrome")
	Preset string `yaml:"preset"`

	// Title bar and submit button
	Accent   string `yaml:"accent"`
	AccentFg string `yaml:"accent_fg"`

	// Text colors
	Normal  string `yaml:"normal"`
	Subtle  string `yaml:"subtle"` // placeholders and key hints
	Focused string `yaml:"focused"`

	// Status message colors
	Success string `yaml:"success"`
	ErrorFg string `yaml:"error_fg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values from the named preset
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	c.Preset = preset.Preset
	c.fillFrom(preset)
}

// MergeFrom overrides colors with every non-empty value in other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	for _, pair := range []struct {
		dst *string
		src string
	}{
		{&c.Preset, other.Preset},
		{&c.Accent, other.Accent},
		{&c.AccentFg, other.AccentFg},
		{&c.Normal, other.Normal},
		{&c.Subtle, other.Subtle},
		{&c.Focused, other.Focused},
		{&c.Success, other.Success},
		{&c.ErrorFg, other.ErrorFg},
	} {
		if pair.src != "" {
			*pair.dst = pair.src
		}
	}
}

func (c *ColorScheme) fillFrom(base *ColorScheme) {
	for _, pair := range []struct {
		dst *string
		src string
	}{
		{&c.Accent, base.Accent},
		{&c.AccentFg, base.AccentFg},
		{&c.Normal, base.Normal},
		{&c.Subtle, base.Subtle},
		{&c.Focused, base.Focused},
		{&c.Success, base.Success},
		{&c.ErrorFg, base.ErrorFg},
	} {
		if *pair.dst == "" {
			*pair.dst = pair.src
		}
	}
}
