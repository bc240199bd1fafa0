package preset

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// LoadFromTOML parses a custom theme from TOML data. Fields left empty fall
// back to the light theme's values, so a custom theme only needs to name
// what it changes.
func LoadFromTOML(data []byte) (Theme, error) {
	var raw Theme
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Theme{}, fmt.Errorf("preset: parse TOML: %w", err)
	}
	if raw.Name == "" {
		return Theme{}, fmt.Errorf("preset: missing required field 'name'")
	}
	return withDefaults(raw), nil
}

// LoadFile reads a custom theme from a TOML file.
func LoadFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("preset: read %s: %w", path, err)
	}
	return LoadFromTOML(data)
}

// withDefaults fills empty fields from the light theme.
func withDefaults(t Theme) Theme {
	base := builtins["light"]
	if t.Background == "" {
		t.Background = base.Background
	}
	if t.PanelBackground == "" {
		t.PanelBackground = base.PanelBackground
	}
	if t.AxisColor == "" {
		t.AxisColor = base.AxisColor
	}
	if t.LabelColor == "" {
		t.LabelColor = base.LabelColor
	}
	if t.TitleColor == "" {
		t.TitleColor = base.TitleColor
	}
	if t.TrackColor == "" {
		t.TrackColor = base.TrackColor
	}
	if t.ButtonPrimary == "" {
		t.ButtonPrimary = base.ButtonPrimary
	}
	if t.ButtonSecondary == "" {
		t.ButtonSecondary = base.ButtonSecondary
	}
	if len(t.SeriesColors) == 0 {
		t.SeriesColors = base.SeriesColors
	}
	return t
}
