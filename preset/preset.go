// Package preset defines named dashboard color themes. Users pick a built-in
// theme by name or load a custom one from TOML.
package preset

import (
	"sort"

	"github.com/phanxgames/maple"
)

// Theme is a coherent set of color strings for a dashboard scene. Color
// strings are resolved by the maple Surface (SVG names or "#rrggbb").
type Theme struct {
	Name            string   `toml:"name"`
	Background      string   `toml:"background"`       // window clear color
	PanelBackground string   `toml:"panel_background"` // graph and plot fill
	AxisColor       string   `toml:"axis_color"`
	LabelColor      string   `toml:"label_color"`
	TitleColor      string   `toml:"title_color"`
	TrackColor      string   `toml:"track_color"` // slider track fill
	ButtonPrimary   string   `toml:"button_primary"`
	ButtonSecondary string   `toml:"button_secondary"`
	SeriesColors    []string `toml:"series_colors"` // dataset line color cycle
}

// builtins maps theme names to their definitions.
var builtins = map[string]Theme{
	"light": {
		Name:            "light",
		Background:      "white",
		PanelBackground: "whitesmoke",
		AxisColor:       "black",
		LabelColor:      "black",
		TitleColor:      "darkred",
		TrackColor:      "lightgray",
		ButtonPrimary:   "green",
		ButtonSecondary: "red",
		SeriesColors:    []string{"steelblue", "darkorange", "seagreen", "crimson"},
	},
	"dark": {
		Name:            "dark",
		Background:      "#1f1e2d",
		PanelBackground: "#2a2940",
		AxisColor:       "gainsboro",
		LabelColor:      "gainsboro",
		TitleColor:      "gold",
		TrackColor:      "#454363",
		ButtonPrimary:   "mediumseagreen",
		ButtonSecondary: "indianred",
		SeriesColors:    []string{"deepskyblue", "orange", "springgreen", "hotpink"},
	},
}

// Get returns a named theme, falling back to the light theme if the name is
// unknown.
func Get(name string) Theme {
	if t, ok := builtins[name]; ok {
		return t
	}
	return builtins["light"]
}

// Names returns all built-in theme names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for k := range builtins {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// SeriesColor returns the line color for dataset index i, cycling through
// the theme's series palette.
func (t Theme) SeriesColor(i int) string {
	if len(t.SeriesColors) == 0 {
		return t.AxisColor
	}
	return t.SeriesColors[i%len(t.SeriesColors)]
}

// ApplyToGraph restyles a graph with the theme's panel colors.
func (t Theme) ApplyToGraph(g *maple.Graph) {
	g.SetColors(t.PanelBackground, t.AxisColor, t.LabelColor, t.TitleColor)
}
