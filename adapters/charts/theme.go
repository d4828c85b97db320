package charts

import (
	"image/color"
)

// Theme controls chart colors and grid, selected by the PLOT_STYLE name.
type Theme struct {
	Name       string
	Background color.Color
	Fill       color.Color
	Grid       bool
}

var themes = map[string]Theme{
	"default": {
		Name:       "default",
		Background: color.White,
		Fill:       color.RGBA{R: 0x34, G: 0x65, B: 0xA4, A: 0xFF},
		Grid:       true,
	},
	"darkgrid": {
		Name:       "darkgrid",
		Background: color.RGBA{R: 0xE8, G: 0xE8, B: 0xE8, A: 0xFF},
		Fill:       color.RGBA{R: 0xCC, G: 0x44, B: 0x00, A: 0xFF},
		Grid:       true,
	},
	"minimal": {
		Name:       "minimal",
		Background: color.White,
		Fill:       color.RGBA{R: 0x88, G: 0x8A, B: 0x85, A: 0xFF},
		Grid:       false,
	},
}

// themeFor resolves a style name; unknown names fall back to the default
// theme.
func themeFor(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes["default"]
}
