package config

import "github.com/eliduarte/lista/internal/config/colors"

// ColorScheme aliases the colors subpackage type so callers can depend
// on config alone.
type ColorScheme = colors.ColorScheme

// DefaultColorScheme returns the default color scheme (indigo theme)
func DefaultColorScheme() colors.ColorScheme {
	return *colors.Default()
}

// MonochromeColorScheme returns a black and white color scheme
func MonochromeColorScheme() colors.ColorScheme {
	return *colors.Monochrome()
}
