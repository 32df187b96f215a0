package theme

import "github.com/eliduarte/lista/internal/config/colors"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight      string
	Subtle         string
	Normal         string
	Create         string
	Edit           string
	Delete         string
	Pending        string
	InProgress     string
	Completed      string
	Border         string
	SelectedBorder string
	SelectedBg     string
	Title          string
)

// Init initializes the theme colors from the given color scheme
func Init(scheme colors.ColorScheme) {
	Highlight = scheme.Accent
	Subtle = scheme.Subtle
	Normal = scheme.Normal
	Create = scheme.Create
	Edit = scheme.Edit
	Delete = scheme.Delete
	Pending = scheme.Pending
	InProgress = scheme.InProgress
	Completed = scheme.Completed
	Border = scheme.Border
	SelectedBorder = scheme.SelectedBorder
	SelectedBg = scheme.SelectedBg
	Title = scheme.Title
}
