package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		// Primary
		Accent: "#FFFFFF",

		// Semantic
		Create: "#FFFFFF",
		Edit:   "#D0D0D0",
		Delete: "#FFFFFF",

		// Status badges
		Pending:    "#808080",
		InProgress: "#D0D0D0",
		Completed:  "#FFFFFF",

		// UI elements
		Border:         "#808080",
		SelectedBorder: "#FFFFFF",
		SelectedBg:     "#303030",

		// Text
		Title:  "#FFFFFF",
		Subtle: "#808080",
		Normal: "#D0D0D0",
	}
}
