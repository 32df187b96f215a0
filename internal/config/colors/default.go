package colors

// Default returns the default color scheme (indigo theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#7C6AF7",

		// Semantic
		Create: "#5FD75F",
		Edit:   "#5F87D7",
		Delete: "#FF5F5F",

		// Status badges
		Pending:    "#EAB308",
		InProgress: "#5F87D7",
		Completed:  "#5FD75F",

		// UI elements
		Border:         "#585858",
		SelectedBorder: "#7C6AF7",
		SelectedBg:     "#3A3A3A",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",
	}
}
