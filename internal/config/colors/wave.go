package colors

// Wave returns a cool blue color scheme
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",

		// Primary
		Accent: "#7E9CD8",

		// Semantic
		Create: "#98BB6C",
		Edit:   "#7FB4CA",
		Delete: "#E46876",

		// Status badges
		Pending:    "#E6C384",
		InProgress: "#7FB4CA",
		Completed:  "#98BB6C",

		// UI elements
		Border:         "#54546D",
		SelectedBorder: "#7E9CD8",
		SelectedBg:     "#2D4F67",

		// Text
		Title:  "#957FB8",
		Subtle: "#727169",
		Normal: "#DCD7BA",
	}
}
