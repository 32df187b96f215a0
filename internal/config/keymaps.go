package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Todos
	AddTodo     string `yaml:"add_todo"`
	EditTodo    string `yaml:"edit_todo"`
	DeleteTodo  string `yaml:"delete_todo"`
	ViewTodo    string `yaml:"view_todo"`
	CycleStatus string `yaml:"cycle_status"`

	// Forms
	SaveForm string `yaml:"save_form"`

	// Navigation
	PrevTodo string `yaml:"prev_todo"`
	NextTodo string `yaml:"next_todo"`
	PrevTab  string `yaml:"prev_tab"`
	NextTab  string `yaml:"next_tab"`

	// Other
	Search   string `yaml:"search"`
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Todos
		AddTodo:     "a",
		EditTodo:    "e",
		DeleteTodo:  "d",
		ViewTodo:    " ",
		CycleStatus: "s",
		SaveForm:    "ctrl+s",

		// Navigation
		PrevTodo: "k",
		NextTodo: "j",
		PrevTab:  "h",
		NextTab:  "l",

		// Other
		Search:   "/",
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.AddTodo == "" {
		k.AddTodo = defaults.AddTodo
	}
	if k.EditTodo == "" {
		k.EditTodo = defaults.EditTodo
	}
	if k.DeleteTodo == "" {
		k.DeleteTodo = defaults.DeleteTodo
	}
	if k.ViewTodo == "" {
		k.ViewTodo = defaults.ViewTodo
	}
	if k.CycleStatus == "" {
		k.CycleStatus = defaults.CycleStatus
	}
	if k.SaveForm == "" {
		k.SaveForm = defaults.SaveForm
	}
	if k.PrevTodo == "" {
		k.PrevTodo = defaults.PrevTodo
	}
	if k.NextTodo == "" {
		k.NextTodo = defaults.NextTodo
	}
	if k.PrevTab == "" {
		k.PrevTab = defaults.PrevTab
	}
	if k.NextTab == "" {
		k.NextTab = defaults.NextTab
	}
	if k.Search == "" {
		k.Search = defaults.Search
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
