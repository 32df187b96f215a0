// Package tui implements the interactive session UI on bubbletea's
// Model-View-Update pattern. All data flows through the todo service;
// the model only holds view state.
package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/eliduarte/lista/internal/config"
	"github.com/eliduarte/lista/internal/models"
	todoservice "github.com/eliduarte/lista/internal/services/todo"
	"github.com/eliduarte/lista/internal/tui/components"
	"github.com/eliduarte/lista/internal/tui/state"
)

// Model represents the application state for the TUI
type Model struct {
	svc         todoservice.Service
	config      *config.Config
	uiState     *state.UIState
	searchState *state.SearchState
	formState   *state.FormState

	// visible is the row list currently on screen, derived from the
	// search query and the active filter tab
	visible []*models.Todo

	// detail scrolls the rendered description in DetailMode
	detail viewport.Model

	// detailID is the todo shown in DetailMode
	detailID int
}

// NewModel creates and initializes the TUI model over the given service
func NewModel(svc todoservice.Service, cfg *config.Config) Model {
	components.InitStyles(cfg.ColorScheme)

	m := Model{
		svc:         svc,
		config:      cfg,
		uiState:     state.NewUIState(),
		searchState: state.NewSearchState(),
		formState:   state.NewFormState(),
	}
	m.refreshVisible()
	return m
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// refreshVisible recomputes the on-screen rows from the search query
// and the active tab, keeping the selection in bounds.
func (m *Model) refreshVisible() {
	var todos []*models.Todo
	if query := m.searchState.Query(); query != "" {
		todos = m.svc.SearchTodos(query)
	} else {
		todos = m.svc.GetAllTodos()
	}

	if status, ok := m.uiState.Tab().Status(); ok {
		filtered := make([]*models.Todo, 0, len(todos))
		for _, todo := range todos {
			if todo.Status == status {
				filtered = append(filtered, todo)
			}
		}
		todos = filtered
	}

	m.visible = todos
	m.uiState.ClampSelection(len(todos))
}

// getCurrentTodo returns the currently selected todo
// Returns nil if the visible list is empty
func (m Model) getCurrentTodo() *models.Todo {
	if len(m.visible) == 0 {
		return nil
	}
	if m.uiState.Selected() >= len(m.visible) {
		return nil
	}
	return m.visible[m.uiState.Selected()]
}
