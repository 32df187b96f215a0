package tui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eliduarte/lista/internal/models"
	"github.com/eliduarte/lista/internal/tui/forms"
	"github.com/eliduarte/lista/internal/tui/state"
)

// ============================================================================
// NORMAL MODE HANDLERS
// ============================================================================

// handleNormalMode dispatches key events in NormalMode to specific handlers.
func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	km := m.config.KeyMappings

	switch key {
	case km.Quit, "ctrl+c":
		return m.handleQuit()
	case km.ShowHelp:
		return m.handleShowHelp()
	case km.AddTodo:
		return m.handleAddTodo()
	case km.EditTodo:
		return m.handleEditTodo()
	case km.DeleteTodo:
		return m.handleDeleteTodo()
	case km.ViewTodo:
		return m.handleViewTodo()
	case km.CycleStatus:
		return m.handleCycleStatus()
	case km.NextTodo, "down":
		return m.handleNavigateDown()
	case km.PrevTodo, "up":
		return m.handleNavigateUp()
	case km.NextTab, "right":
		return m.handleNextTab()
	case km.PrevTab, "left":
		return m.handlePrevTab()
	case km.Search:
		return m.handleEnterSearch()
	}

	return m, nil
}

// handleQuit exits the application.
func (m Model) handleQuit() (tea.Model, tea.Cmd) {
	return m, tea.Quit
}

// handleShowHelp shows the help screen.
func (m Model) handleShowHelp() (tea.Model, tea.Cmd) {
	m.uiState.SetMode(state.HelpMode)
	return m, nil
}

// handleNavigateUp moves selection to the previous todo.
func (m Model) handleNavigateUp() (tea.Model, tea.Cmd) {
	if m.uiState.Selected() > 0 {
		m.uiState.SetSelected(m.uiState.Selected() - 1)
		m.uiState.EnsureRowVisible(m.uiState.VisibleRows())
	}
	return m, nil
}

// handleNavigateDown moves selection to the next todo.
func (m Model) handleNavigateDown() (tea.Model, tea.Cmd) {
	if m.uiState.Selected() < len(m.visible)-1 {
		m.uiState.SetSelected(m.uiState.Selected() + 1)
		m.uiState.EnsureRowVisible(m.uiState.VisibleRows())
	}
	return m, nil
}

// handleNextTab switches to the next filter tab.
func (m Model) handleNextTab() (tea.Model, tea.Cmd) {
	m.uiState.NextTab()
	m.refreshVisible()
	return m, nil
}

// handlePrevTab switches to the previous filter tab.
func (m Model) handlePrevTab() (tea.Model, tea.Cmd) {
	m.uiState.PrevTab()
	m.refreshVisible()
	return m, nil
}

// handleAddTodo opens the add form with empty drafts.
func (m Model) handleAddTodo() (tea.Model, tea.Cmd) {
	m.formState.Clear()
	m.formState.Form = forms.NewForm(
		forms.NewTextInput("title", "Title", "What needs doing?", &m.formState.Title),
		forms.NewTextArea("description", "Description", "Details (markdown welcome)", 5, &m.formState.Description),
	)
	m.uiState.SetMode(state.AddFormMode)
	return m, m.formState.Form.Init()
}

// handleEditTodo opens the edit form prefilled with the selected todo.
func (m Model) handleEditTodo() (tea.Model, tea.Cmd) {
	todo := m.getCurrentTodo()
	if todo == nil {
		return m, nil
	}

	m.formState.Clear()
	m.formState.Title = todo.Title
	m.formState.Description = todo.Description
	m.formState.EditingTodoID = todo.ID
	m.formState.Form = forms.NewForm(
		forms.NewTextInput("title", "Title", "What needs doing?", &m.formState.Title),
		forms.NewTextArea("description", "Description", "Details (markdown welcome)", 5, &m.formState.Description),
	)
	m.uiState.SetMode(state.EditFormMode)
	return m, m.formState.Form.Init()
}

// handleDeleteTodo initiates deletion confirmation for the selected todo.
func (m Model) handleDeleteTodo() (tea.Model, tea.Cmd) {
	if m.getCurrentTodo() == nil {
		return m, nil
	}
	m.uiState.SetMode(state.DeleteConfirmMode)
	return m, nil
}

// handleViewTodo opens the detail view for the selected todo.
func (m Model) handleViewTodo() (tea.Model, tea.Cmd) {
	todo := m.getCurrentTodo()
	if todo == nil {
		return m, nil
	}
	return m.openDetail(todo)
}

// handleCycleStatus advances the selected todo to the next status.
func (m Model) handleCycleStatus() (tea.Model, tea.Cmd) {
	todo := m.getCurrentTodo()
	if todo == nil {
		return m, nil
	}

	if _, err := m.svc.UpdateTodoStatus(todo.ID, nextStatus(todo.Status)); err != nil {
		slog.Error("failed to update todo status", "id", todo.ID, "error", err)
		return m, nil
	}
	m.refreshVisible()
	return m, nil
}

// handleEnterSearch enters search mode and clears any previous search state.
func (m Model) handleEnterSearch() (tea.Model, tea.Cmd) {
	m.searchState.Clear()
	m.searchState.Deactivate()
	m.uiState.SetMode(state.SearchMode)
	m.refreshVisible()
	return m, nil
}

// nextStatus returns the status after s in the cycle
// pending, in progress, completed, pending.
func nextStatus(s models.Status) models.Status {
	switch s {
	case models.StatusPending:
		return models.StatusInProgress
	case models.StatusInProgress:
		return models.StatusCompleted
	default:
		return models.StatusPending
	}
}
