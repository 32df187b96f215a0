package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	todoservice "github.com/eliduarte/lista/internal/services/todo"
	"github.com/eliduarte/lista/internal/tui/forms"
	"github.com/eliduarte/lista/internal/tui/state"
)

// ============================================================================
// FORM MODE HANDLERS (add + edit)
// ============================================================================

// handleFormMode handles keyboard input while a form is open.
// Save is intercepted here; everything else flows into the form fields.
func (m Model) handleFormMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.formState.Form == nil {
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	}

	if msg.String() == m.config.KeyMappings.SaveForm {
		return m.handleFormSave()
	}

	var cmd tea.Cmd
	m.formState.Form, cmd = m.formState.Form.Update(msg)

	if m.formState.Form.State() == forms.StateAborted {
		m.formState.Clear()
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	}

	return m, cmd
}

// handleFormSave persists the draft through the service.
// Validation failures keep the form open with the error shown inline.
func (m Model) handleFormSave() (tea.Model, tea.Cmd) {
	var err error
	if m.uiState.Mode() == state.EditFormMode {
		title := m.formState.Title
		description := m.formState.Description
		_, err = m.svc.UpdateTodo(todoservice.UpdateTodoRequest{
			TodoID:      m.formState.EditingTodoID,
			Title:       &title,
			Description: &description,
		})
	} else {
		_, err = m.svc.CreateTodo(m.formState.Title, m.formState.Description)
	}

	if err != nil {
		m.formState.SaveError = saveErrorMessage(err)
		return m, nil
	}

	m.formState.Form.Submit()
	m.formState.Clear()
	m.uiState.SetMode(state.NormalMode)
	m.refreshVisible()
	return m, nil
}

// saveErrorMessage maps service errors to the line shown in the form box.
func saveErrorMessage(err error) string {
	switch {
	case errors.Is(err, todoservice.ErrEmptyTitle):
		return "Title cannot be empty"
	case errors.Is(err, todoservice.ErrTodoNotFound):
		return "This todo no longer exists"
	default:
		return "Could not save todo"
	}
}
