package tui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eliduarte/lista/internal/tui/state"
)

// ============================================================================
// CONFIRMATION HANDLERS
// ============================================================================

// handleDeleteConfirm handles todo deletion confirmation.
func (m Model) handleDeleteConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		return m.confirmDeleteTodo()
	case "n", "N", "esc":
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	}
	return m, nil
}

// confirmDeleteTodo performs the actual deletion.
func (m Model) confirmDeleteTodo() (tea.Model, tea.Cmd) {
	todo := m.getCurrentTodo()
	if todo != nil {
		if !m.svc.DeleteTodo(todo.ID) {
			slog.Error("failed to delete todo", "id", todo.ID)
		}
		m.refreshVisible()
	}
	m.uiState.SetMode(state.NormalMode)
	return m, nil
}
