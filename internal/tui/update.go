package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/eliduarte/lista/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)
	}

	// Forms need non-key messages too (cursor blink)
	if m.inFormMode() && m.formState.Form != nil {
		var cmd tea.Cmd
		m.formState.Form, cmd = m.formState.Form.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKeyMsg dispatches key messages to the appropriate mode handler.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.uiState.Mode() {
	case state.NormalMode:
		return m.handleNormalMode(msg)
	case state.AddFormMode, state.EditFormMode:
		return m.handleFormMode(msg)
	case state.DeleteConfirmMode:
		return m.handleDeleteConfirm(msg)
	case state.SearchMode:
		return m.handleSearchMode(msg)
	case state.DetailMode:
		return m.handleDetailMode(msg)
	case state.HelpMode:
		return m.handleHelpMode(msg)
	}
	return m, nil
}

// handleWindowResize handles terminal resize events.
func (m Model) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.uiState.SetWidth(msg.Width)
	m.uiState.SetHeight(msg.Height)

	// Keep the detail viewport sized to the dialog
	m.detail.Width = detailViewportWidth(msg.Width)
	m.detail.Height = detailViewportHeight(msg.Height)

	// Keep the selected row on screen after resize
	m.uiState.EnsureRowVisible(m.uiState.VisibleRows())
	return m, nil
}

func (m Model) inFormMode() bool {
	mode := m.uiState.Mode()
	return mode == state.AddFormMode || mode == state.EditFormMode
}
