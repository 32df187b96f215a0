package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/eliduarte/lista/internal/tui/state"
)

// ============================================================================
// SEARCH MODE HANDLERS
// ============================================================================

// handleSearchMode handles keyboard input in search mode.
// The list filters live as the query changes.
func (m Model) handleSearchMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.handleSearchConfirm()
	case "esc":
		return m.handleSearchCancel()
	case "backspace", "ctrl+h":
		if m.searchState.Backspace() {
			m.refreshVisible()
		}
		return m, nil
	default:
		key := msg.String()
		if len(key) == 1 {
			if m.searchState.AppendChar(rune(key[0])) {
				m.refreshVisible()
			}
		}
		return m, nil
	}
}

// handleSearchConfirm pins the filter and returns to normal mode.
// The query persists and continues to filter the list.
func (m Model) handleSearchConfirm() (tea.Model, tea.Cmd) {
	m.searchState.Activate()
	m.uiState.SetMode(state.NormalMode)
	return m, nil
}

// handleSearchCancel clears the search and returns to normal mode.
// All todos are shown again.
func (m Model) handleSearchCancel() (tea.Model, tea.Cmd) {
	m.searchState.Clear()
	m.searchState.Deactivate()
	m.uiState.SetMode(state.NormalMode)
	m.refreshVisible()
	return m, nil
}
