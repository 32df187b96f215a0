package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/eliduarte/lista/internal/tui/state"
)

// ============================================================================
// HELP MODE HANDLERS
// ============================================================================

// handleHelpMode handles input in the help screen.
func (m Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.config.KeyMappings.ShowHelp, m.config.KeyMappings.Quit, "esc", "enter", " ":
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	}
	return m, nil
}

const helpContent = `LISTA - Keyboard Shortcuts

TODOS
  a      Add new todo
  e      Edit selected todo
  d      Delete selected todo
  s      Cycle status (pending / in progress / completed)
  space  View todo details

NAVIGATION
  k      Move to previous todo
  j      Move to next todo
  h      Previous filter tab
  l      Next filter tab
  /      Search todos

FORMS
  tab     Next field
  ctrl+s  Save
  esc     Cancel

OTHER
  ?      Show this help screen
  q      Quit application

Press any key to close`
