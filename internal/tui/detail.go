package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/eliduarte/lista/internal/models"
	"github.com/eliduarte/lista/internal/tui/components"
	"github.com/eliduarte/lista/internal/tui/state"
)

// ============================================================================
// DETAIL MODE HANDLERS
// ============================================================================

// openDetail switches to the detail view for a todo, loading the
// rendered description into the scroll viewport.
func (m Model) openDetail(todo *models.Todo) (tea.Model, tea.Cmd) {
	width := detailViewportWidth(m.uiState.Width())
	height := detailViewportHeight(m.uiState.Height())

	m.detail = viewport.New(width, height)
	m.detail.SetContent(components.RenderDescription(components.DescriptionProps{
		Description: todo.Description,
		Width:       width,
	}))
	m.detailID = todo.ID
	m.uiState.SetMode(state.DetailMode)
	return m, nil
}

// handleDetailMode handles input in the detail view.
// Navigation keys scroll the description; anything that closes
// dialogs elsewhere closes this one too.
func (m Model) handleDetailMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", m.config.KeyMappings.Quit, m.config.KeyMappings.ViewTodo:
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

// viewDetail renders the detail dialog: title, metadata, scrollable
// description.
func (m Model) viewDetail() string {
	todo, err := m.svc.GetTodoByID(m.detailID)
	if err != nil {
		return ""
	}

	header := components.TitleStyle.Render(fmt.Sprintf("#%d  %s", todo.ID, todo.Title))
	meta := components.SubtleStyle.Render(fmt.Sprintf(
		"%s  ·  created %s  ·  updated %s",
		todo.Status.Label(),
		todo.CreatedAt.Format("Jan 2 15:04"),
		todo.UpdatedAt.Format("Jan 2 15:04"),
	))
	footer := components.SubtleStyle.Render("[j/k] scroll  [esc] close")

	content := header + "\n" + meta + "\n\n" + m.detail.View() + "\n\n" + footer
	return components.DetailBoxStyle.Width(m.detail.Width + 4).Render(content)
}

// detailViewportWidth returns the description width inside the dialog.
func detailViewportWidth(termWidth int) int {
	return max(termWidth/2, 20)
}

// detailViewportHeight returns the description height inside the dialog.
func detailViewportHeight(termHeight int) int {
	return max(termHeight/2-6, 3)
}
