package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/eliduarte/lista/internal/tui/components"
	"github.com/eliduarte/lista/internal/tui/state"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() string {
	// Wait for terminal size to be initialized
	if m.uiState.Width() == 0 {
		return "Loading..."
	}

	// Handle form modes: show the add/edit form in a centered dialog
	if m.inFormMode() && m.formState.Form != nil {
		return m.viewForm()
	}

	// Handle delete confirmation mode: show centered dialog
	if m.uiState.Mode() == state.DeleteConfirmMode {
		if todo := m.getCurrentTodo(); todo != nil {
			confirmBox := components.DeleteConfirmBoxStyle.
				Width(50).
				Render(fmt.Sprintf("Delete '%s'?\n\n[y]es  [n]o", todo.Title))

			return lipgloss.Place(
				m.uiState.Width(), m.uiState.Height(),
				lipgloss.Center, lipgloss.Center,
				confirmBox,
			)
		}
	}

	// Handle detail mode: show the todo with its rendered description
	if m.uiState.Mode() == state.DetailMode {
		return lipgloss.Place(
			m.uiState.Width(), m.uiState.Height(),
			lipgloss.Center, lipgloss.Center,
			m.viewDetail(),
		)
	}

	// Handle help mode: show keyboard shortcuts
	if m.uiState.Mode() == state.HelpMode {
		helpBox := components.HelpBoxStyle.
			Width(50).
			Render(helpContent)

		return lipgloss.Place(
			m.uiState.Width(), m.uiState.Height(),
			lipgloss.Center, lipgloss.Center,
			helpBox,
		)
	}

	// Normal and search modes: render the todo list
	return m.viewList()
}

// viewForm renders the add or edit dialog around the form fields.
func (m Model) viewForm() string {
	var header string
	boxStyle := components.AddFormBoxStyle
	if m.uiState.Mode() == state.EditFormMode {
		header = fmt.Sprintf("Edit Todo #%d", m.formState.EditingTodoID)
		boxStyle = components.EditFormBoxStyle
	} else {
		header = "New Todo"
	}

	content := components.TitleStyle.Render(header) + "\n\n" + m.formState.Form.View()
	if m.formState.SaveError != "" {
		content += components.ErrorTextStyle.Render("✗ "+m.formState.SaveError) + "\n\n"
	}
	content += components.SubtleStyle.Render("[tab] next field  [ctrl+s] save  [esc] cancel")

	formBox := boxStyle.
		Width(max(m.uiState.Width()/2, 40)).
		Render(content)

	return lipgloss.Place(
		m.uiState.Width(), m.uiState.Height(),
		lipgloss.Center, lipgloss.Center,
		formBox,
	)
}

// viewList renders the main screen: tabs, counts, rows, search, status bar.
func (m Model) viewList() string {
	width := m.uiState.Width()

	// Tab bar with the pinned filter on the right
	tabs := state.Tabs()
	tabTitles := make([]string, len(tabs))
	for i, tab := range tabs {
		tabTitles[i] = tab.Title()
	}
	rightContent := ""
	if m.searchState.Active() && m.searchState.Query() != "" {
		rightContent = components.SearchPromptStyle.Render("/" + m.searchState.Query())
	}
	tabBar := components.RenderTabs(tabTitles, int(m.uiState.Tab()), width, rightContent)

	// Per-status counts plus the total
	counts := components.SubtleStyle.Render(fmt.Sprintf(
		"%d todos  |  %d pending  |  %d in progress  |  %d completed",
		m.svc.GetTodoCount(),
		len(m.svc.GetPendingTodos()),
		len(m.svc.GetInProgressTodos()),
		len(m.svc.GetCompletedTodos()),
	))

	rows := m.viewRows(width)

	// Live search line while typing
	searchLine := ""
	if m.uiState.Mode() == state.SearchMode {
		searchLine = components.SearchPromptStyle.Render(fmt.Sprintf("/%s_", m.searchState.Query()))
	}

	statusBar := components.RenderStatusBar(components.StatusBarProps{Width: width})

	return lipgloss.JoinVertical(
		lipgloss.Left,
		tabBar,
		"",
		counts,
		rows,
		"",
		searchLine,
		statusBar,
	)
}

// viewRows renders the visible window of the list with scroll indicators.
func (m Model) viewRows(width int) string {
	if len(m.visible) == 0 {
		return "\n" + components.SubtleStyle.Render(m.emptyMessage()) + "\n"
	}

	visibleCount := m.uiState.VisibleRows()
	start := m.uiState.ScrollOffset()
	end := min(start+visibleCount, len(m.visible))

	topIndicator := " "
	if start > 0 {
		topIndicator = components.IndicatorStyle.Render("▲ more")
	}
	bottomIndicator := " "
	if end < len(m.visible) {
		bottomIndicator = components.IndicatorStyle.Render("▼ more")
	}

	lines := []string{topIndicator}
	for i := start; i < end; i++ {
		lines = append(lines, components.RenderTodoRow(components.TodoRowProps{
			Todo:     m.visible[i],
			Selected: i == m.uiState.Selected(),
			Width:    width,
		}))
	}
	lines = append(lines, bottomIndicator)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// emptyMessage explains why the list is empty.
func (m Model) emptyMessage() string {
	if m.searchState.Query() != "" {
		return fmt.Sprintf("  No todos match '%s'.", m.searchState.Query())
	}
	if _, filtered := m.uiState.Tab().Status(); filtered {
		return fmt.Sprintf("  No %s todos.", m.uiState.Tab().Title())
	}
	return "  Nothing here yet. Press 'a' to add your first todo."
}
