package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderTabs renders the status filter tab bar.
// selectedIdx indicates which tab is active (0-indexed).
// width is the total width to fill with the tab gap.
// rightContent is optional right-aligned content (the pinned search filter).
//
// Layout:
//
//	╭─────╮ ╭─────────╮                          /query
//	│ All │ │ Pending │──────────────────────────
//	     active      inactive
func RenderTabs(tabs []string, selectedIdx int, width int, rightContent string) string {
	var renderedTabs []string

	for i, tabName := range tabs {
		if i == selectedIdx {
			renderedTabs = append(renderedTabs, ActiveTabStyle.Render(tabName))
		} else {
			renderedTabs = append(renderedTabs, TabStyle.Render(tabName))
		}
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, renderedTabs...)

	// Calculate gap width accounting for the right content if present
	rightWidth := lipgloss.Width(rightContent)
	gapWidth := max(width-lipgloss.Width(row)-rightWidth-2, 0)
	gap := TabGapStyle.Render(strings.Repeat(" ", gapWidth))

	if rightContent != "" {
		return lipgloss.JoinHorizontal(lipgloss.Bottom, row, gap, rightContent)
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, row, gap)
}
