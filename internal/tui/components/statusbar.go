package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type StatusBarProps struct {
	Width int
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: "Lista - Session Todos"
// Right side: "press ? for help"
func RenderStatusBar(props StatusBarProps) string {
	leftText := "Lista - Session Todos"
	rightText := "press ? for help"

	leftRendered := SubtleStyle.Render(leftText)
	rightRendered := SubtleStyle.Render(rightText)

	// Calculate space between left and right text
	leftWidth := lipgloss.Width(leftRendered)
	rightWidth := lipgloss.Width(rightRendered)
	gapWidth := props.Width - leftWidth - rightWidth
	if gapWidth < 1 {
		gapWidth = 1
	}

	gap := strings.Repeat(" ", gapWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, gap, rightRendered)
}
