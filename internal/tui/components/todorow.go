package components

import (
	"fmt"

	"github.com/eliduarte/lista/internal/models"
)

// badgeWidth fits the longest status label ("In Progress").
const badgeWidth = 11

// StatusBadge renders a colored, fixed-width status label so titles
// line up across rows.
func StatusBadge(s models.Status) string {
	label := fmt.Sprintf("%-*s", badgeWidth, s.Label())
	switch s {
	case models.StatusInProgress:
		return InProgressBadgeStyle.Render(label)
	case models.StatusCompleted:
		return CompletedBadgeStyle.Render(label)
	default:
		return PendingBadgeStyle.Render(label)
	}
}

type TodoRowProps struct {
	Todo     *models.Todo
	Selected bool
	Width    int
}

// RenderTodoRow renders a single list row: selection marker, id,
// status badge, title. The title is truncated to fit the width.
func RenderTodoRow(props TodoRowProps) string {
	marker := "  "
	if props.Selected {
		marker = "> "
	}

	id := fmt.Sprintf("#%-3d", props.Todo.ID)

	// marker + id + badge + separating spaces
	reserved := len(marker) + len(id) + badgeWidth + 3
	title := truncate(props.Todo.Title, props.Width-reserved)

	row := fmt.Sprintf("%s%s %s  %s", marker, id, StatusBadge(props.Todo.Status), title)
	if props.Selected {
		return SelectedRowStyle.Render(row)
	}
	return RowStyle.Render(row)
}

// truncate shortens s to at most width runes, appending an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}
