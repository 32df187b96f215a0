// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/eliduarte/lista/internal/config/colors"
	"github.com/eliduarte/lista/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// compared to the defaults, these feel like
	// they take up less space
	activeTabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      " ",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┘",
		BottomRight: "└",
	}

	tabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      "─",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┴",
		BottomRight: "┴",
	}

	// TabStyle defines inactive tabs
	TabStyle lipgloss.Style

	// ActiveTabStyle defines the selected tab
	ActiveTabStyle lipgloss.Style

	// TabGapStyle fills the remaining space after tabs
	TabGapStyle lipgloss.Style

	// TitleStyle defines the appearance of titles (detail header, form header)
	TitleStyle lipgloss.Style

	// SubtleStyle defines dim text (counts, footer hints, timestamps)
	SubtleStyle lipgloss.Style

	// RowStyle defines an unselected list row
	RowStyle lipgloss.Style

	// SelectedRowStyle defines the selected list row
	SelectedRowStyle lipgloss.Style

	// AddFormBoxStyle defines the base style for the add form (green border)
	AddFormBoxStyle lipgloss.Style

	// EditFormBoxStyle defines the base style for the edit form (blue border)
	EditFormBoxStyle lipgloss.Style

	// DeleteConfirmBoxStyle defines the base style for deletion confirmations (red border)
	DeleteConfirmBoxStyle lipgloss.Style

	// DetailBoxStyle defines the base style for the detail view (accent border)
	DetailBoxStyle lipgloss.Style

	// HelpBoxStyle defines the base style for the help screen (blue border)
	HelpBoxStyle lipgloss.Style

	// SearchPromptStyle defines the live search line and the pinned filter chip
	SearchPromptStyle lipgloss.Style

	// ErrorTextStyle defines inline save errors in forms
	ErrorTextStyle lipgloss.Style

	// IndicatorStyle defines the appearance of scroll indicators
	IndicatorStyle lipgloss.Style

	// PendingBadgeStyle colors the pending status badge
	PendingBadgeStyle lipgloss.Style

	// InProgressBadgeStyle colors the in progress status badge
	InProgressBadgeStyle lipgloss.Style

	// CompletedBadgeStyle colors the completed status badge
	CompletedBadgeStyle lipgloss.Style
)

// InitStyles initializes all styles with the given color scheme
func InitStyles(scheme colors.ColorScheme) {
	// Initialize theme colors
	theme.Init(scheme)

	// Tab styles
	TabStyle = lipgloss.NewStyle().
		Border(tabBorder, true).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Padding(0, 1)

	ActiveTabStyle = TabStyle.Border(activeTabBorder, true)

	TabGapStyle = TabStyle.
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))

	RowStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Normal))

	SelectedRowStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.SelectedBorder)).
		Background(lipgloss.Color(theme.SelectedBg))

	// Dialog box styles
	AddFormBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Create)).
		Padding(1, 2)

	EditFormBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Edit)).
		Padding(1, 2)

	DeleteConfirmBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Delete)).
		Padding(1)

	DetailBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Padding(1, 2)

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Edit)).
		Padding(1, 2)

	SearchPromptStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Highlight)).
		Bold(true)

	ErrorTextStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Delete)).
		Bold(true)

	IndicatorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Align(lipgloss.Center)

	// Status badges
	PendingBadgeStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Pending)).
		Bold(true)

	InProgressBadgeStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.InProgress)).
		Bold(true)

	CompletedBadgeStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Completed)).
		Bold(true)
}
