package state

import "github.com/eliduarte/lista/internal/models"

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode        Mode = iota // Default list navigation mode
	AddFormMode                   // Creating a new todo
	EditFormMode                  // Editing the selected todo
	DeleteConfirmMode             // Confirming todo deletion
	SearchMode                    // Live search (/)
	DetailMode                    // Full todo detail with rendered description
	HelpMode                      // Displaying help screen
)

// Tab is one of the status filter tabs above the list.
// TabAll shows every todo; the others show a single status.
type Tab int

const (
	TabAll Tab = iota
	TabPending
	TabInProgress
	TabCompleted
)

// tabCount is the number of filter tabs, used for cycling.
const tabCount = 4

// Title returns the tab label shown in the tab bar.
func (t Tab) Title() string {
	switch t {
	case TabAll:
		return "All"
	case TabPending:
		return "Pending"
	case TabInProgress:
		return "In Progress"
	case TabCompleted:
		return "Completed"
	}
	return "Unknown"
}

// Status returns the status a tab filters on.
// The second return value is false for TabAll, which shows everything.
func (t Tab) Status() (models.Status, bool) {
	switch t {
	case TabPending:
		return models.StatusPending, true
	case TabInProgress:
		return models.StatusInProgress, true
	case TabCompleted:
		return models.StatusCompleted, true
	}
	return models.StatusPending, false
}

// Tabs returns all filter tabs in display order.
func Tabs() []Tab {
	return []Tab{TabAll, TabPending, TabInProgress, TabCompleted}
}

// UIState manages the user interface state.
// This includes list selection, scrolling, terminal dimensions,
// the active filter tab, and the current interaction mode.
type UIState struct {
	// selected is the index of the selected row within the visible list
	selected int

	// scrollOffset is the index of the first visible row
	scrollOffset int

	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode

	// tab is the active status filter tab
	tab Tab
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		selected:     0,
		scrollOffset: 0,
		width:        0,
		height:       0,
		mode:         NormalMode,
		tab:          TabAll,
	}
}

// Selected returns the index of the currently selected row.
func (s *UIState) Selected() int {
	return s.selected
}

// SetSelected updates the selected row index.
func (s *UIState) SetSelected(index int) {
	s.selected = index
}

// ScrollOffset returns the index of the first visible row.
func (s *UIState) ScrollOffset() int {
	return s.scrollOffset
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// Tab returns the active filter tab.
func (s *UIState) Tab() Tab {
	return s.tab
}

// SetTab switches the active filter tab and resets the selection.
func (s *UIState) SetTab(tab Tab) {
	s.tab = tab
	s.ResetSelection()
}

// NextTab cycles to the next filter tab, wrapping at the end.
func (s *UIState) NextTab() {
	s.SetTab(Tab((int(s.tab) + 1) % tabCount))
}

// PrevTab cycles to the previous filter tab, wrapping at the start.
func (s *UIState) PrevTab() {
	s.SetTab(Tab((int(s.tab) + tabCount - 1) % tabCount))
}

// VisibleRows returns how many list rows fit in the terminal.
// This is terminal height minus the chrome around the list
// (tab bar, counts line, scroll indicators, search line, status bar),
// with a minimum of 1.
func (s *UIState) VisibleRows() int {
	const chromeHeight = 12
	return max(s.height-chromeHeight, 1)
}

// EnsureRowVisible adjusts the scroll offset so the selected row is on screen.
// This should be called after selection changes.
func (s *UIState) EnsureRowVisible(visibleCount int) {
	// If selection is above visible area, scroll up
	if s.selected < s.scrollOffset {
		s.scrollOffset = s.selected
	}

	// If selection is below visible area, scroll down
	if s.selected >= s.scrollOffset+visibleCount {
		s.scrollOffset = s.selected - visibleCount + 1
	}
}

// ClampSelection keeps the selection within a list of the given length.
// This should be called after the visible list shrinks (delete, filter, search).
func (s *UIState) ClampSelection(count int) {
	if count == 0 {
		s.selected = 0
		s.scrollOffset = 0
		return
	}
	if s.selected >= count {
		s.selected = count - 1
	}
	if s.scrollOffset > s.selected {
		s.scrollOffset = s.selected
	}
}

// ResetSelection moves the selection and scroll back to the top.
func (s *UIState) ResetSelection() {
	s.selected = 0
	s.scrollOffset = 0
}
