package forms

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/eliduarte/lista/internal/tui/theme"
)

// TextInput is a single-line text input field
type TextInput struct {
	key         string
	title       string
	placeholder string
	value       *string
	input       textinput.Model
}

// NewTextInput creates a new text input field bound to value
func NewTextInput(key, title, placeholder string, value *string) *TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if value != nil && *value != "" {
		ti.SetValue(*value)
	}

	return &TextInput{
		key:         key,
		title:       title,
		placeholder: placeholder,
		value:       value,
		input:       ti,
	}
}

// Update handles messages
func (t *TextInput) Update(msg tea.Msg) (Field, tea.Cmd) {
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)

	// Update the value pointer
	if t.value != nil {
		*t.value = t.input.Value()
	}

	return t, cmd
}

// View renders the text input
func (t *TextInput) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Highlight))
	return titleStyle.Render(t.title) + "\n" + t.input.View()
}

// Focus focuses the text input
func (t *TextInput) Focus() tea.Cmd {
	return t.input.Focus()
}

// Blur removes focus
func (t *TextInput) Blur() {
	t.input.Blur()
}

// Focused returns whether the input is focused
func (t *TextInput) Focused() bool {
	return t.input.Focused()
}

// Key returns the field key
func (t *TextInput) Key() string {
	return t.key
}

// Value returns the current value
func (t *TextInput) Value() string {
	return t.input.Value()
}
