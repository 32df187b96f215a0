package state

import "github.com/eliduarte/lista/internal/tui/forms"

// FormState holds the draft values bound to the add/edit form fields.
// The form writes into Title and Description through value pointers.
type FormState struct {
	// Title is the draft title bound to the title input
	Title string

	// Description is the draft description bound to the textarea
	Description string

	// EditingTodoID is the id being edited, or 0 when creating
	EditingTodoID int

	// SaveError is the last save failure, shown inside the form box
	SaveError string

	// Form is the live field collection, nil outside form modes
	Form *forms.Form
}

// NewFormState creates an empty FormState.
func NewFormState() *FormState {
	return &FormState{}
}

// Clear resets all draft values and drops the form.
func (s *FormState) Clear() {
	s.Title = ""
	s.Description = ""
	s.EditingTodoID = 0
	s.SaveError = ""
	s.Form = nil
}
