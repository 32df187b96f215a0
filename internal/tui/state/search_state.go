package state

// SearchState manages the vim-style live search.
// The query filters the visible list as it is typed; Activate pins the
// filter when the user confirms with Enter.
type SearchState struct {
	query  string
	active bool
}

// NewSearchState creates a new SearchState with default values.
func NewSearchState() *SearchState {
	return &SearchState{}
}

// Query returns the current search text.
func (s *SearchState) Query() string {
	return s.query
}

// Active reports whether a confirmed filter is applied.
func (s *SearchState) Active() bool {
	return s.active
}

// AppendChar appends a character to the search query.
// Returns false when the query is already at max length.
func (s *SearchState) AppendChar(c rune) bool {
	const maxQueryLength = 100

	if len(s.query) >= maxQueryLength {
		return false
	}

	s.query += string(c)
	return true
}

// Backspace removes the last character from the search query.
// Returns false when the query was already empty.
func (s *SearchState) Backspace() bool {
	if len(s.query) == 0 {
		return false
	}

	s.query = s.query[:len(s.query)-1]
	return true
}

// Clear resets the search query.
func (s *SearchState) Clear() {
	s.query = ""
}

// Activate pins the filter. Called when the user presses Enter in search mode.
func (s *SearchState) Activate() {
	s.active = true
}

// Deactivate drops the filter. Called when the user presses ESC in search mode.
func (s *SearchState) Deactivate() {
	s.active = false
}
