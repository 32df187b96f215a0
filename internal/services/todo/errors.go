package todo

import "errors"

// Todo-related errors
var (
	// Validation errors
	ErrEmptyTitle    = errors.New("todo title cannot be empty")
	ErrInvalidTodoID = errors.New("invalid todo ID")
	ErrInvalidStatus = errors.New("invalid todo status")

	// Business logic errors
	ErrTodoNotFound = errors.New("todo not found")
)
