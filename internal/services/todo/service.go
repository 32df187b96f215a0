package todo

import (
	"strings"
	"time"

	"github.com/eliduarte/lista/internal/models"
	"github.com/eliduarte/lista/internal/store"
)

// Service defines all todo-related business operations.
// Every operation is a single synchronous step over the session store;
// nothing blocks, retries, or partially fails. The service is not safe
// for concurrent use without external locking.
type Service interface {
	// Read operations
	GetTodoByID(id int) (*models.Todo, error)
	GetAllTodos() []*models.Todo
	GetTodosByStatus(status models.Status) []*models.Todo
	GetPendingTodos() []*models.Todo
	GetInProgressTodos() []*models.Todo
	GetCompletedTodos() []*models.Todo
	SearchTodos(query string) []*models.Todo
	GetTodoCount() int

	// Write operations
	CreateTodo(title, description string) (*models.Todo, error)
	UpdateTodo(req UpdateTodoRequest) (*models.Todo, error)
	UpdateTodoStatus(id int, status models.Status) (*models.Todo, error)
	DeleteTodo(id int) bool
}

// UpdateTodoRequest encapsulates all data needed to update a todo's text fields.
// Fields with pointers are optional - nil means don't update.
type UpdateTodoRequest struct {
	TodoID      int
	Title       *string
	Description *string
}

// service implements Service interface
type service struct {
	store *store.Store
}

// NewService creates a new todo service backed by the given store.
// The service takes exclusive ownership: callers must route every
// mutation through it and treat returned todos as read views.
func NewService(st *store.Store) Service {
	return &service{store: st}
}

// CreateTodo handles todo creation with validation.
// New todos always start in the pending status.
func (s *service) CreateTodo(title, description string) (*models.Todo, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}

	now := time.Now()
	todo := &models.Todo{
		Title:       title,
		Description: description,
		Status:      models.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return s.store.Insert(todo), nil
}

// GetTodoByID retrieves a single todo by id.
func (s *service) GetTodoByID(id int) (*models.Todo, error) {
	if id <= 0 {
		return nil, ErrInvalidTodoID
	}

	todo, ok := s.store.Get(id)
	if !ok {
		return nil, ErrTodoNotFound
	}
	return todo, nil
}

// UpdateTodoStatus sets the status field of a stored todo in place.
// Any status may move to any other status; this is a plain field set,
// not a guarded state machine, so reopening a completed todo is allowed.
func (s *service) UpdateTodoStatus(id int, status models.Status) (*models.Todo, error) {
	if id <= 0 {
		return nil, ErrInvalidTodoID
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	todo, ok := s.store.Get(id)
	if !ok {
		return nil, ErrTodoNotFound
	}

	todo.Status = status
	todo.UpdatedAt = time.Now()
	return todo, nil
}

// UpdateTodo handles title and description updates with validation.
// Nil request fields leave the stored value untouched.
func (s *service) UpdateTodo(req UpdateTodoRequest) (*models.Todo, error) {
	if req.TodoID <= 0 {
		return nil, ErrInvalidTodoID
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return nil, ErrEmptyTitle
	}

	todo, ok := s.store.Get(req.TodoID)
	if !ok {
		return nil, ErrTodoNotFound
	}

	if req.Title != nil {
		todo.Title = *req.Title
	}
	if req.Description != nil {
		todo.Description = *req.Description
	}
	if req.Title != nil || req.Description != nil {
		todo.UpdatedAt = time.Now()
	}
	return todo, nil
}

// GetAllTodos returns every todo in creation order.
func (s *service) GetAllTodos() []*models.Todo {
	return s.store.All()
}

// GetTodosByStatus filters the session by status, preserving creation order.
func (s *service) GetTodosByStatus(status models.Status) []*models.Todo {
	var matched []*models.Todo
	for _, todo := range s.store.All() {
		if todo.Status == status {
			matched = append(matched, todo)
		}
	}
	return matched
}

// GetPendingTodos returns all pending todos in creation order.
func (s *service) GetPendingTodos() []*models.Todo {
	return s.GetTodosByStatus(models.StatusPending)
}

// GetInProgressTodos returns all in-progress todos in creation order.
func (s *service) GetInProgressTodos() []*models.Todo {
	return s.GetTodosByStatus(models.StatusInProgress)
}

// GetCompletedTodos returns all completed todos in creation order.
func (s *service) GetCompletedTodos() []*models.Todo {
	return s.GetTodosByStatus(models.StatusCompleted)
}

// SearchTodos returns todos whose title or description contains the query,
// case-insensitively, in creation order. An empty or all-whitespace query
// matches every todo: the live search box clears back to the full list.
func (s *service) SearchTodos(query string) []*models.Todo {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return s.store.All()
	}

	var matched []*models.Todo
	for _, todo := range s.store.All() {
		if strings.Contains(strings.ToLower(todo.Title), needle) ||
			strings.Contains(strings.ToLower(todo.Description), needle) {
			matched = append(matched, todo)
		}
	}
	return matched
}

// DeleteTodo removes a todo and reports whether a removal occurred.
// The freed id is never reassigned. Absence is part of the normal result
// here, so it is a boolean rather than an error.
func (s *service) DeleteTodo(id int) bool {
	if id <= 0 {
		return false
	}
	return s.store.Delete(id)
}

// GetTodoCount returns the number of currently stored todos.
func (s *service) GetTodoCount() int {
	return s.store.Len()
}
