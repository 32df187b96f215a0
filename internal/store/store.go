// Package store holds the in-memory todo arena for one session.
//
// The arena is a growable id-to-todo mapping plus a monotonic counter.
// Ids start at 1, increase by one per insert, and are never handed out
// again: deleting a todo leaves a permanent hole in the id space. All
// data dies with the process; there is no persistence behind it.
package store

import "github.com/eliduarte/lista/internal/models"

// Store owns every todo for the lifetime of a session.
// It is not safe for concurrent use. The TUI event loop serializes all
// access on a single goroutine, which is the only supported caller model.
type Store struct {
	todos  map[int]*models.Todo
	order  []int // ids in creation order
	nextID int
}

// New creates an empty store. The first inserted todo receives id 1.
func New() *Store {
	return &Store{
		todos:  make(map[int]*models.Todo),
		nextID: 1,
	}
}

// Insert assigns the next id to the todo, records it, and returns it.
// The counter only ever moves forward, even when inserts are later
// undone by Delete.
func (s *Store) Insert(todo *models.Todo) *models.Todo {
	todo.ID = s.nextID
	s.nextID++

	s.todos[todo.ID] = todo
	s.order = append(s.order, todo.ID)
	return todo
}

// Get returns the todo with the given id and whether it exists.
func (s *Store) Get(id int) (*models.Todo, bool) {
	todo, ok := s.todos[id]
	return todo, ok
}

// Delete removes the todo with the given id and reports whether a
// removal happened. The freed id is not returned to the counter.
func (s *Store) Delete(id int) bool {
	if _, ok := s.todos[id]; !ok {
		return false
	}

	delete(s.todos, id)
	for i, stored := range s.order {
		if stored == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// All returns every stored todo in creation order.
func (s *Store) All() []*models.Todo {
	todos := make([]*models.Todo, 0, len(s.order))
	for _, id := range s.order {
		todos = append(todos, s.todos[id])
	}
	return todos
}

// Len returns the number of currently stored todos.
func (s *Store) Len() int {
	return len(s.todos)
}
