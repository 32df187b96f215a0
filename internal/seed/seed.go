// Package seed loads todo fixtures from YAML files and applies them
// through the todo service so seeded data passes the same validation
// as interactive input.
package seed

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/eliduarte/lista/internal/models"
	todoservice "github.com/eliduarte/lista/internal/services/todo"
)

// Entry is a single todo in a seed file. Status is optional and
// defaults to pending.
type Entry struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Status      string `yaml:"status"`
}

// File is the root document of a seed file.
type File struct {
	Todos []Entry `yaml:"todos"`
}

// Load reads and parses a seed file from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes seed YAML and validates every entry. Errors name the
// offending entry by index so large fixtures stay debuggable.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}

	for i, entry := range f.Todos {
		if strings.TrimSpace(entry.Title) == "" {
			return nil, fmt.Errorf("todos[%d].title: cannot be empty", i)
		}
		if entry.Status != "" {
			if _, err := models.ParseStatus(entry.Status); err != nil {
				return nil, fmt.Errorf("todos[%d].status: %w", i, err)
			}
		}
	}

	return &f, nil
}

// Apply creates every entry through the service in file order, then
// moves entries with a non-pending status. Returns the ids assigned.
func (f *File) Apply(svc todoservice.Service) ([]int, error) {
	ids := make([]int, 0, len(f.Todos))

	for i, entry := range f.Todos {
		todo, err := svc.CreateTodo(entry.Title, entry.Description)
		if err != nil {
			return ids, fmt.Errorf("todos[%d]: %w", i, err)
		}
		ids = append(ids, todo.ID)

		if entry.Status == "" {
			continue
		}
		status, err := models.ParseStatus(entry.Status)
		if err != nil {
			return ids, fmt.Errorf("todos[%d]: %w", i, err)
		}
		if status == models.StatusPending {
			continue
		}
		if _, err := svc.UpdateTodoStatus(todo.ID, status); err != nil {
			return ids, fmt.Errorf("todos[%d]: %w", i, err)
		}
	}

	return ids, nil
}
