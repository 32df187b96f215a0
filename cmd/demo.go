package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eliduarte/lista/internal/models"
	todoservice "github.com/eliduarte/lista/internal/services/todo"
	"github.com/eliduarte/lista/internal/store"
)

// demoCmd returns the demo subcommand
func demoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a scripted walkthrough of a session",
		Long: `Run a scripted walkthrough against a throwaway in-memory session:
create todos, move them through statuses, edit, search, and delete.

Examples:
  # Human-readable walkthrough
  lista demo

  # JSON output for agents
  lista demo --json
`,
		RunE: runDemo,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runDemo(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	// say prints walkthrough lines in human mode only
	say := func(format string, a ...interface{}) {
		if !jsonOutput {
			fmt.Printf(format, a...)
		}
	}

	svc := todoservice.NewService(store.New())

	say("Walking through a lista session...\n\n")

	// Create todos
	shopping, err := svc.CreateTodo("Shopping", "Buy groceries")
	if err != nil {
		return fmt.Errorf("creating todo: %w", err)
	}
	say("✓ Todo '%s' created (ID: %d)\n", shopping.Title, shopping.ID)

	work, err := svc.CreateTodo("Work", "Finish report")
	if err != nil {
		return fmt.Errorf("creating todo: %w", err)
	}
	say("✓ Todo '%s' created (ID: %d)\n", work.Title, work.ID)

	errands, err := svc.CreateTodo("Errands", "Post office and bank")
	if err != nil {
		return fmt.Errorf("creating todo: %w", err)
	}
	say("✓ Todo '%s' created (ID: %d)\n", errands.Title, errands.ID)

	// Move todos through statuses
	if _, err := svc.UpdateTodoStatus(work.ID, models.StatusInProgress); err != nil {
		return fmt.Errorf("updating status: %w", err)
	}
	if _, err := svc.UpdateTodoStatus(errands.ID, models.StatusCompleted); err != nil {
		return fmt.Errorf("updating status: %w", err)
	}
	refreshed, err := svc.GetTodoByID(work.ID)
	if err != nil {
		return fmt.Errorf("fetching todo: %w", err)
	}
	say("✓ Todo #%d is now %s\n", refreshed.ID, refreshed.Status.Label())
	say("✓ Todo #%d is now %s\n", errands.ID, models.StatusCompleted.Label())

	// Edit the title, keeping the description
	newTitle := "Weekly shopping"
	if _, err := svc.UpdateTodo(todoservice.UpdateTodoRequest{
		TodoID: shopping.ID,
		Title:  &newTitle,
	}); err != nil {
		return fmt.Errorf("updating todo: %w", err)
	}
	say("✓ Todo #%d retitled to '%s'\n", shopping.ID, newTitle)

	// List everything with per-status counts
	todos := svc.GetAllTodos()
	say("\nFound %d todos:\n", len(todos))
	for _, t := range todos {
		say("  [%d] %s (%s)\n", t.ID, t.Title, t.Status.Label())
	}
	total := svc.GetTodoCount()
	pending := len(svc.GetPendingTodos())
	inProgress := len(svc.GetInProgressTodos())
	completed := len(svc.GetCompletedTodos())
	say("\n%d todos | %d pending | %d in progress | %d completed\n", total, pending, inProgress, completed)

	// Search matches titles and descriptions, case-insensitively
	const query = "groceries"
	matches := svc.SearchTodos(query)
	say("\nSearch '%s' matched %d todo(s):\n", query, len(matches))
	for _, t := range matches {
		say("  [%d] %s\n", t.ID, t.Title)
	}

	// Delete one and show what remains
	if !svc.DeleteTodo(errands.ID) {
		return fmt.Errorf("deleting todo %d: not found", errands.ID)
	}
	remaining := svc.GetTodoCount()
	say("\n✓ Todo #%d deleted (%d remain)\n", errands.ID, remaining)

	if !jsonOutput {
		return nil
	}

	todoMaps := make([]map[string]interface{}, 0, len(todos))
	for _, t := range todos {
		todoMaps = append(todoMaps, map[string]interface{}{
			"id":          t.ID,
			"title":       t.Title,
			"description": t.Description,
			"status":      t.Status,
			"created_at":  t.CreatedAt,
			"updated_at":  t.UpdatedAt,
		})
	}
	matchMaps := make([]map[string]interface{}, 0, len(matches))
	for _, t := range matches {
		matchMaps = append(matchMaps, map[string]interface{}{
			"id":    t.ID,
			"title": t.Title,
		})
	}

	return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
		"success": true,
		"todos":   todoMaps,
		"counts": map[string]interface{}{
			"total":       total,
			"pending":     pending,
			"in_progress": inProgress,
			"completed":   completed,
		},
		"search": map[string]interface{}{
			"query":   query,
			"matches": matchMaps,
		},
		"deleted_id": errands.ID,
		"remaining":  remaining,
	})
}
