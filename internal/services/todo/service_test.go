package todo

import (
	"errors"
	"fmt"
	"testing"

	"github.com/eliduarte/lista/internal/models"
	"github.com/eliduarte/lista/internal/store"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// setupService creates a service over a fresh session store.
func setupService(t *testing.T) Service {
	t.Helper()
	return NewService(store.New())
}

// createTestTodo creates a todo and fails the test on error.
func createTestTodo(t *testing.T, svc Service, title, description string) *models.Todo {
	t.Helper()
	todo, err := svc.CreateTodo(title, description)
	if err != nil {
		t.Fatalf("Failed to create test todo: %v", err)
	}
	return todo
}

// ============================================================================
// TEST CASES - CREATE
// ============================================================================

func TestCreateTodo(t *testing.T) {
	t.Parallel()

	svc := setupService(t)

	result, err := svc.CreateTodo("Test todo", "This is a test description")

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result == nil {
		t.Fatal("Expected todo result, got nil")
	}
	if result.ID != 1 {
		t.Errorf("Expected first id to be 1, got %d", result.ID)
	}
	if result.Title != "Test todo" {
		t.Errorf("Expected title 'Test todo', got '%s'", result.Title)
	}
	if result.Description != "This is a test description" {
		t.Errorf("Expected description 'This is a test description', got '%s'", result.Description)
	}
	if result.Status != models.StatusPending {
		t.Errorf("Expected new todo to be pending, got %s", result.Status)
	}
	if result.CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be set")
	}
}

func TestCreateTodo_EmptyTitle(t *testing.T) {
	t.Parallel()

	svc := setupService(t)

	_, err := svc.CreateTodo("", "description without a title")

	if err == nil {
		t.Fatal("Expected validation error for empty title")
	}
	if !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("Expected ErrEmptyTitle, got %v", err)
	}
}

func TestCreateTodo_WhitespaceTitle(t *testing.T) {
	t.Parallel()

	svc := setupService(t)

	_, err := svc.CreateTodo("   \t  ", "")

	if !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("Expected ErrEmptyTitle for whitespace title, got %v", err)
	}
}

func TestCreateTodo_EmptyDescriptionAllowed(t *testing.T) {
	t.Parallel()

	svc := setupService(t)

	todo, err := svc.CreateTodo("Just a title", "")
	if err != nil {
		t.Fatalf("Expected no error for empty description, got %v", err)
	}
	if todo.Description != "" {
		t.Errorf("Expected empty description, got '%s'", todo.Description)
	}
}

func TestCreateTodo_StrictlyIncreasingIDs(t *testing.T) {
	t.Parallel()

	svc := setupService(t)

	const n = 10
	seen := make(map[int]bool)
	prev := 0
	for i := 1; i <= n; i++ {
		todo := createTestTodo(t, svc, fmt.Sprintf("Todo %d", i), "")
		if todo.ID != i {
			t.Errorf("Creation %d: expected id %d, got %d", i, i, todo.ID)
		}
		if seen[todo.ID] {
			t.Errorf("Duplicate id %d assigned", todo.ID)
		}
		if todo.ID <= prev {
			t.Errorf("Ids not strictly increasing: %d after %d", todo.ID, prev)
		}
		seen[todo.ID] = true
		prev = todo.ID
	}
}

func TestCreateTodo_IDNeverReusedAfterDelete(t *testing.T) {
	t.Parallel()

	svc := setupService(t)

	first := createTestTodo(t, svc, "First", "")
	if !svc.DeleteTodo(first.ID) {
		t.Fatal("Expected delete to succeed")
	}

	second := createTestTodo(t, svc, "Second", "")
	if second.ID == first.ID {
		t.Errorf("Id %d was reused after deletion", first.ID)
	}
	if second.ID != 2 {
		t.Errorf("Expected id 2, got %d", second.ID)
	}
}

// ============================================================================
// TEST CASES - GET BY ID
// ============================================================================

func TestGetTodoByID(t *testing.T) {
	t.Parallel()

	svc := setupService(t)
	created := createTestTodo(t, svc, "Find me", "somewhere")

	got, err := svc.GetTodoByID(created.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got.ID != created.ID || got.Title != "Find me" {
		t.Errorf("Expected the created todo back, got %+v", got)
	}
}

func TestGetTodoByID_NotFound(t *testing.T) {
	t.Parallel()

	svc := setupService(t)
	createTestTodo(t, svc, "Exists", "")

	_, err := svc.GetTodoByID(42)
	if !errors.Is(err, ErrTodoNotFound) {
		t.Errorf("Expected ErrTodoNotFound, got %v", err)
	}
}

func TestGetTodoByID_InvalidID(t *testing.T) {
	t.Parallel()

	svc := setupService(t)

	for _, id := range []int{0, -1, -99} {
		_, err := svc.GetTodoByID(id)
		if !errors.Is(err, ErrInvalidTodoID) {
			t.Errorf("GetTodoByID(%d): expected ErrInvalidTodoID, got %v", id, err)
		}
	}
}

// ============================================================================
// TEST CASES - STATUS UPDATES
// ============================================================================

func TestUpdateTodoStatus(t *testing.T) {
	t.Parallel()

	svc := setupService(t)
	created := createTestTodo(t, svc, "Status test", "Testing status updates")

	updated, err := svc.UpdateTodoStatus(created.ID, models.StatusInProgress)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if updated.Status != models.StatusInProgress {
		t.Errorf("Expected in_progress, got %s", updated.Status)
	}

	// The mutation happens in place: a fresh lookup sees the new status.
	got, err := svc.GetTodoByID(created.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got.Status != models.StatusInProgress {
		t.Errorf("Expected stored status in_progress, got %s", got.Status)
	}
}

func TestUpdateTodoStatus_AllValues(t *testing.T) {
	t.Parallel()

	svc := setupService(t)
	created := createTestTodo(t, svc, "Every status", "")

	for _, status := range models.Statuses() {
		if _, err := svc.UpdateTodoStatus(created.ID, status); err != nil {
			t.Fatalf("UpdateTodoStatus(%s) failed: %v", status, err)
		}
		got, err := svc.GetTodoByID(created.ID)
		if err != nil {
			t.Fatalf("GetTodoByID failed: %v", err)
		}
		if got.Status != status {
			t.Errorf("Expected status %s, got %s", status, got.Status)
		}
	}
}

func TestUpdateTodoStatus_UnrestrictedTransitions(t *testing.T) {
	t.Parallel()

	svc := setupService(t)
	created := createTestTodo(t, svc, "Reopen me", "")

	// Transitions are a plain field set: completed may go straight back
	// to pending.
	if _, err := svc.UpdateTodoStatus(created.ID, models.StatusCompleted); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	updated, err := svc.UpdateTodoStatus(created.ID, models.StatusPending)
	if err != nil {
		t.Fatalf("Expected completed -> pending to be allowed, got %v", err)
	}
	if updated.Status != models.StatusPending {
		t.Errorf("Expected pending after reopen, got %s", updated.Status)
	}
}

func TestUpdateTodoStatus_NotFound(t *testing.T) {
	t.Parallel()

	svc := setupService(t)

	_, err := svc.UpdateTodoStatus(7, models.StatusCompleted)
	if !errors.Is(err, ErrTodoNotFound) {
		t.Errorf("Expected ErrTodoNotFound, got %v", err)
	}
}

func TestUpdateTodoStatus_InvalidStatus(t *testing.T) {
	t.Parallel()

	svc := setupService(t)
	created := createTestTodo(t, svc, "Bad status", "")

	_, err := svc.UpdateTodoStatus(created.ID, models.Status(99))
	if !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("Expected ErrInvalidStatus, got %v", err)
	}

	// The stored todo is untouched by the rejected update.
	got, _ := svc.GetTodoByID(created.ID)
	if got.Status != models.StatusPending {
		t.Errorf("Expected status to remain pending, got %s", got.Status)
	}
}

// ============================================================================
// TEST CASES - FIELD UPDATES
// ============================================================================

func TestUpdateTodo(t *testing.T) {
	t.Parallel()

	svc := setupService(t)
	created := createTestTodo(t, svc, "Old title", "Old description")

	newTitle := "New title"
	newDescription := "New description"
	updated, err := svc.UpdateTodo(UpdateTodoRequest{
		TodoID:      created.ID,
		Title:       &newTitle,
		Description: &newDescription,
	})

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if updated.Title != "New title" {
		t.Errorf("Expected title 'New title', got '%s'", updated.Title)
	}
	if updated.Description != "New description" {
		t.Errorf("Expected description 'New description', got '%s'", updated.Description)
	}
}

func TestUpdateTodo_NilFieldsUntouched(t *testing.T) {
	t.Parallel()

	svc := setupService(t)
	created := createTestTodo(t, svc, "Keep title", "Replace description")

	newDescription := "Replaced"
	updated, err := svc.UpdateTodo(UpdateTodoRequest{
		TodoID:      created.ID,
		Description: &newDescription,
	})

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if updated.Title != "Keep title" {
		t.Errorf("Expected title unchanged, got '%s'", updated.Title)
	}
	if updated.Description != "Replaced" {
		t.Errorf("Expected description 'Replaced', got '%s'", updated.Description)
	}
}

func TestUpdateTodo_EmptyTitleRejected(t *testing.T) {
	t.Parallel()

	svc := setupService(t)
	created := createTestTodo(t, svc, "Valid", "")

	empty := "  "
	_, err := svc.UpdateTodo(UpdateTodoRequest{TodoID: created.ID, Title: &empty})
	if !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("Expected ErrEmptyTitle, got %v", err)
	}
}

func TestUpdateTodo_NotFound(t *testing.T) {
	t.Parallel()

	svc := setupService(t)

	title := "Ghost"
	_, err := svc.UpdateTodo(UpdateTodoRequest{TodoID: 12, Title: &title})
	if !errors.Is(err, ErrTodoNotFound) {
		t.Errorf("Expected ErrTodoNotFound, got %v", err)
	}
}

// ============================================================================
// TEST CASES - RETRIEVAL AND FILTERS
// ============================================================================

func TestGetAllTodos_CreationOrder(t *testing.T) {
	t.Parallel()

	svc := setupService(t)
	createTestTodo(t, svc, "Todo 1", "First todo")
	createTestTodo(t, svc, "Todo 2", "Second todo")
	createTestTodo(t, svc, "Todo 3", "Third todo")

	all := svc.GetAllTodos()
	if len(all) != 3 {
		t.Fatalf("Expected 3 todos, got %d", len(all))
	}
	for i, todo := range all {
		want := fmt.Sprintf("Todo %d", i+1)
		if todo.Title != want {
			t.Errorf("Position %d: expected '%s', got '%s'", i, want, todo.Title)
		}
	}
}

func TestStatusFilters(t *testing.T) {
	t.Parallel()

	svc := setupService(t)
	createTestTodo(t, svc, "Todo 1", "First todo")
	second := createTestTodo(t, svc, "Todo 2", "Second todo")

	pending := svc.GetPendingTodos()
	if len(pending) != 2 {
		t.Errorf("Expected 2 pending todos, got %d", len(pending))
	}

	if _, err := svc.UpdateTodoStatus(second.ID, models.StatusInProgress); err != nil {
		t.Fatalf("Failed to update status: %v", err)
	}

	if got := len(svc.GetInProgressTodos()); got != 1 {
		t.Errorf("Expected 1 in-progress todo, got %d", got)
	}
	if got := len(svc.GetCompletedTodos()); got != 0 {
		t.Errorf("Expected no completed todos, got %d", got)
	}
	if got := len(svc.GetPendingTodos()); got != 1 {
		t.Errorf("Expected 1 pending todo, got %d", got)
	}
}

func TestStatusFilters_PartitionInvariant(t *testing.T) {
	t.Parallel()

	svc := setupService(t)

	// Exercise a mixed sequence of operations and verify the partition
	// after every step: the three filters always split GetAllTodos.
	checkPartition := func(step string) {
		t.Helper()
		total := len(svc.GetAllTodos())
		parts := len(svc.GetPendingTodos()) + len(svc.GetInProgressTodos()) + len(svc.GetCompletedTodos())
		if total != parts {
			t.Errorf("%s: partition broken: %d todos but filters sum to %d", step, total, parts)
		}
	}

	checkPartition("empty service")

	for i := 1; i <= 6; i++ {
		createTestTodo(t, svc, fmt.Sprintf("Todo %d", i), "")
		checkPartition(fmt.Sprintf("after create %d", i))
	}

	svc.UpdateTodoStatus(2, models.StatusInProgress)
	checkPartition("after moving 2 to in_progress")
	svc.UpdateTodoStatus(3, models.StatusCompleted)
	checkPartition("after completing 3")
	svc.UpdateTodoStatus(3, models.StatusPending)
	checkPartition("after reopening 3")
	svc.DeleteTodo(4)
	checkPartition("after deleting 4")
	svc.DeleteTodo(2)
	checkPartition("after deleting 2")
}

func TestStatusFilters_PreserveCreationOrder(t *testing.T) {
	t.Parallel()

	svc := setupService(t)
	for i := 1; i <= 4; i++ {
		createTestTodo(t, svc, fmt.Sprintf("Todo %d", i), "")
	}
	svc.UpdateTodoStatus(1, models.StatusCompleted)
	svc.UpdateTodoStatus(3, models.StatusCompleted)

	completed := svc.GetCompletedTodos()
	if len(completed) != 2 {
		t.Fatalf("Expected 2 completed todos, got %d", len(completed))
	}
	if completed[0].ID != 1 || completed[1].ID != 3 {
		t.Errorf("Expected ids [1 3] in creation order, got [%d %d]", completed[0].ID, completed[1].ID)
	}
}

// ============================================================================
// TEST CASES - SEARCH
// ============================================================================

func TestSearchTodos_TitleMatch(t *testing.T) {
	t.Parallel()

	svc := setupService(t)
	createTestTodo(t, svc, "Shopping", "Buy groceries")
	createTestTodo(t, svc, "Work", "Finish report")

	results := svc.SearchTodos("Shopping")
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	if results[0].Title != "Shopping" {
		t.Errorf("Expected 'Shopping', got '%s'", results[0].Title)
	}
}

func TestSearchTodos_DescriptionMatch(t *testing.T) {
	t.Parallel()

	svc := setupService(t)
	createTestTodo(t, svc, "Shopping", "Buy groceries")
	createTestTodo(t, svc, "Work", "Finish report")

	results := svc.SearchTodos("groceries")
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	if results[0].Title != "Shopping" {
		t.Errorf("Expected 'Shopping', got '%s'", results[0].Title)
	}
}

func TestSearchTodos_CaseInsensitive(t *testing.T) {
	t.Parallel()

	svc := setupService(t)
	createTestTodo(t, svc, "Shopping", "Buy GROCERIES")

	for _, query := range []string{"GROCERIES", "groceries", "GrOcErIeS", "SHOPPING"} {
		results := svc.SearchTodos(query)
		if len(results) != 1 {
			t.Errorf("SearchTodos(%q): expected 1 result, got %d", query, len(results))
		}
	}
}

func TestSearchTodos_NoFalsePositivesOrNegatives(t *testing.T) {
	t.Parallel()

	svc := setupService(t)
	createTestTodo(t, svc, "Call plumber", "Kitchen sink leaks")
	createTestTodo(t, svc, "Call dentist", "Check-up appointment")
	createTestTodo(t, svc, "Water plants", "Also the kitchen herbs")

	results := svc.SearchTodos("kitchen")
	if len(results) != 2 {
		t.Fatalf("Expected 2 results for 'kitchen', got %d", len(results))
	}
	// Matches come back in creation order.
	if results[0].Title != "Call plumber" || results[1].Title != "Water plants" {
		t.Errorf("Expected [Call plumber, Water plants], got [%s, %s]", results[0].Title, results[1].Title)
	}

	if got := svc.SearchTodos("garage"); len(got) != 0 {
		t.Errorf("Expected no results for 'garage', got %d", len(got))
	}
}

func TestSearchTodos_EmptyQueryReturnsAll(t *testing.T) {
	t.Parallel()

	svc := setupService(t)
	createTestTodo(t, svc, "One", "")
	createTestTodo(t, svc, "Two", "")

	// Policy: an empty or all-whitespace query matches everything, so
	// clearing the search box restores the full list.
	if got := svc.SearchTodos(""); len(got) != 2 {
		t.Errorf("Expected empty query to return all todos, got %d", len(got))
	}
	if got := svc.SearchTodos("   "); len(got) != 2 {
		t.Errorf("Expected whitespace query to return all todos, got %d", len(got))
	}
}

// ============================================================================
// TEST CASES - DELETE
// ============================================================================

func TestDeleteTodo(t *testing.T) {
	t.Parallel()

	svc := setupService(t)
	created := createTestTodo(t, svc, "Delete me", "This will be deleted")

	if svc.GetTodoCount() != 1 {
		t.Fatalf("Expected count 1, got %d", svc.GetTodoCount())
	}

	if !svc.DeleteTodo(created.ID) {
		t.Error("Expected delete to report success")
	}
	if svc.GetTodoCount() != 0 {
		t.Errorf("Expected count 0 after delete, got %d", svc.GetTodoCount())
	}

	_, err := svc.GetTodoByID(created.ID)
	if !errors.Is(err, ErrTodoNotFound) {
		t.Errorf("Expected deleted id to be unresolvable, got %v", err)
	}
}

func TestDeleteTodo_Twice(t *testing.T) {
	t.Parallel()

	svc := setupService(t)
	createTestTodo(t, svc, "Keeper", "")
	victim := createTestTodo(t, svc, "Delete twice", "")

	if !svc.DeleteTodo(victim.ID) {
		t.Error("Expected first delete to succeed")
	}
	if svc.GetTodoCount() != 1 {
		t.Errorf("Expected count 1 after first delete, got %d", svc.GetTodoCount())
	}

	if svc.DeleteTodo(victim.ID) {
		t.Error("Expected second delete of same id to fail")
	}
	if svc.GetTodoCount() != 1 {
		t.Errorf("Expected count unchanged after second delete, got %d", svc.GetTodoCount())
	}
}

func TestDeleteTodo_InvalidID(t *testing.T) {
	t.Parallel()

	svc := setupService(t)

	if svc.DeleteTodo(0) {
		t.Error("Expected delete of id 0 to fail")
	}
	if svc.DeleteTodo(-5) {
		t.Error("Expected delete of negative id to fail")
	}
}

// ============================================================================
// TEST CASES - COUNT
// ============================================================================

func TestGetTodoCount_TracksCreationsAndDeletions(t *testing.T) {
	t.Parallel()

	svc := setupService(t)

	creations := 0
	deletions := 0
	check := func() {
		t.Helper()
		if got := svc.GetTodoCount(); got != creations-deletions {
			t.Errorf("Expected count %d (%d creations - %d deletions), got %d",
				creations-deletions, creations, deletions, got)
		}
	}

	check()
	for i := 1; i <= 5; i++ {
		createTestTodo(t, svc, fmt.Sprintf("Todo %d", i), "")
		creations++
		check()
	}

	for _, id := range []int{2, 4} {
		if svc.DeleteTodo(id) {
			deletions++
		}
		check()
	}

	// A failed delete must not move the count.
	if svc.DeleteTodo(2) {
		t.Error("Expected repeat delete to fail")
	}
	check()
}
