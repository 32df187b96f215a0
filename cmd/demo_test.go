package cmd

import (
	"strings"
	"testing"

	"github.com/eliduarte/lista/internal/testutil"
)

// ============================================================================
// TEST CASES - HUMAN OUTPUT
// ============================================================================

func TestDemoHumanOutput(t *testing.T) {
	output, err := testutil.ExecuteCommand(t, demoCmd())
	if err != nil {
		t.Fatalf("demo failed: %v", err)
	}

	wantLines := []string{
		"✓ Todo 'Shopping' created (ID: 1)",
		"✓ Todo 'Work' created (ID: 2)",
		"✓ Todo 'Errands' created (ID: 3)",
		"✓ Todo #2 is now In Progress",
		"✓ Todo #3 is now Completed",
		"✓ Todo #1 retitled to 'Weekly shopping'",
		"Found 3 todos:",
		"[1] Weekly shopping (Pending)",
		"[2] Work (In Progress)",
		"[3] Errands (Completed)",
		"3 todos | 1 pending | 1 in progress | 1 completed",
		"Search 'groceries' matched 1 todo(s):",
		"[1] Weekly shopping",
		"✓ Todo #3 deleted (2 remain)",
	}
	for _, want := range wantLines {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, output)
		}
	}
}

// ============================================================================
// TEST CASES - JSON OUTPUT
// ============================================================================

func TestDemoJSONOutput(t *testing.T) {
	output, err := testutil.ExecuteCommand(t, demoCmd(), "--json")
	if err != nil {
		t.Fatalf("demo --json failed: %v", err)
	}

	result := testutil.ParseJSON(t, output)

	if result["success"] != true {
		t.Error("Expected success to be true")
	}

	todos, ok := result["todos"].([]interface{})
	if !ok || len(todos) != 3 {
		t.Fatalf("Expected 3 todos in JSON output, got %v", result["todos"])
	}
	first := todos[0].(map[string]interface{})
	if first["title"] != "Weekly shopping" {
		t.Errorf("Expected first todo title 'Weekly shopping', got %v", first["title"])
	}
	if first["status"] != "pending" {
		t.Errorf("Expected first todo status 'pending', got %v", first["status"])
	}
	if first["description"] != "Buy groceries" {
		t.Errorf("Expected description to survive the retitle, got %v", first["description"])
	}
	second := todos[1].(map[string]interface{})
	if second["status"] != "in_progress" {
		t.Errorf("Expected second todo status 'in_progress', got %v", second["status"])
	}

	counts := result["counts"].(map[string]interface{})
	if counts["total"].(float64) != 3 {
		t.Errorf("Expected total 3, got %v", counts["total"])
	}
	if counts["pending"].(float64) != 1 {
		t.Errorf("Expected 1 pending, got %v", counts["pending"])
	}
	if counts["in_progress"].(float64) != 1 {
		t.Errorf("Expected 1 in progress, got %v", counts["in_progress"])
	}
	if counts["completed"].(float64) != 1 {
		t.Errorf("Expected 1 completed, got %v", counts["completed"])
	}

	search := result["search"].(map[string]interface{})
	if search["query"] != "groceries" {
		t.Errorf("Expected search query 'groceries', got %v", search["query"])
	}
	matches := search["matches"].([]interface{})
	if len(matches) != 1 {
		t.Fatalf("Expected 1 search match, got %d", len(matches))
	}
	match := matches[0].(map[string]interface{})
	if match["id"].(float64) != 1 {
		t.Errorf("Expected match id 1, got %v", match["id"])
	}

	if result["deleted_id"].(float64) != 3 {
		t.Errorf("Expected deleted_id 3, got %v", result["deleted_id"])
	}
	if result["remaining"].(float64) != 2 {
		t.Errorf("Expected 2 remaining, got %v", result["remaining"])
	}
}

func TestDemoJSONSuppressesWalkthroughLines(t *testing.T) {
	output, err := testutil.ExecuteCommand(t, demoCmd(), "--json")
	if err != nil {
		t.Fatalf("demo --json failed: %v", err)
	}

	if strings.Contains(output, "✓") {
		t.Errorf("JSON mode should print a single document, got:\n%s", output)
	}
}
