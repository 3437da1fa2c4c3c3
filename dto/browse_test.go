// file: dto/browse_test.go
package dto

import "testing"

func TestListStateFilterChangesResetPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		transition func(*ListState)
		wantPage   int
	}{
		{"search change", func(s *ListState) { s.SetSearch("iot") }, 1},
		{"status change", func(s *ListState) { s.SetStatus("active") }, 1},
		{"category change", func(s *ListState) { s.SetCategory("energy") }, 1},
		{"same search keeps page", func(s *ListState) { s.SetSearch("") }, 4},
		{"same status keeps page", func(s *ListState) { s.SetStatus("all") }, 4},
		{"same category keeps page", func(s *ListState) { s.SetCategory("all") }, 4},
		{"sort keeps page", func(s *ListState) { s.SortBy("title") }, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			state := DefaultListState()
			state.SetPage(4)
			tt.transition(&state)
			if state.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", state.Page, tt.wantPage)
			}
		})
	}
}

func TestListStateSortBy(t *testing.T) {
	t.Parallel()

	state := DefaultListState()

	state.SortBy("title")
	if state.SortField != "title" || state.SortDir != "asc" {
		t.Fatalf("new field: got %s %s, want title asc", state.SortField, state.SortDir)
	}

	state.SortBy("title")
	if state.SortDir != "desc" {
		t.Fatalf("repeated field should toggle to desc, got %s", state.SortDir)
	}

	state.SortBy("title")
	if state.SortDir != "asc" {
		t.Fatalf("repeated field should toggle back to asc, got %s", state.SortDir)
	}

	state.SortBy("deadline")
	if state.SortField != "deadline" || state.SortDir != "asc" {
		t.Fatalf("switching field should reset to asc, got %s %s", state.SortField, state.SortDir)
	}

	state.SortBy("drop table")
	if state.SortField != "deadline" || state.SortDir != "asc" {
		t.Fatalf("unknown field must be ignored, got %s %s", state.SortField, state.SortDir)
	}
}

func TestListStateSetPage(t *testing.T) {
	t.Parallel()

	state := DefaultListState()
	state.SetPage(0)
	if state.Page != 1 {
		t.Errorf("SetPage(0) should clamp to 1, got %d", state.Page)
	}
	state.SetPage(-3)
	if state.Page != 1 {
		t.Errorf("SetPage(-3) should clamp to 1, got %d", state.Page)
	}
	state.SetPage(7)
	if state.Page != 7 {
		t.Errorf("SetPage(7) = %d", state.Page)
	}
}
