// file: services/browse_test.go
package services

import (
	"testing"

	"InnoHub/dto"
)

func TestBuildConditions(t *testing.T) {
	t.Parallel()

	base := dto.DefaultListState()

	t.Run("no filters", func(t *testing.T) {
		t.Parallel()
		if got := BuildConditions(base); len(got) != 0 {
			t.Fatalf("expected no conditions for the default state, got %v", got)
		}
	})

	t.Run("search is case-insensitive across three columns", func(t *testing.T) {
		t.Parallel()
		state := base
		state.Search = "  Solar "
		conds := BuildConditions(state)
		if len(conds) != 1 {
			t.Fatalf("expected 1 condition, got %d", len(conds))
		}
		if conds[0].Query != "(LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(category) LIKE ?)" {
			t.Errorf("unexpected search clause %q", conds[0].Query)
		}
		if len(conds[0].Args) != 3 {
			t.Fatalf("expected 3 args, got %d", len(conds[0].Args))
		}
		for _, arg := range conds[0].Args {
			if arg != "%solar%" {
				t.Errorf("search arg = %v, want %%solar%%", arg)
			}
		}
	})

	t.Run("status and category filters are exact and conjunctive", func(t *testing.T) {
		t.Parallel()
		state := base
		state.Search = "water"
		state.Status = "active"
		state.Category = "energy"
		conds := BuildConditions(state)
		if len(conds) != 3 {
			t.Fatalf("expected 3 conjunctive conditions, got %d", len(conds))
		}
		if conds[1].Query != "status = ?" || conds[1].Args[0] != "active" {
			t.Errorf("unexpected status condition %v", conds[1])
		}
		if conds[2].Query != "category = ?" || conds[2].Args[0] != "energy" {
			t.Errorf("unexpected category condition %v", conds[2])
		}
	})

	t.Run("all never filters", func(t *testing.T) {
		t.Parallel()
		state := base
		state.Status = "all"
		state.Category = "all"
		if got := BuildConditions(state); len(got) != 0 {
			t.Fatalf("'all' must not produce conditions, got %v", got)
		}
	})
}

func TestOrderClause(t *testing.T) {
	t.Parallel()

	tests := []struct {
		field string
		dir   string
		want  string
	}{
		{"title", "asc", "title ASC"},
		{"title", "desc", "title DESC"},
		{"deadline", "asc", "deadline ASC"},
		{"submission_count", "desc", "submission_count DESC"},
		{"created_at; DROP TABLE innohub_challenge", "asc", "created_at ASC"},
		{"", "desc", "created_at DESC"},
	}
	for _, tt := range tests {
		state := dto.ListState{SortField: tt.field, SortDir: tt.dir}
		if got := OrderClause(state); got != tt.want {
			t.Errorf("OrderClause(%q, %q) = %q, want %q", tt.field, tt.dir, got, tt.want)
		}
	}
}
