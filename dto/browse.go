// file: dto/browse.go
package dto

// PageSize is the fixed card-grid page size of the challenge browser.
const PageSize = 12

// AllowedSortFields whitelists what the browser may sort by. Keys are the
// public field names; values are the backing columns.
var AllowedSortFields = map[string]string{
	"title":            "title",
	"category":         "category",
	"status":           "status",
	"deadline":         "deadline",
	"submission_count": "submission_count",
	"created_at":       "created_at",
}

// ListState is the challenge browser component state. One instance per
// viewer; every interaction is a transition on it, after which the list is
// recomputed from scratch.
type ListState struct {
	Search    string `json:"search"`
	Status    string `json:"status"`
	Category  string `json:"category"`
	SortField string `json:"sort_field"`
	SortDir   string `json:"sort_dir"`
	Page      int    `json:"page"`
}

func DefaultListState() ListState {
	return ListState{
		Status:    "all",
		Category:  "all",
		SortField: "created_at",
		SortDir:   "desc",
		Page:      1,
	}
}

// SetSearch updates the search text. Any change resets to the first page.
func (s *ListState) SetSearch(q string) {
	if s.Search == q {
		return
	}
	s.Search = q
	s.Page = 1
}

// SetStatus updates the status filter ("all" or one of the challenge
// statuses). Any change resets to the first page.
func (s *ListState) SetStatus(status string) {
	if s.Status == status {
		return
	}
	s.Status = status
	s.Page = 1
}

// SetCategory updates the category filter ("all" or an exact category).
// Any change resets to the first page.
func (s *ListState) SetCategory(category string) {
	if s.Category == category {
		return
	}
	s.Category = category
	s.Page = 1
}

// SortBy selects a sort field. Selecting the current field toggles the
// direction; a new field starts ascending. Unknown fields are ignored.
func (s *ListState) SortBy(field string) {
	if _, ok := AllowedSortFields[field]; !ok {
		return
	}
	if s.SortField == field {
		if s.SortDir == "asc" {
			s.SortDir = "desc"
		} else {
			s.SortDir = "asc"
		}
		return
	}
	s.SortField = field
	s.SortDir = "asc"
}

func (s *ListState) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	s.Page = page
}
