// file: dto/challenge.go
package dto

import "strings"

// ========== request DTOs ==========

type CreateChallengeReq struct {
	Title        string   `json:"title" binding:"required,min=5,max=255"`
	Description  string   `json:"description" binding:"required"`
	Category     string   `json:"category" binding:"required,max=100"`
	Status       string   `json:"status"`
	Deadline     *string  `json:"deadline"` // RFC3339, optional
	Prize        string   `json:"prize"`
	Requirements []string `json:"requirements"`
}

func (r *CreateChallengeReq) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.Category = strings.TrimSpace(r.Category)
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
	if r.Status == "" {
		r.Status = "draft"
	}
	reqs := make([]string, 0, len(r.Requirements))
	for _, req := range r.Requirements {
		if req = strings.TrimSpace(req); req != "" {
			reqs = append(reqs, req)
		}
	}
	r.Requirements = reqs
}

// ========== response DTOs ==========

// ChallengeCard is one entry of the browser grid, badges precomputed.
type ChallengeCard struct {
	ID              uint32 `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Category        string `json:"category"`
	Status          string `json:"status"`
	StatusClass     string `json:"status_class"`
	Deadline        string `json:"deadline,omitempty"`
	DaysRemaining   string `json:"days_remaining,omitempty"`
	Prize           string `json:"prize,omitempty"`
	AuthorName      string `json:"author_name"`
	SubmissionCount uint   `json:"submission_count"`
	HasSubmitted    bool   `json:"has_submitted"`
	CanSubmit       bool   `json:"can_submit"`
	ViewURL         string `json:"view_url"`
	SubmitURL       string `json:"submit_url,omitempty"`
}

type ChallengeListResp struct {
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	State      ListState       `json:"state"`
	Categories []string        `json:"categories"`
	CanCreate  bool            `json:"can_create"`
	Items      []ChallengeCard `json:"items"`
}

type SubmissionSummary struct {
	ID          uint64           `json:"id"`
	Title       string           `json:"title"`
	Status      string           `json:"status"`
	CreatedAt   string           `json:"created_at"`
	Attachments []AttachmentMeta `json:"attachments"`
}

type ChallengeDetailResp struct {
	ID              uint32             `json:"id"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	Category        string             `json:"category"`
	Status          string             `json:"status"`
	StatusClass     string             `json:"status_class"`
	Deadline        string             `json:"deadline,omitempty"`
	DaysRemaining   string             `json:"days_remaining,omitempty"`
	Prize           string             `json:"prize,omitempty"`
	Requirements    []string           `json:"requirements"`
	AuthorName      string             `json:"author_name"`
	SubmissionCount uint               `json:"submission_count"`
	MySubmission    *SubmissionSummary `json:"my_submission,omitempty"`
	CanSubmit       bool               `json:"can_submit"`
}
