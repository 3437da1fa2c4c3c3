// file: dto/submission.go
package dto

import (
	"mime/multipart"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// CreateSubmissionReq carries the submission form fields. Attachments
// travel separately as multipart files.
type CreateSubmissionReq struct {
	Title              string `form:"title" validate:"required,min=10,max=255"`
	Description        string `form:"description" validate:"required,min=50"`
	SolutionApproach   string `form:"solution_approach" validate:"required,min=100"`
	ImplementationPlan string `form:"implementation_plan" validate:"required,min=50"`
	TeamSubmission     bool   `form:"team_submission"`
	TeamMembers        string `form:"team_members" validate:"required_if=TeamSubmission true,max=1000"`
}

// Normalize trims the text fields and applies the one-way team toggle:
// an individual submission never keeps team members text.
func (r *CreateSubmissionReq) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.SolutionApproach = strings.TrimSpace(r.SolutionApproach)
	r.ImplementationPlan = strings.TrimSpace(r.ImplementationPlan)
	r.TeamMembers = strings.TrimSpace(r.TeamMembers)
	if !r.TeamSubmission {
		r.TeamMembers = ""
	}
}

// Validate checks the field constraints and returns inline messages keyed
// by form field. Empty map means the form is valid.
func (r *CreateSubmissionReq) Validate() map[string]string {
	errs := map[string]string{}
	err := validate.Struct(r)
	if err == nil {
		return errs
	}
	for _, fe := range err.(validator.ValidationErrors) {
		switch fe.Field() {
		case "Title":
			errs["title"] = "Title is required and must be 10-255 characters"
		case "Description":
			errs["description"] = "Description is required and must be at least 50 characters"
		case "SolutionApproach":
			errs["solution_approach"] = "Solution approach is required and must be at least 100 characters"
		case "ImplementationPlan":
			errs["implementation_plan"] = "Implementation plan is required and must be at least 50 characters"
		case "TeamMembers":
			if fe.Tag() == "max" {
				errs["team_members"] = "Team members must be at most 1000 characters"
			} else {
				errs["team_members"] = "Team members are required for a team submission"
			}
		}
	}
	return errs
}

// RemoveFileAt drops the attachment at index i, keeping the rest
// contiguous and in order. Out-of-range indexes are a no-op.
func RemoveFileAt(files []*multipart.FileHeader, i int) []*multipart.FileHeader {
	if i < 0 || i >= len(files) {
		return files
	}
	out := make([]*multipart.FileHeader, 0, len(files)-1)
	out = append(out, files[:i]...)
	out = append(out, files[i+1:]...)
	return out
}

// ========== response DTOs ==========

type AttachmentMeta struct {
	ID          uint64 `json:"id"`
	FileName    string `json:"file_name"`
	StoredName  string `json:"stored_name"`
	Size        uint64 `json:"size"`
	ContentType string `json:"content_type"`
	SHA256      string `json:"sha256"`
	UploadedAt  string `json:"uploaded_at"`
	DownloadURL string `json:"download_url"`
}

// SubmissionFormResp is the payload of the form page: the challenge being
// answered plus the upload constraints the client enforces ahead of time.
type SubmissionFormResp struct {
	ChallengeID    uint32   `json:"challenge_id"`
	ChallengeTitle string   `json:"challenge_title"`
	Deadline       string   `json:"deadline,omitempty"`
	DaysRemaining  string   `json:"days_remaining,omitempty"`
	Requirements   []string `json:"requirements"`
	MaxFileBytes   int64    `json:"max_file_bytes"`
	AllowedTypes   []string `json:"allowed_types"`
	AllowedExts    []string `json:"allowed_exts"`
	MaxAttachments int      `json:"max_attachments"`
}
