// file: dto/submission_test.go
package dto

import (
	"mime/multipart"
	"strings"
	"testing"
)

func validSubmissionReq() CreateSubmissionReq {
	return CreateSubmissionReq{
		Title:              "Solar-powered water purifier",
		Description:        strings.Repeat("A detailed description of the proposal. ", 3),
		SolutionApproach:   strings.Repeat("The approach we take to solve the problem at hand. ", 3),
		ImplementationPlan: strings.Repeat("Phase one, then phase two. ", 3),
	}
}

func TestCreateSubmissionReqValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(*CreateSubmissionReq)
		wantField string
	}{
		{"valid", func(r *CreateSubmissionReq) {}, ""},
		{"title missing", func(r *CreateSubmissionReq) { r.Title = "" }, "title"},
		{"title too short", func(r *CreateSubmissionReq) { r.Title = "Short" }, "title"},
		{"title too long", func(r *CreateSubmissionReq) { r.Title = strings.Repeat("x", 256) }, "title"},
		{"description too short", func(r *CreateSubmissionReq) { r.Description = "too short" }, "description"},
		{"approach too short", func(r *CreateSubmissionReq) { r.SolutionApproach = strings.Repeat("x", 99) }, "solution_approach"},
		{"plan too short", func(r *CreateSubmissionReq) { r.ImplementationPlan = strings.Repeat("x", 49) }, "implementation_plan"},
		{"team without members", func(r *CreateSubmissionReq) { r.TeamSubmission = true }, "team_members"},
		{"team members too long", func(r *CreateSubmissionReq) {
			r.TeamSubmission = true
			r.TeamMembers = strings.Repeat("x", 1001)
		}, "team_members"},
		{"team with members ok", func(r *CreateSubmissionReq) {
			r.TeamSubmission = true
			r.TeamMembers = "Amina, Jomo, Wanjiru"
		}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := validSubmissionReq()
			tt.mutate(&req)
			errs := req.Validate()
			if tt.wantField == "" {
				if len(errs) != 0 {
					t.Fatalf("expected valid form, got %v", errs)
				}
				return
			}
			if _, ok := errs[tt.wantField]; !ok {
				t.Fatalf("expected error on %q, got %v", tt.wantField, errs)
			}
		})
	}
}

func TestNormalizeClearsTeamMembersWhenToggleOff(t *testing.T) {
	t.Parallel()

	req := validSubmissionReq()
	req.TeamSubmission = true
	req.TeamMembers = "Amina, Jomo"
	req.TeamSubmission = false
	req.Normalize()
	if req.TeamMembers != "" {
		t.Errorf("team members should be cleared, got %q", req.TeamMembers)
	}

	// Members survive while the toggle stays on.
	req = validSubmissionReq()
	req.TeamSubmission = true
	req.TeamMembers = "  Amina, Jomo  "
	req.Normalize()
	if req.TeamMembers != "Amina, Jomo" {
		t.Errorf("team members should be kept and trimmed, got %q", req.TeamMembers)
	}
}

func TestRemoveFileAt(t *testing.T) {
	t.Parallel()

	mk := func(names ...string) []*multipart.FileHeader {
		out := make([]*multipart.FileHeader, 0, len(names))
		for _, n := range names {
			out = append(out, &multipart.FileHeader{Filename: n})
		}
		return out
	}
	names := func(files []*multipart.FileHeader) string {
		var parts []string
		for _, f := range files {
			parts = append(parts, f.Filename)
		}
		return strings.Join(parts, ",")
	}

	tests := []struct {
		name  string
		files []*multipart.FileHeader
		index int
		want  string
	}{
		{"remove middle", mk("a", "b", "c", "d"), 1, "a,c,d"},
		{"remove first", mk("a", "b", "c"), 0, "b,c"},
		{"remove last", mk("a", "b", "c"), 2, "a,b"},
		{"index out of range", mk("a", "b"), 5, "a,b"},
		{"negative index", mk("a", "b"), -1, "a,b"},
		{"single element", mk("a"), 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := RemoveFileAt(tt.files, tt.index)
			if names(got) != tt.want {
				t.Errorf("RemoveFileAt() = %q, want %q", names(got), tt.want)
			}
		})
	}
}
