// file: services/submission.go
package services

import (
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"InnoHub/dto"
	"InnoHub/models"
)

// MaxAttachmentCount caps the attachment list of one submission.
const MaxAttachmentCount = 10

// ValidationError carries per-field messages for an invalid form.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "submission form validation failed"
}

// AttachmentRejectedError aborts a submission whose attachment batch did
// not pass the file store. Reasons lists every rejected file.
type AttachmentRejectedError struct {
	Reasons []string
}

func (e *AttachmentRejectedError) Error() string {
	return "attachments rejected: " + strings.Join(e.Reasons, "; ")
}

// SubmissionService runs the submission protocol: validate, guard
// eligibility, stage files, persist atomically, then audit and notify.
type SubmissionService struct {
	store  SubmissionStore
	files  FileStore
	audit  AuditRecorder
	notify Notifier
	now    func() time.Time
}

func NewSubmissionService(store SubmissionStore, files FileStore, audit AuditRecorder, notify Notifier) *SubmissionService {
	return &SubmissionService{
		store:  store,
		files:  files,
		audit:  audit,
		notify: notify,
		now:    time.Now,
	}
}

// Eligibility is the form-load guard. It returns the challenge when the
// viewer may submit, ErrChallengeNotOpen when the challenge is missing,
// inactive or past its deadline, and ErrDuplicateSubmission when the
// viewer already has a submission.
func (s *SubmissionService) Eligibility(challengeID, userID uint32) (*models.Challenge, error) {
	challenge, err := s.store.GetChallenge(challengeID)
	if err != nil {
		return nil, err
	}
	if !challenge.AcceptsSubmissions(s.now()) {
		return nil, ErrChallengeNotOpen
	}
	exists, err := s.store.HasSubmission(challengeID, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return challenge, ErrDuplicateSubmission
	}
	return challenge, nil
}

// Create runs the full submit protocol. On success the returned record
// has been persisted, its files committed, and audit plus notifications
// dispatched.
func (s *SubmissionService) Create(challengeID, authorID uint32, req dto.CreateSubmissionReq, files []*multipart.FileHeader) (*models.ChallengeSubmission, error) {
	req.Normalize()
	if fieldErrs := req.Validate(); len(fieldErrs) > 0 {
		return nil, &ValidationError{Fields: fieldErrs}
	}
	if len(files) > MaxAttachmentCount {
		return nil, &ValidationError{Fields: map[string]string{
			"attachments": fmt.Sprintf("At most %d attachments are allowed", MaxAttachmentCount),
		}}
	}

	// Fresh eligibility read; the challenge may have closed since the
	// form was loaded.
	challenge, err := s.Eligibility(challengeID, authorID)
	if err != nil {
		return nil, err
	}

	// Stage the whole batch first. Every file is checked so the error
	// lists all reasons, and nothing leaves staging unless all pass.
	scope := fmt.Sprintf("challenges/%d", challengeID)
	staged := make([]*StoredFile, 0, len(files))
	var reasons []string
	for _, fh := range files {
		stored, err := s.files.Stage(fh)
		if err != nil {
			reasons = append(reasons, err.Error())
			continue
		}
		staged = append(staged, stored)
	}
	if len(reasons) > 0 {
		s.files.Discard(staged)
		return nil, &AttachmentRejectedError{Reasons: reasons}
	}

	sub := &models.ChallengeSubmission{
		ChallengeID:        challengeID,
		AuthorID:           authorID,
		Title:              req.Title,
		Description:        req.Description,
		SolutionApproach:   req.SolutionApproach,
		ImplementationPlan: req.ImplementationPlan,
		TeamSubmission:     req.TeamSubmission,
		TeamMembers:        req.TeamMembers,
		Status:             models.SubmissionStatusSubmitted,
	}
	for i, f := range staged {
		sub.Attachments = append(sub.Attachments, models.SubmissionAttachment{
			FileName:    f.FileName,
			StoredName:  f.StoredName,
			Path:        s.files.FinalPath(f, scope),
			FileSize:    f.Size,
			ContentType: f.ContentType,
			SHA256:      f.SHA256,
			SortOrder:   uint(i),
			UploadedAt:  f.UploadedAt,
		})
	}

	err = s.store.CreateSubmission(sub, s.now(), func() error {
		return s.files.Commit(staged, scope)
	})
	if err != nil {
		// Any rollback leaves the staged copies behind; remove them.
		// Discard tolerates files Commit already removed.
		s.files.Discard(staged)
		return nil, err
	}

	s.audit.Record("submission.created", "challenge_submission", sub.ID, authorID, nil, sub)

	s.notify.SendToRoles(models.ReviewerRoles, "submission.created",
		fmt.Sprintf("New submission for challenge %q", challenge.Title),
		fmt.Sprintf("Submission %q was received for challenge %q and is awaiting review.", sub.Title, challenge.Title))

	s.notify.SendToUser(authorID, "submission.confirmed",
		fmt.Sprintf("Your submission to %q was received", challenge.Title),
		fmt.Sprintf("Your submission %q was received and has status %s.", sub.Title, sub.Status))

	return sub, nil
}
