// file: models/submission.go
package models

import (
	"time"
)

type SubmissionStatus string

const (
	SubmissionStatusSubmitted   SubmissionStatus = "submitted"
	SubmissionStatusUnderReview SubmissionStatus = "under_review"
	SubmissionStatusAccepted    SubmissionStatus = "accepted"
	SubmissionStatusRejected    SubmissionStatus = "rejected"
)

type ChallengeSubmission struct {
	ID                 uint64                 `gorm:"primarykey"`
	ChallengeID        uint32                 `gorm:"not null;uniqueIndex:uniq_challenge_author"`
	AuthorID           uint32                 `gorm:"not null;uniqueIndex:uniq_challenge_author"`
	Author             User                   `gorm:"foreignKey:AuthorID"`
	Title              string                 `gorm:"size:255;not null"`
	Description        string                 `gorm:"type:text;not null"`
	SolutionApproach   string                 `gorm:"type:text;not null"`
	ImplementationPlan string                 `gorm:"type:text;not null"`
	TeamSubmission     bool                   `gorm:"default:0"`
	TeamMembers        string                 `gorm:"size:1000"`
	Status             SubmissionStatus       `gorm:"type:enum('submitted','under_review','accepted','rejected');not null;default:'submitted'"`
	Attachments        []SubmissionAttachment `gorm:"foreignKey:SubmissionID"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (ChallengeSubmission) TableName() string {
	return "innohub_submission"
}

type SubmissionAttachment struct {
	ID           uint64 `gorm:"primarykey"`
	SubmissionID uint64 `gorm:"not null;index"`
	FileName     string `gorm:"size:255;not null"`
	StoredName   string `gorm:"size:255;not null"`
	Path         string `gorm:"size:512;not null"`
	FileSize     uint64 `gorm:"default:0"`
	ContentType  string `gorm:"size:255;not null"`
	SHA256       string `gorm:"size:64;not null"`
	SortOrder    uint   `gorm:"default:0"`
	UploadedAt   time.Time
}

func (SubmissionAttachment) TableName() string {
	return "innohub_submission_attachment"
}
