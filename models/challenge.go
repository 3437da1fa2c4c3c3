// file: models/challenge.go
package models

import (
	"time"
)

type ChallengeStatus string

const (
	ChallengeStatusDraft     ChallengeStatus = "draft"
	ChallengeStatusActive    ChallengeStatus = "active"
	ChallengeStatusJudging   ChallengeStatus = "judging"
	ChallengeStatusCompleted ChallengeStatus = "completed"
	ChallengeStatusCancelled ChallengeStatus = "cancelled"
)

type Challenge struct {
	ID              uint32          `gorm:"primarykey"`
	Title           string          `gorm:"size:255;not null"`
	Description     string          `gorm:"type:text;not null"`
	Category        string          `gorm:"size:100;not null;index"`
	Status          ChallengeStatus `gorm:"type:enum('draft','active','judging','completed','cancelled');not null;default:'draft';index"`
	Deadline        *time.Time
	Prize           string   `gorm:"type:text"`
	Requirements    []string `gorm:"type:text;serializer:json"`
	AuthorID        uint32   `gorm:"not null"`
	Author          User     `gorm:"foreignKey:AuthorID"`
	SubmissionCount uint     `gorm:"default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (Challenge) TableName() string {
	return "innohub_challenge"
}

// AcceptsSubmissions reports whether the challenge is open for new
// submissions at the given instant: active status and, when a deadline is
// set, the deadline not yet passed.
func (c *Challenge) AcceptsSubmissions(now time.Time) bool {
	if c.Status != ChallengeStatusActive {
		return false
	}
	if c.Deadline != nil && now.After(*c.Deadline) {
		return false
	}
	return true
}
