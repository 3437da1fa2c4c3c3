// file: services/submission_store.go
package services

import (
	"errors"
	"time"

	"InnoHub/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrChallengeNotOpen covers a missing challenge, a non-active status
	// and a passed deadline alike; callers surface all three as not-found.
	ErrChallengeNotOpen = errors.New("challenge is not accepting submissions")

	// ErrDuplicateSubmission is the conflict signal for a second
	// submission by the same author.
	ErrDuplicateSubmission = errors.New("a submission for this challenge already exists")
)

// SubmissionStore is the persistence port of the submission protocol.
type SubmissionStore interface {
	GetChallenge(id uint32) (*models.Challenge, error)
	HasSubmission(challengeID, authorID uint32) (bool, error)

	// CreateSubmission inserts the submission and its attachment rows and
	// bumps the challenge counter, re-checking eligibility and uniqueness
	// under a row lock. commitFiles runs inside the same transaction so a
	// failed file move rolls the record back.
	CreateSubmission(sub *models.ChallengeSubmission, now time.Time, commitFiles func() error) error
}

type GormSubmissionStore struct {
	db *gorm.DB
}

func NewGormSubmissionStore(db *gorm.DB) *GormSubmissionStore {
	return &GormSubmissionStore{db: db}
}

func (s *GormSubmissionStore) GetChallenge(id uint32) (*models.Challenge, error) {
	var challenge models.Challenge
	if err := s.db.Preload("Author").First(&challenge, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChallengeNotOpen
		}
		return nil, err
	}
	return &challenge, nil
}

func (s *GormSubmissionStore) HasSubmission(challengeID, authorID uint32) (bool, error) {
	var count int64
	err := s.db.Model(&models.ChallengeSubmission{}).
		Where("challenge_id = ? AND author_id = ?", challengeID, authorID).
		Count(&count).Error
	return count > 0, err
}

func (s *GormSubmissionStore) CreateSubmission(sub *models.ChallengeSubmission, now time.Time, commitFiles func() error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		// Lock the challenge row so eligibility and the counter bump are
		// consistent with concurrent submits.
		var challenge models.Challenge
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&challenge, sub.ChallengeID).Error; err != nil {
			return ErrChallengeNotOpen
		}
		if !challenge.AcceptsSubmissions(now) {
			return ErrChallengeNotOpen
		}

		// Friendly early exit; the unique index below stays authoritative
		// for races that slip past this read.
		var existing int64
		tx.Model(&models.ChallengeSubmission{}).
			Where("challenge_id = ? AND author_id = ?", sub.ChallengeID, sub.AuthorID).
			Count(&existing)
		if existing > 0 {
			return ErrDuplicateSubmission
		}

		if err := tx.Create(sub).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateSubmission
			}
			return err
		}

		challenge.SubmissionCount++
		if err := tx.Model(&challenge).
			Update("submission_count", challenge.SubmissionCount).Error; err != nil {
			return err
		}

		if commitFiles != nil {
			return commitFiles()
		}
		return nil
	})
}
