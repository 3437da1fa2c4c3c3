// file: utils/badges.go
package utils

import (
	"fmt"
	"time"

	"InnoHub/models"
)

// StatusBadgeClass maps a challenge status to its card badge class. Total:
// unrecognized values get the neutral class.
func StatusBadgeClass(status models.ChallengeStatus) string {
	switch status {
	case models.ChallengeStatusDraft:
		return "badge-secondary"
	case models.ChallengeStatusActive:
		return "badge-success"
	case models.ChallengeStatusJudging:
		return "badge-warning"
	case models.ChallengeStatusCompleted:
		return "badge-info"
	case models.ChallengeStatusCancelled:
		return "badge-danger"
	default:
		return "badge-light"
	}
}

// DaysRemaining renders the deadline countdown label. The second return is
// false when the challenge has no deadline and no badge should be shown.
func DaysRemaining(deadline *time.Time, now time.Time) (string, bool) {
	if deadline == nil {
		return "", false
	}
	diff := deadline.Sub(now)
	if diff < 0 {
		return "Expired", true
	}
	days := int(diff.Hours() / 24)
	switch days {
	case 0:
		return "Due today", true
	case 1:
		return "1 day left", true
	default:
		return fmt.Sprintf("%d days left", days), true
	}
}
