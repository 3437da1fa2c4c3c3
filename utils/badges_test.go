// file: utils/badges_test.go
package utils

import (
	"testing"
	"time"

	"InnoHub/models"
)

func TestStatusBadgeClass(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status models.ChallengeStatus
		want   string
	}{
		{models.ChallengeStatusDraft, "badge-secondary"},
		{models.ChallengeStatusActive, "badge-success"},
		{models.ChallengeStatusJudging, "badge-warning"},
		{models.ChallengeStatusCompleted, "badge-info"},
		{models.ChallengeStatusCancelled, "badge-danger"},
		{models.ChallengeStatus("something-new"), "badge-light"},
		{models.ChallengeStatus(""), "badge-light"},
	}
	for _, tt := range tests {
		if got := StatusBadgeClass(tt.status); got != tt.want {
			t.Errorf("StatusBadgeClass(%q) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestDaysRemaining(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	at := func(d time.Duration) *time.Time {
		v := now.Add(d)
		return &v
	}

	tests := []struct {
		name     string
		deadline *time.Time
		want     string
		wantOK   bool
	}{
		{"no deadline", nil, "", false},
		{"one hour past", at(-time.Hour), "Expired", true},
		{"far past", at(-30 * 24 * time.Hour), "Expired", true},
		{"exactly now", at(0), "Due today", true},
		{"later today", at(6 * time.Hour), "Due today", true},
		{"one day ahead", at(24 * time.Hour), "1 day left", true},
		{"five days ahead", at(5 * 24 * time.Hour), "5 days left", true},
		{"twelve days ahead", at(12*24*time.Hour + time.Hour), "12 days left", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := DaysRemaining(tt.deadline, now)
			if ok != tt.wantOK {
				t.Fatalf("DaysRemaining() ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("DaysRemaining() = %q, want %q", got, tt.want)
			}
		})
	}
}
