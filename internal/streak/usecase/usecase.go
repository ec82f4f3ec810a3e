package usecase

import (
	"time"

	streakdomain "taskstreak-backend/internal/streak/domain"
)

// StreakInfo is the streak summary returned with activity snapshots
type StreakInfo struct {
	Current    int        `json:"current"`
	Longest    int        `json:"longest"`
	LastActive *time.Time `json:"lastActive"`
}

// StreakStats is the aggregate view served by GET /api/streaks/stats
type StreakStats struct {
	CurrentStreak  int `json:"currentStreak"`
	LongestStreak  int `json:"longestStreak"`
	TotalPoints    int `json:"totalPoints"`
	TasksThisWeek  int `json:"tasksThisWeek"`
	TasksThisMonth int `json:"tasksThisMonth"`
}

// StreakUsecase defines the interface for streak and activity ledger logic
type StreakUsecase interface {
	// RecordCompletion registers one completed task: increments the
	// activity ledger for the completion day and advances the streak.
	RecordCompletion(userID string, completedAt time.Time) error

	// Touch advances the user's streak for a completion at time now.
	// At most one streak change happens per calendar day per user.
	Touch(userID string, now time.Time) (streakdomain.Transition, error)

	// GetSnapshot returns the streak summary plus a dense day-by-day
	// activity sequence. With year == nil the range is the trailing 90
	// days; otherwise the full requested calendar year.
	GetSnapshot(userID string, year *int) (*StreakInfo, []streakdomain.DayActivity, error)

	// GetStats returns streak plus weekly/monthly completion totals
	GetStats(userID string) (*StreakStats, error)

	// QueryRange returns one entry for every day in [start, end], filling
	// days without ledger activity with zero counts.
	QueryRange(userID string, start, end time.Time) ([]streakdomain.DayActivity, error)

	// FullHistory returns the user's complete activity ledger in
	// chronological order (the achievement engine evaluates over it).
	FullHistory(userID string) ([]*streakdomain.ActivityDay, error)
}
