package usecase

import (
	"time"

	"taskstreak-backend/internal/achievement/catalog"
	authdomain "taskstreak-backend/internal/auth/domain"
)

// UnlockedAchievement is a catalog definition joined with its unlock time
type UnlockedAchievement struct {
	catalog.Definition
	UnlockedAt time.Time `json:"unlockedAt"`
}

// AnnotatedAchievement is a catalog definition annotated with the user's
// unlock state, for the full locked+unlocked listing.
type AnnotatedAchievement struct {
	catalog.Definition
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlockedAt"`
	Notified   bool       `json:"notified"`
}

// EvaluationResult is what one evaluation pass reports back
type EvaluationResult struct {
	NewlyUnlocked []UnlockedAchievement   `json:"newlyUnlocked"`
	TotalPoints   int                     `json:"totalPoints"`
	ProfileLevel  authdomain.ProfileLevel `json:"profileLevel"`
}

// AchievementsList is the full catalog view for one user
type AchievementsList struct {
	Achievements  []AnnotatedAchievement  `json:"achievements"`
	TotalPoints   int                     `json:"totalPoints"`
	ProfileLevel  authdomain.ProfileLevel `json:"profileLevel"`
	UnlockedCount int                     `json:"unlockedCount"`
	TotalCount    int                     `json:"totalCount"`
}

// ProfileStats summarizes gamification state for the profile page
type ProfileStats struct {
	AchievementPoints   int                       `json:"achievementPoints"`
	ProfileLevel        authdomain.ProfileLevel   `json:"profileLevel"`
	ProfileLevelData    *catalog.ProfileLevelInfo `json:"profileLevelData"`
	UnlockedCount       int                       `json:"unlockedCount"`
	TotalAchievements   int                       `json:"totalAchievements"`
	CurrentStreak       int                       `json:"currentStreak"`
	LongestStreak       int                       `json:"longestStreak"`
	TotalTasksCompleted int                       `json:"totalTasksCompleted"`
}

// AchievementUsecase defines the interface for achievement business logic
type AchievementUsecase interface {
	// Evaluate checks every not-yet-unlocked catalog entry against current
	// user state and stats, awards the satisfied ones in a single batch,
	// and recomputes points and profile level. Calling it again with no
	// intervening activity unlocks nothing.
	Evaluate(userID string) (*EvaluationResult, error)

	// AwardFreshStart seeds the welcome badge on a user's first login.
	// Errors are logged, never surfaced: login must not fail over a badge.
	AwardFreshStart(userID string)

	// ListAll returns the whole catalog annotated with unlock state
	ListAll(userID string) (*AchievementsList, error)

	// ListUnnotified returns unlocked-but-unseen achievements joined with
	// their catalog definitions
	ListUnnotified(userID string) ([]UnlockedAchievement, error)

	// MarkNotified flips the notified flag for the given badges
	MarkNotified(userID string, badgeIDs []string) error

	// GetProfileStats returns the profile-page gamification summary
	GetProfileStats(userID string) (*ProfileStats, error)
}
