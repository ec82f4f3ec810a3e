package repository

import (
	"taskstreak-backend/internal/achievement/domain"
)

// AchievementRepository defines the interface for unlocked-achievement data access
type AchievementRepository interface {
	// FindByUser returns the user's unlocked achievements ordered by
	// unlock time, then badge id for stable ordering within one pass.
	FindByUser(userID string) ([]*domain.UserAchievement, error)

	// InsertIfAbsent inserts unlocks in one batch, silently skipping any
	// badge the user already has. Permanence lives at the storage layer:
	// an existing row is never touched.
	InsertIfAbsent(unlocks []*domain.UserAchievement) error

	// FindUnnotified returns unlocked achievements not yet shown to the user
	FindUnnotified(userID string) ([]*domain.UserAchievement, error)

	// MarkNotified flips the notified flag for the given badge ids;
	// unknown ids are ignored.
	MarkNotified(userID string, badgeIDs []string) error
}
