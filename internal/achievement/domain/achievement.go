package domain

import "time"

// UserAchievement is one unlocked badge. The composite key makes a badge
// unique per user; rows are inserted once and only the notified flag is
// ever mutated afterwards.
type UserAchievement struct {
	UserID     string    `json:"user_id" gorm:"primaryKey"`
	BadgeID    string    `json:"badge_id" gorm:"primaryKey"`
	UnlockedAt time.Time `json:"unlocked_at"`
	Notified   bool      `json:"notified" gorm:"default:false"`
}
