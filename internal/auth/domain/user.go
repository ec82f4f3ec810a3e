package domain

import "time"

// ProfileLevel is a coarse tier derived purely from achievement points.
type ProfileLevel string

const (
	LevelBronze  ProfileLevel = "bronze"
	LevelSilver  ProfileLevel = "silver"
	LevelGold    ProfileLevel = "gold"
	LevelDiamond ProfileLevel = "diamond"
)

type User struct {
	ID       string `json:"id" gorm:"primaryKey"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-"` // Never return password in JSON
	Name     string `json:"name"`

	// Gamification state. Streak fields are mutated only by the streak
	// usecase, at most once per calendar day; achievement fields only by
	// the achievement usecase.
	Points            int          `json:"points" gorm:"default:0"`
	CurrentStreak     int          `json:"current_streak" gorm:"default:0"`
	LongestStreak     int          `json:"longest_streak" gorm:"default:0"`
	LastActiveDate    *time.Time   `json:"last_active_date,omitempty"`
	AchievementPoints int          `json:"achievement_points" gorm:"default:0"`
	ProfileLevel      ProfileLevel `json:"profile_level" gorm:"default:bronze"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RefreshToken struct {
	Token     string    `json:"token" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index"`
	ExpiresAt time.Time `json:"expires_at"`
}
