package repository

import (
	"time"

	authdomain "taskstreak-backend/internal/auth/domain"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *authdomain.User) error

	// FindByEmail finds a user by email, (nil, nil) when absent
	FindByEmail(email string) (*authdomain.User, error)

	// FindByID finds a user by ID, (nil, nil) when absent
	FindByID(id string) (*authdomain.User, error)

	// Update saves the full user record. Only for fields the caller
	// fully owns (profile, password); counters updated concurrently by
	// other paths must go through the column-scoped writes below.
	Update(user *authdomain.User) error

	// UpdateStreak writes only the streak columns, leaving points and
	// achievement fields untouched.
	UpdateStreak(userID string, current, longest int, lastActive *time.Time) error

	// UpdateAchievementStanding writes only the achievement point total
	// and the derived profile level.
	UpdateAchievementStanding(userID string, points int, level authdomain.ProfileLevel) error

	// FindAll returns every user (used by the daily reminder batch)
	FindAll() ([]*authdomain.User, error)

	// AddPoints atomically adds delta (may be negative) to the user's
	// task points.
	AddPoints(userID string, delta int) error

	SaveRefreshToken(token *authdomain.RefreshToken) error
	FindRefreshToken(token string) (*authdomain.RefreshToken, error)
	DeleteRefreshToken(token string) error
	ReplaceRefreshToken(token *authdomain.RefreshToken) error
}
