package repository

import (
	"taskstreak-backend/internal/achievement/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gormAchievementRepository implements AchievementRepository using GORM
type gormAchievementRepository struct {
	db *gorm.DB
}

// NewGormAchievementRepository creates a new GORM-based AchievementRepository
func NewGormAchievementRepository(db *gorm.DB) AchievementRepository {
	return &gormAchievementRepository{db: db}
}

func (r *gormAchievementRepository) FindByUser(userID string) ([]*domain.UserAchievement, error) {
	var unlocks []*domain.UserAchievement
	err := r.db.Where("user_id = ?", userID).
		Order("unlocked_at ASC, badge_id ASC").Find(&unlocks).Error
	return unlocks, err
}

func (r *gormAchievementRepository) InsertIfAbsent(unlocks []*domain.UserAchievement) error {
	if len(unlocks) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "badge_id"}},
		DoNothing: true,
	}).Create(&unlocks).Error
}

func (r *gormAchievementRepository) FindUnnotified(userID string) ([]*domain.UserAchievement, error) {
	var unlocks []*domain.UserAchievement
	err := r.db.Where("user_id = ? AND notified = ?", userID, false).
		Order("unlocked_at ASC, badge_id ASC").Find(&unlocks).Error
	return unlocks, err
}

func (r *gormAchievementRepository) MarkNotified(userID string, badgeIDs []string) error {
	if len(badgeIDs) == 0 {
		return nil
	}
	return r.db.Model(&domain.UserAchievement{}).
		Where("user_id = ? AND badge_id IN ?", userID, badgeIDs).
		Update("notified", true).Error
}
