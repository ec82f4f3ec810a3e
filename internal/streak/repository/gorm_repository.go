package repository

import (
	"time"

	"taskstreak-backend/internal/streak/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gormActivityRepository implements ActivityRepository using GORM
type gormActivityRepository struct {
	db *gorm.DB
}

// NewGormActivityRepository creates a new GORM-based ActivityRepository
func NewGormActivityRepository(db *gorm.DB) ActivityRepository {
	return &gormActivityRepository{db: db}
}

func (r *gormActivityRepository) IncrementDay(userID, day string) error {
	now := time.Now()
	entry := &domain.ActivityDay{
		UserID:         userID,
		Date:           day,
		TasksCompleted: 1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"tasks_completed": gorm.Expr("activity_days.tasks_completed + 1"),
			"updated_at":      now,
		}),
	}).Create(entry).Error
}

func (r *gormActivityRepository) FindRange(userID, startDay, endDay string) ([]*domain.ActivityDay, error) {
	var entries []*domain.ActivityDay
	err := r.db.Where("user_id = ? AND date >= ? AND date <= ?", userID, startDay, endDay).
		Order("date ASC").Find(&entries).Error
	return entries, err
}

func (r *gormActivityRepository) FindAllByUser(userID string) ([]*domain.ActivityDay, error) {
	var entries []*domain.ActivityDay
	err := r.db.Where("user_id = ?", userID).Order("date ASC").Find(&entries).Error
	return entries, err
}

func (r *gormActivityRepository) InsertMissing(days []*domain.ActivityDay) error {
	if len(days) == 0 {
		return nil
	}
	now := time.Now()
	for _, d := range days {
		d.CreatedAt = now
		d.UpdatedAt = now
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoNothing: true,
	}).Create(&days).Error
}
