package repository

import (
	"time"

	"taskstreak-backend/internal/task/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormTaskRepository implements TaskRepository using GORM
type gormTaskRepository struct {
	db *gorm.DB
}

// NewGormTaskRepository creates a new GORM-based TaskRepository
func NewGormTaskRepository(db *gorm.DB) TaskRepository {
	return &gormTaskRepository{db: db}
}

func (r *gormTaskRepository) Create(task *domain.Task) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	task.CreatedAt = time.Now()
	task.UpdatedAt = time.Now()
	return r.db.Create(task).Error
}

func (r *gormTaskRepository) FindByID(id string) (*domain.Task, error) {
	var task domain.Task
	err := r.db.Where("id = ?", id).First(&task).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *gormTaskRepository) FindByUserID(userID string, status *domain.TaskStatus, limit, offset int) ([]*domain.Task, int64, error) {
	var tasks []*domain.Task
	var total int64

	query := r.db.Model(&domain.Task{}).Where("user_id = ?", userID)

	if status != nil {
		query = query.Where("status = ?", *status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Due date first (nulls last), then newest created
	err := query.Order("CASE WHEN due_date IS NULL THEN 1 ELSE 0 END, due_date ASC, created_at DESC").
		Limit(limit).Offset(offset).Find(&tasks).Error

	return tasks, total, err
}

func (r *gormTaskRepository) FindAllByUser(userID string) ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").Find(&tasks).Error
	return tasks, err
}

func (r *gormTaskRepository) FindCompletedByUser(userID string) ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := r.db.Where("user_id = ? AND status = ?", userID, domain.TaskStatusCompleted).
		Order("completed_at ASC").Find(&tasks).Error
	return tasks, err
}

func (r *gormTaskRepository) FindDueBetween(userID string, start, end time.Time) ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := r.db.Where("user_id = ? AND status != ? AND due_date >= ? AND due_date < ?",
		userID, domain.TaskStatusCompleted, start, end).
		Order("due_date ASC").Find(&tasks).Error
	return tasks, err
}

func (r *gormTaskRepository) Update(task *domain.Task) error {
	task.UpdatedAt = time.Now()
	return r.db.Save(task).Error
}

func (r *gormTaskRepository) Delete(id string) error {
	return r.db.Delete(&domain.Task{}, "id = ?", id).Error
}

func (r *gormTaskRepository) StatusCounts(userID string) (map[domain.TaskStatus]int64, error) {
	type row struct {
		Status domain.TaskStatus
		Count  int64
	}
	var rows []row
	err := r.db.Model(&domain.Task{}).
		Select("status, COUNT(*) as count").
		Where("user_id = ?", userID).
		Group("status").Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[domain.TaskStatus]int64, len(rows))
	for _, rw := range rows {
		counts[rw.Status] = rw.Count
	}
	return counts, nil
}

func (r *gormTaskRepository) CountCompletedSince(userID string, cutoff time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Task{}).
		Where("user_id = ? AND status = ? AND completed_at >= ?",
			userID, domain.TaskStatusCompleted, cutoff).
		Count(&count).Error
	return count, err
}

func (r *gormTaskRepository) StampMissingCompletedAt(userID string) (int64, error) {
	result := r.db.Model(&domain.Task{}).
		Where("user_id = ? AND status = ? AND completed_at IS NULL",
			userID, domain.TaskStatusCompleted).
		Update("completed_at", gorm.Expr("updated_at"))
	return result.RowsAffected, result.Error
}

func (r *gormTaskRepository) UsersWithUnfinishedTasks() ([]string, error) {
	var userIDs []string
	err := r.db.Model(&domain.Task{}).
		Where("status IN ?", []domain.TaskStatus{domain.TaskStatusPending, domain.TaskStatusInProgress}).
		Distinct("user_id").Pluck("user_id", &userIDs).Error
	return userIDs, err
}

func (r *gormTaskRepository) FindDueReminders(now time.Time) ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := r.db.Where("reminder_enabled = ? AND reminder_at <= ? AND reminder_sent = ? AND status != ?",
		true, now, false, domain.TaskStatusCompleted).Find(&tasks).Error
	return tasks, err
}

func (r *gormTaskRepository) MarkReminderSent(id string) error {
	return r.db.Model(&domain.Task{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"reminder_sent": true,
			"updated_at":    time.Now(),
		}).Error
}
