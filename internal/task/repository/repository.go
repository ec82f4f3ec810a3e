package repository

import (
	"time"

	"taskstreak-backend/internal/task/domain"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *domain.Task) error

	// FindByID finds a task by its ID
	FindByID(id string) (*domain.Task, error)

	// FindByUserID finds tasks for a user with optional status filter and pagination
	FindByUserID(userID string, status *domain.TaskStatus, limit, offset int) ([]*domain.Task, int64, error)

	// FindAllByUser returns every task the user owns, newest first
	FindAllByUser(userID string) ([]*domain.Task, error)

	// FindCompletedByUser returns the user's completed tasks
	FindCompletedByUser(userID string) ([]*domain.Task, error)

	// FindDueBetween returns unfinished tasks for a user whose due date
	// falls inside [start, end)
	FindDueBetween(userID string, start, end time.Time) ([]*domain.Task, error)

	// Update updates an existing task
	Update(task *domain.Task) error

	// Delete deletes a task by ID
	Delete(id string) error

	// StatusCounts returns how many tasks the user has per status
	StatusCounts(userID string) (map[domain.TaskStatus]int64, error)

	// CountCompletedSince counts the user's tasks completed at or after the cutoff
	CountCompletedSince(userID string, cutoff time.Time) (int64, error)

	// StampMissingCompletedAt backfills completed_at from updated_at for
	// completed tasks recorded before the timestamp existed. Returns the
	// number of rows touched.
	StampMissingCompletedAt(userID string) (int64, error)

	// UsersWithUnfinishedTasks returns the distinct user IDs that have at
	// least one pending or in-progress task
	UsersWithUnfinishedTasks() ([]string, error)

	// FindDueReminders finds tasks whose per-task reminder is due:
	// reminder_enabled, reminder_at <= now, not yet sent, not completed
	FindDueReminders(now time.Time) ([]*domain.Task, error)

	// MarkReminderSent marks a task's reminder as sent
	MarkReminderSent(id string) error
}
