package usecase

import (
	"errors"

	"taskstreak-backend/internal/task/domain"
)

var (
	// ErrTaskNotFound indicates the task does not exist
	ErrTaskNotFound = errors.New("task not found")
	// ErrNotOwner indicates the task belongs to another user
	ErrNotOwner = errors.New("unauthorized")
)

// TaskUsecase defines the interface for task business logic
type TaskUsecase interface {
	// CreateTask creates a new task
	CreateTask(userID string, req CreateTaskRequest) (*domain.Task, error)

	// GetTaskByID retrieves a task by ID (with ownership check)
	GetTaskByID(userID, taskID string) (*domain.Task, error)

	// GetUserTasks retrieves all tasks for a user with optional status filter
	GetUserTasks(userID string, status *string, limit, offset int) ([]*domain.Task, int64, error)

	// GetTodayTasks returns the user's unfinished tasks due today
	GetTodayTasks(userID string) ([]*domain.Task, error)

	// GetTaskStats returns per-status counts and recent completion totals
	GetTaskStats(userID string) (*TaskStats, error)

	// UpdateTask updates an existing task. A status change into completed
	// stamps completed_at, awards the task's points and fires the
	// completion hook; a change out of completed reverses both.
	UpdateTask(userID, taskID string, updates TaskUpdateRequest) (*domain.Task, error)

	// DeleteTask deletes a task
	DeleteTask(userID, taskID string) error

	// SetCompletionHook registers a callback fired after a task
	// transitions into the completed state
	SetCompletionHook(hook func(userID string, task *domain.Task))

	// SetUncompletionHook registers a callback fired after a task leaves
	// the completed state
	SetUncompletionHook(hook func(userID string, task *domain.Task))
}

// CreateTaskRequest represents the fields accepted when creating a task
type CreateTaskRequest struct {
	Title           string   `json:"title" binding:"required"`
	Description     string   `json:"description"`
	DueDate         *string  `json:"due_date"`
	Priority        string   `json:"priority"`
	Points          *int     `json:"points"`
	Tags            []string `json:"tags"`
	ReminderEnabled bool     `json:"reminder_enabled"`
	ReminderAt      *string  `json:"reminder_at"`
}

// TaskUpdateRequest represents the fields that can be updated
type TaskUpdateRequest struct {
	Title           *string   `json:"title,omitempty"`
	Description     *string   `json:"description,omitempty"`
	DueDate         *string   `json:"due_date,omitempty"`
	Priority        *string   `json:"priority,omitempty"`
	Status          *string   `json:"status,omitempty"`
	Points          *int      `json:"points,omitempty"`
	Tags            *[]string `json:"tags,omitempty"`
	ReminderEnabled *bool     `json:"reminder_enabled,omitempty"`
	ReminderAt      *string   `json:"reminder_at,omitempty"`
}

// TaskStats summarizes a user's task list
type TaskStats struct {
	Total          int64 `json:"total"`
	Pending        int64 `json:"pending"`
	InProgress     int64 `json:"inProgress"`
	Completed      int64 `json:"completed"`
	CompletedToday int64 `json:"completedToday"`
	CompletedWeek  int64 `json:"completedThisWeek"`
}
