package domain

import "time"

// Priority represents task priority level
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// TaskStatus represents the current state of a task
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// Task represents a to-do item owned by a user. Completing a task
// awards its Points to the owner and feeds the activity ledger.
type Task struct {
	ID              string     `json:"id" gorm:"primaryKey"`
	UserID          string     `json:"user_id" gorm:"index;not null"`
	Title           string     `json:"title" gorm:"not null"`
	Description     string     `json:"description,omitempty"`
	DueDate         *time.Time `json:"due_date,omitempty"`
	Priority        Priority   `json:"priority" gorm:"default:medium"`
	Status          TaskStatus `json:"status" gorm:"default:pending"`
	Points          int        `json:"points" gorm:"default:10"`
	Tags            []string   `json:"tags" gorm:"serializer:json"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"` // Set on the transition into completed
	ReminderEnabled bool       `json:"reminder_enabled" gorm:"default:false"`
	ReminderAt      *time.Time `json:"reminder_at,omitempty"`
	ReminderSent    bool       `json:"reminder_sent" gorm:"default:false"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// IsCompleted reports whether the task is in the completed state.
func (t *Task) IsCompleted() bool {
	return t.Status == TaskStatusCompleted
}
