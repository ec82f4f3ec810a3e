package usecase

import (
	"log"
	"time"

	authrepo "taskstreak-backend/internal/auth/repository"
	streakdomain "taskstreak-backend/internal/streak/domain"
	"taskstreak-backend/internal/task/domain"
	"taskstreak-backend/internal/task/repository"

	"github.com/google/uuid"
)

// defaultTaskPoints is awarded when a task does not specify its own value
const defaultTaskPoints = 10

// taskUsecase implements TaskUsecase interface
type taskUsecase struct {
	taskRepo      repository.TaskRepository
	userRepo      authrepo.UserRepository
	loc           *time.Location
	onCompleted   func(userID string, task *domain.Task)
	onUncompleted func(userID string, task *domain.Task)
}

// NewTaskUsecase creates a new instance of taskUsecase
func NewTaskUsecase(taskRepo repository.TaskRepository, userRepo authrepo.UserRepository, loc *time.Location) TaskUsecase {
	return &taskUsecase{
		taskRepo: taskRepo,
		userRepo: userRepo,
		loc:      loc,
	}
}

func (u *taskUsecase) SetCompletionHook(hook func(userID string, task *domain.Task)) {
	u.onCompleted = hook
}

func (u *taskUsecase) SetUncompletionHook(hook func(userID string, task *domain.Task)) {
	u.onUncompleted = hook
}

func (u *taskUsecase) CreateTask(userID string, req CreateTaskRequest) (*domain.Task, error) {
	points := defaultTaskPoints
	if req.Points != nil && *req.Points > 0 {
		points = *req.Points
	}

	task := &domain.Task{
		ID:              uuid.New().String(),
		UserID:          userID,
		Title:           req.Title,
		Description:     req.Description,
		Priority:        parsePriority(req.Priority),
		Status:          domain.TaskStatusPending,
		Points:          points,
		Tags:            req.Tags,
		ReminderEnabled: req.ReminderEnabled,
	}

	task.DueDate = parseTimePtr(req.DueDate)
	task.ReminderAt = parseTimePtr(req.ReminderAt)

	if err := u.taskRepo.Create(task); err != nil {
		return nil, err
	}

	return task, nil
}

func (u *taskUsecase) GetTaskByID(userID, taskID string) (*domain.Task, error) {
	task, err := u.taskRepo.FindByID(taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	if task.UserID != userID {
		return nil, ErrNotOwner
	}
	return task, nil
}

func (u *taskUsecase) GetUserTasks(userID string, status *string, limit, offset int) ([]*domain.Task, int64, error) {
	var statusFilter *domain.TaskStatus
	if status != nil && *status != "" {
		s := domain.TaskStatus(*status)
		statusFilter = &s
	}
	return u.taskRepo.FindByUserID(userID, statusFilter, limit, offset)
}

func (u *taskUsecase) GetTodayTasks(userID string) ([]*domain.Task, error) {
	start := streakdomain.StartOfDay(time.Now(), u.loc)
	end := start.AddDate(0, 0, 1)
	return u.taskRepo.FindDueBetween(userID, start, end)
}

func (u *taskUsecase) GetTaskStats(userID string) (*TaskStats, error) {
	counts, err := u.taskRepo.StatusCounts(userID)
	if err != nil {
		return nil, err
	}

	today := streakdomain.StartOfDay(time.Now(), u.loc)
	weekStart := today.AddDate(0, 0, -int(today.Weekday()))

	completedToday, err := u.taskRepo.CountCompletedSince(userID, today)
	if err != nil {
		return nil, err
	}
	completedWeek, err := u.taskRepo.CountCompletedSince(userID, weekStart)
	if err != nil {
		return nil, err
	}

	stats := &TaskStats{
		Pending:        counts[domain.TaskStatusPending],
		InProgress:     counts[domain.TaskStatusInProgress],
		Completed:      counts[domain.TaskStatusCompleted],
		CompletedToday: completedToday,
		CompletedWeek:  completedWeek,
	}
	stats.Total = stats.Pending + stats.InProgress + stats.Completed

	return stats, nil
}

func (u *taskUsecase) UpdateTask(userID, taskID string, updates TaskUpdateRequest) (*domain.Task, error) {
	task, err := u.GetTaskByID(userID, taskID)
	if err != nil {
		return nil, err
	}

	wasCompleted := task.IsCompleted()

	if updates.Title != nil {
		task.Title = *updates.Title
	}
	if updates.Description != nil {
		task.Description = *updates.Description
	}
	if updates.Priority != nil {
		task.Priority = parsePriority(*updates.Priority)
	}
	if updates.Status != nil {
		task.Status = domain.TaskStatus(*updates.Status)
	}
	if updates.Points != nil && *updates.Points > 0 {
		task.Points = *updates.Points
	}
	if updates.Tags != nil {
		task.Tags = *updates.Tags
	}
	if updates.DueDate != nil {
		task.DueDate = parseTimePtr(updates.DueDate)
	}
	if updates.ReminderEnabled != nil {
		task.ReminderEnabled = *updates.ReminderEnabled
	}
	if updates.ReminderAt != nil {
		if *updates.ReminderAt == "" {
			task.ReminderAt = nil
			task.ReminderSent = false
		} else if t := parseTimePtr(updates.ReminderAt); t != nil {
			task.ReminderAt = t
			task.ReminderSent = false // Reset so the new time fires
		}
	}

	nowCompleted := task.IsCompleted()
	now := time.Now()

	if !wasCompleted && nowCompleted {
		task.CompletedAt = &now
	} else if wasCompleted && !nowCompleted {
		task.CompletedAt = nil
	}

	if err := u.taskRepo.Update(task); err != nil {
		return nil, err
	}

	switch {
	case !wasCompleted && nowCompleted:
		if err := u.userRepo.AddPoints(userID, task.Points); err != nil {
			log.Printf("[TaskUsecase] Failed to award %d points to user %s: %v", task.Points, userID, err)
		}
		if u.onCompleted != nil {
			u.onCompleted(userID, task)
		}
	case wasCompleted && !nowCompleted:
		if err := u.userRepo.AddPoints(userID, -task.Points); err != nil {
			log.Printf("[TaskUsecase] Failed to deduct %d points from user %s: %v", task.Points, userID, err)
		}
		if u.onUncompleted != nil {
			u.onUncompleted(userID, task)
		}
	}

	return task, nil
}

func (u *taskUsecase) DeleteTask(userID, taskID string) error {
	task, err := u.GetTaskByID(userID, taskID)
	if err != nil {
		return err
	}
	return u.taskRepo.Delete(task.ID)
}

func parsePriority(p string) domain.Priority {
	switch p {
	case "high":
		return domain.PriorityHigh
	case "low":
		return domain.PriorityLow
	default:
		return domain.PriorityMedium
	}
}

func parseTimePtr(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, *s); err == nil {
		return &t
	}
	return nil
}
