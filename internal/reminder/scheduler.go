package reminder

import (
	"log"
	"time"

	authrepo "taskstreak-backend/internal/auth/repository"
	streakdomain "taskstreak-backend/internal/streak/domain"
	taskdomain "taskstreak-backend/internal/task/domain"
	taskrepo "taskstreak-backend/internal/task/repository"
	"taskstreak-backend/pkg/mailer"

	"github.com/robfig/cron/v3"
)

// Scheduler sends reminder emails for unfinished tasks. Two mechanisms
// run side by side: afternoon/evening digest jobs driven by cron, and a
// minute ticker that fires per-task reminders the user scheduled
// explicitly.
type Scheduler struct {
	taskRepo taskrepo.TaskRepository
	userRepo authrepo.UserRepository
	sender   mailer.Sender
	loc      *time.Location
	cron     *cron.Cron
	interval time.Duration
	stopChan chan struct{}
}

// NewScheduler creates a reminder scheduler. All reminder times are
// interpreted in loc.
func NewScheduler(
	taskRepo taskrepo.TaskRepository,
	userRepo authrepo.UserRepository,
	sender mailer.Sender,
	loc *time.Location,
) *Scheduler {
	return &Scheduler{
		taskRepo: taskRepo,
		userRepo: userRepo,
		sender:   sender,
		loc:      loc,
		cron:     cron.New(cron.WithLocation(loc)),
		interval: 1 * time.Minute,
		stopChan: make(chan struct{}),
	}
}

// Start registers the digest jobs and begins the per-task reminder loop.
func (s *Scheduler) Start() error {
	// Afternoon nudge and evening last call for today's unfinished tasks
	if _, err := s.cron.AddFunc("0 15 * * *", s.sendDailyDigests); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc("0 20 * * *", s.sendDailyDigests); err != nil {
		return err
	}
	s.cron.Start()

	log.Printf("[ReminderScheduler] Daily digests at 15:00 and 20:00 %s, per-task check every %s", s.loc, s.interval)

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.sendDueReminders()
			case <-s.stopChan:
				log.Println("[ReminderScheduler] Stopped")
				return
			}
		}
	}()

	return nil
}

// Stop gracefully stops both loops.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	close(s.stopChan)
}

// sendDailyDigests emails every user their unfinished tasks due today.
// A failure for one user never blocks the rest.
func (s *Scheduler) sendDailyDigests() {
	userIDs, err := s.taskRepo.UsersWithUnfinishedTasks()
	if err != nil {
		log.Printf("[ReminderScheduler] Error listing users with unfinished tasks: %v", err)
		return
	}

	start := streakdomain.StartOfDay(time.Now(), s.loc)
	end := start.AddDate(0, 0, 1)

	sent := 0
	for _, userID := range userIDs {
		tasks, err := s.taskRepo.FindDueBetween(userID, start, end)
		if err != nil {
			log.Printf("[ReminderScheduler] Error loading today's tasks for user %s: %v", userID, err)
			continue
		}
		if len(tasks) == 0 {
			continue
		}

		user, err := s.userRepo.FindByID(userID)
		if err != nil || user == nil {
			log.Printf("[ReminderScheduler] Error loading user %s: %v", userID, err)
			continue
		}

		if err := s.sender.SendTaskReminder(user.Email, user.Name, tasks); err != nil {
			log.Printf("[ReminderScheduler] Error emailing %s: %v", user.Email, err)
			continue
		}
		sent++
	}

	if sent > 0 {
		log.Printf("[ReminderScheduler] Sent %d daily digests", sent)
	}
}

// sendDueReminders fires per-task reminders whose scheduled time has
// passed. Each task is marked sent even when delivery fails, so a
// broken mailbox never causes repeated sends.
func (s *Scheduler) sendDueReminders() {
	tasks, err := s.taskRepo.FindDueReminders(time.Now())
	if err != nil {
		log.Printf("[ReminderScheduler] Error finding due reminders: %v", err)
		return
	}

	for _, task := range tasks {
		user, err := s.userRepo.FindByID(task.UserID)
		if err != nil || user == nil {
			log.Printf("[ReminderScheduler] Error loading user %s for task %s: %v", task.UserID, task.ID, err)
			continue
		}

		if err := s.sender.SendTaskReminder(user.Email, user.Name, []*taskdomain.Task{task}); err != nil {
			log.Printf("[ReminderScheduler] Error sending reminder for task %s: %v", task.ID, err)
		}

		if err := s.taskRepo.MarkReminderSent(task.ID); err != nil {
			log.Printf("[ReminderScheduler] Error marking reminder sent for task %s: %v", task.ID, err)
		}
	}
}
