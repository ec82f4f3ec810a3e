package usecase

import (
	"errors"
	"log"
	"sync"
	"time"

	authrepo "taskstreak-backend/internal/auth/repository"
	streakdomain "taskstreak-backend/internal/streak/domain"
	streakrepo "taskstreak-backend/internal/streak/repository"
	taskdomain "taskstreak-backend/internal/task/domain"
	"taskstreak-backend/pkg/userlock"
)

var ErrUserNotFound = errors.New("user not found")

// CompletedTaskSource is the slice of the task repository the ledger
// backfill needs: completed tasks, with completion timestamps repaired.
type CompletedTaskSource interface {
	StampMissingCompletedAt(userID string) (int64, error)
	FindCompletedByUser(userID string) ([]*taskdomain.Task, error)
}

// streakUsecase implements StreakUsecase
type streakUsecase struct {
	activityRepo streakrepo.ActivityRepository
	userRepo     authrepo.UserRepository
	taskSource   CompletedTaskSource
	locks        *userlock.Registry
	loc          *time.Location

	// backfilled tracks users whose ledger has been reconciled with task
	// records this process lifetime; the reconciliation itself is
	// idempotent, this just avoids repeating it on every read.
	backfilled sync.Map
}

// NewStreakUsecase creates a new instance of streakUsecase
func NewStreakUsecase(activityRepo streakrepo.ActivityRepository, userRepo authrepo.UserRepository, taskSource CompletedTaskSource, locks *userlock.Registry, loc *time.Location) StreakUsecase {
	return &streakUsecase{
		activityRepo: activityRepo,
		userRepo:     userRepo,
		taskSource:   taskSource,
		locks:        locks,
		loc:          loc,
	}
}

func (u *streakUsecase) RecordCompletion(userID string, completedAt time.Time) error {
	day := streakdomain.DayKey(completedAt, u.loc)
	if err := u.activityRepo.IncrementDay(userID, day); err != nil {
		return err
	}
	_, err := u.Touch(userID, completedAt)
	return err
}

func (u *streakUsecase) Touch(userID string, now time.Time) (streakdomain.Transition, error) {
	unlock := u.locks.Lock(userID)
	defer unlock()

	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, ErrUserNotFound
	}

	state := streakdomain.StreakState{
		CurrentStreak:  user.CurrentStreak,
		LongestStreak:  user.LongestStreak,
		LastActiveDate: user.LastActiveDate,
	}
	transition, next := streakdomain.Advance(state, now, u.loc)
	if transition == streakdomain.TransitionSameDay {
		return transition, nil
	}

	// Only the streak columns are written; a full-row save here would
	// revert a points increment that landed since the load above.
	if err := u.userRepo.UpdateStreak(userID, next.CurrentStreak, next.LongestStreak, next.LastActiveDate); err != nil {
		return transition, err
	}

	log.Printf("[Streak] user %s: %s, current=%d longest=%d", userID, transition, next.CurrentStreak, next.LongestStreak)
	return transition, nil
}

func (u *streakUsecase) GetSnapshot(userID string, year *int) (*StreakInfo, []streakdomain.DayActivity, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrUserNotFound
	}

	u.ensureBackfilled(userID)

	var start, end time.Time
	if year != nil {
		start = time.Date(*year, time.January, 1, 0, 0, 0, 0, u.loc)
		end = time.Date(*year, time.December, 31, 0, 0, 0, 0, u.loc)
	} else {
		// Trailing 90 days including today
		end = streakdomain.StartOfDay(time.Now(), u.loc)
		start = end.AddDate(0, 0, -89)
	}

	activity, err := u.QueryRange(userID, start, end)
	if err != nil {
		return nil, nil, err
	}

	info := &StreakInfo{
		Current:    user.CurrentStreak,
		Longest:    user.LongestStreak,
		LastActive: user.LastActiveDate,
	}
	return info, activity, nil
}

func (u *streakUsecase) QueryRange(userID string, start, end time.Time) ([]streakdomain.DayActivity, error) {
	startDay := streakdomain.DayKey(start, u.loc)
	endDay := streakdomain.DayKey(end, u.loc)

	entries, err := u.activityRepo.FindRange(userID, startDay, endDay)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(entries))
	for _, e := range entries {
		counts[e.Date] = e.TasksCompleted
	}

	// One entry per day, never skipping days the ledger has no row for
	var result []streakdomain.DayActivity
	endOfRange := streakdomain.StartOfDay(end, u.loc)
	for d := streakdomain.StartOfDay(start, u.loc); !d.After(endOfRange); d = d.AddDate(0, 0, 1) {
		key := d.Format(streakdomain.DayFormat)
		n := counts[key]
		result = append(result, streakdomain.DayActivity{
			Date:           key,
			TasksCompleted: n,
			Level:          streakdomain.ActivityLevel(n),
		})
	}
	return result, nil
}

func (u *streakUsecase) GetStats(userID string) (*StreakStats, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	entries, err := u.activityRepo.FindAllByUser(userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().In(u.loc)
	today := streakdomain.StartOfDay(now, u.loc)
	startOfWeek := today.AddDate(0, 0, -int(today.Weekday()))
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, u.loc)

	weekKey := startOfWeek.Format(streakdomain.DayFormat)
	monthKey := startOfMonth.Format(streakdomain.DayFormat)

	stats := &StreakStats{
		CurrentStreak: user.CurrentStreak,
		LongestStreak: user.LongestStreak,
		TotalPoints:   user.Points,
	}
	for _, e := range entries {
		if e.Date >= weekKey {
			stats.TasksThisWeek += e.TasksCompleted
		}
		if e.Date >= monthKey {
			stats.TasksThisMonth += e.TasksCompleted
		}
	}
	return stats, nil
}

func (u *streakUsecase) FullHistory(userID string) ([]*streakdomain.ActivityDay, error) {
	u.ensureBackfilled(userID)
	return u.activityRepo.FindAllByUser(userID)
}

// ensureBackfilled reconciles the ledger with completed task records once
// per user: tasks completed before the ledger existed get their day derived
// from task timestamps. Ledger rows always take precedence, so this only
// inserts days the ledger has never seen.
func (u *streakUsecase) ensureBackfilled(userID string) {
	if _, done := u.backfilled.Load(userID); done {
		return
	}

	fixed, err := u.taskSource.StampMissingCompletedAt(userID)
	if err != nil {
		log.Printf("[Streak] backfill: failed to repair completion timestamps for user %s: %v", userID, err)
		return
	}
	if fixed > 0 {
		log.Printf("[Streak] backfill: stamped completed_at on %d tasks for user %s", fixed, userID)
	}

	tasks, err := u.taskSource.FindCompletedByUser(userID)
	if err != nil {
		log.Printf("[Streak] backfill: failed to load completed tasks for user %s: %v", userID, err)
		return
	}

	counts := make(map[string]int)
	for _, t := range tasks {
		when := t.CompletedAt
		if when == nil {
			when = &t.UpdatedAt
		}
		counts[streakdomain.DayKey(*when, u.loc)]++
	}

	var derived []*streakdomain.ActivityDay
	for day, n := range counts {
		derived = append(derived, &streakdomain.ActivityDay{
			UserID:         userID,
			Date:           day,
			TasksCompleted: n,
		})
	}
	if err := u.activityRepo.InsertMissing(derived); err != nil {
		log.Printf("[Streak] backfill: failed to insert derived ledger rows for user %s: %v", userID, err)
		return
	}

	u.backfilled.Store(userID, struct{}{})
}
