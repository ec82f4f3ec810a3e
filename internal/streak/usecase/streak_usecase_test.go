package usecase

import (
	"testing"
	"time"

	authdomain "taskstreak-backend/internal/auth/domain"
	authrepo "taskstreak-backend/internal/auth/repository"
	streakdomain "taskstreak-backend/internal/streak/domain"
	streakrepo "taskstreak-backend/internal/streak/repository"
	taskdomain "taskstreak-backend/internal/task/domain"
	taskrepo "taskstreak-backend/internal/task/repository"
	"taskstreak-backend/pkg/userlock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fixture struct {
	db       *gorm.DB
	users    authrepo.UserRepository
	tasks    taskrepo.TaskRepository
	activity streakrepo.ActivityRepository
	streaks  StreakUsecase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&authdomain.User{},
		&taskdomain.Task{},
		&streakdomain.ActivityDay{},
	))

	users := authrepo.NewUserRepository(db)
	tasks := taskrepo.NewGormTaskRepository(db)
	activity := streakrepo.NewGormActivityRepository(db)

	return &fixture{
		db:       db,
		users:    users,
		tasks:    tasks,
		activity: activity,
		streaks:  NewStreakUsecase(activity, users, tasks, userlock.New(), time.UTC),
	}
}

func (f *fixture) createUser(t *testing.T) *authdomain.User {
	t.Helper()
	user := &authdomain.User{Email: "sam@example.com", Name: "Sam", Password: "x"}
	require.NoError(t, f.users.Create(user))
	return user
}

func at(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func TestRecordCompletionBuildsLedgerAndStreak(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t)

	require.NoError(t, f.streaks.RecordCompletion(user.ID, at(t, "2026-03-10T09:00:00Z")))
	require.NoError(t, f.streaks.RecordCompletion(user.ID, at(t, "2026-03-10T18:00:00Z")))

	entries, err := f.activity.FindAllByUser(user.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "2026-03-10", entries[0].Date)
	assert.Equal(t, 2, entries[0].TasksCompleted)

	updated, err := f.users.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.CurrentStreak, "same-day completions never double-count the streak")
	assert.Equal(t, 1, updated.LongestStreak)

	// The next calendar day extends the streak
	require.NoError(t, f.streaks.RecordCompletion(user.ID, at(t, "2026-03-11T08:00:00Z")))
	updated, err = f.users.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.CurrentStreak)
	assert.Equal(t, 2, updated.LongestStreak)
}

func TestTouchBreaksAfterGap(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t)

	for _, day := range []string{"2026-03-10T09:00:00Z", "2026-03-11T09:00:00Z", "2026-03-12T09:00:00Z"} {
		_, err := f.streaks.Touch(user.ID, at(t, day))
		require.NoError(t, err)
	}

	transition, err := f.streaks.Touch(user.ID, at(t, "2026-03-20T09:00:00Z"))
	require.NoError(t, err)
	assert.Equal(t, streakdomain.TransitionBroken, transition)

	updated, err := f.users.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.CurrentStreak)
	assert.Equal(t, 3, updated.LongestStreak, "longest streak survives the break")
}

// pointsAwardingUserRepo bumps task points right after every user load,
// standing in for a task completion that lands while a streak touch holds
// a stale copy of the row.
type pointsAwardingUserRepo struct {
	authrepo.UserRepository
	delta int
}

func (r *pointsAwardingUserRepo) FindByID(id string) (*authdomain.User, error) {
	user, err := r.UserRepository.FindByID(id)
	if err != nil || user == nil {
		return user, err
	}
	if err := r.UserRepository.AddPoints(id, r.delta); err != nil {
		return nil, err
	}
	return user, nil
}

func TestTouchPreservesConcurrentPointIncrement(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t)

	racing := &pointsAwardingUserRepo{UserRepository: f.users, delta: 10}
	streaks := NewStreakUsecase(f.activity, racing, f.tasks, userlock.New(), time.UTC)

	require.NoError(t, streaks.RecordCompletion(user.ID, at(t, "2026-03-10T09:00:00Z")))

	updated, err := f.users.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, updated.Points, "points awarded mid-touch survive the streak save")
	assert.Equal(t, 1, updated.CurrentStreak)
}

func TestTouchUnknownUser(t *testing.T) {
	f := newFixture(t)

	_, err := f.streaks.Touch("missing", time.Now())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestQueryRangeIsDense(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t)

	require.NoError(t, f.streaks.RecordCompletion(user.ID, at(t, "2026-03-02T10:00:00Z")))
	for i := 0; i < 5; i++ {
		require.NoError(t, f.streaks.RecordCompletion(user.ID, at(t, "2026-03-05T10:00:00Z")))
	}

	activity, err := f.streaks.QueryRange(user.ID,
		at(t, "2026-03-01T00:00:00Z"), at(t, "2026-03-10T00:00:00Z"))
	require.NoError(t, err)
	require.Len(t, activity, 10, "one entry per day, inactive days included")

	byDate := make(map[string]streakdomain.DayActivity, len(activity))
	for i, day := range activity {
		byDate[day.Date] = day
		if i > 0 {
			assert.Greater(t, day.Date, activity[i-1].Date, "days are ordered")
		}
	}

	assert.Equal(t, 1, byDate["2026-03-02"].TasksCompleted)
	assert.Equal(t, 2, byDate["2026-03-02"].Level)
	assert.Equal(t, 5, byDate["2026-03-05"].TasksCompleted)
	assert.Equal(t, 4, byDate["2026-03-05"].Level)
	assert.Equal(t, 0, byDate["2026-03-07"].TasksCompleted)
	assert.Equal(t, 0, byDate["2026-03-07"].Level)
}

func TestFullHistoryBackfillsFromTasks(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t)

	// Two tasks completed before the ledger existed
	done := at(t, "2026-02-01T09:00:00Z")
	for i := 0; i < 2; i++ {
		task := &taskdomain.Task{
			UserID:      user.ID,
			Title:       "old task",
			Status:      taskdomain.TaskStatusCompleted,
			CompletedAt: &done,
		}
		require.NoError(t, f.tasks.Create(task))
	}

	// One task completed before completed_at existed at all; its day comes
	// from updated_at after the repair pass
	legacy := &taskdomain.Task{
		UserID: user.ID,
		Title:  "legacy task",
		Status: taskdomain.TaskStatusCompleted,
	}
	require.NoError(t, f.tasks.Create(legacy))

	history, err := f.streaks.FullHistory(user.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)

	byDate := make(map[string]int, len(history))
	for _, day := range history {
		byDate[day.Date] = day.TasksCompleted
	}
	assert.Equal(t, 2, byDate["2026-02-01"])
	assert.Equal(t, 1, byDate[time.Now().UTC().Format(streakdomain.DayFormat)])
}

func TestBackfillNeverOverwritesLedgerRows(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t)

	// The ledger already counted this day
	require.NoError(t, f.streaks.RecordCompletion(user.ID, at(t, "2026-02-01T09:00:00Z")))

	// A completed task on the same day must not bump the count again
	done := at(t, "2026-02-01T15:00:00Z")
	task := &taskdomain.Task{
		UserID:      user.ID,
		Title:       "already counted",
		Status:      taskdomain.TaskStatusCompleted,
		CompletedAt: &done,
	}
	require.NoError(t, f.tasks.Create(task))

	history, err := f.streaks.FullHistory(user.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 1, history[0].TasksCompleted)
}

func TestGetStats(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t)

	user.Points = 120
	user.CurrentStreak = 3
	user.LongestStreak = 8
	require.NoError(t, f.users.Update(user))

	// Today always falls in both the current week and the current month
	now := time.Now().UTC()
	for i := 0; i < 4; i++ {
		require.NoError(t, f.streaks.RecordCompletion(user.ID, now))
	}
	// Ancient activity is excluded from both windows
	require.NoError(t, f.activity.IncrementDay(user.ID, "2020-01-01"))

	stats, err := f.streaks.GetStats(user.ID)
	require.NoError(t, err)

	assert.Equal(t, 120, stats.TotalPoints)
	assert.Equal(t, 4, stats.TasksThisWeek)
	assert.Equal(t, 4, stats.TasksThisMonth)
	// RecordCompletion touched the streak, so current reflects today
	assert.Equal(t, 1, stats.CurrentStreak)
	assert.Equal(t, 8, stats.LongestStreak)
}
