package stats

import (
	"fmt"
	"testing"
	"time"

	streakdomain "taskstreak-backend/internal/streak/domain"
	taskdomain "taskstreak-backend/internal/task/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ledgerFrom builds consecutive ledger rows ending today, skipping
// zero-count days the way real rows only exist for active days.
func ledgerFrom(t *testing.T, counts []int, now time.Time, loc *time.Location) []*streakdomain.ActivityDay {
	t.Helper()
	require.NotEmpty(t, counts)

	start := streakdomain.StartOfDay(now, loc).AddDate(0, 0, -(len(counts) - 1))
	var history []*streakdomain.ActivityDay
	for i, n := range counts {
		if n == 0 {
			continue
		}
		history = append(history, &streakdomain.ActivityDay{
			UserID:         "u1",
			Date:           start.AddDate(0, 0, i).Format(streakdomain.DayFormat),
			TasksCompleted: n,
		})
	}
	return history
}

func completedTask(priority taskdomain.Priority, completedAt time.Time) *taskdomain.Task {
	return &taskdomain.Task{
		Status:      taskdomain.TaskStatusCompleted,
		Priority:    priority,
		CompletedAt: &completedAt,
	}
}

func TestComputeEmptyInputs(t *testing.T) {
	s := Compute(nil, nil, time.Now(), time.UTC)
	assert.Equal(t, Snapshot{}, s)
}

func TestComputeWeeklyWindow(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 6, 20, 12, 0, 0, 0, loc)

	// [3 0 5 2 0 0 1]: a week with three inactive days
	history := ledgerFrom(t, []int{3, 0, 5, 2, 0, 0, 1}, now, loc)

	s := Compute(history, nil, now, loc)

	assert.Equal(t, 11, s.TotalCompleted)
	assert.Equal(t, 5, s.MaxTasksInDay)
	assert.Equal(t, 11, s.MaxWeeklyTasks)
	assert.Equal(t, 0, s.PerfectWeeks)
	assert.True(t, s.WeeklyRecordBroken, "the only full window is the record")
}

func TestComputePerfectWeeksSliding(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 6, 20, 12, 0, 0, 0, loc)

	// Eight straight active days yield two overlapping perfect windows
	history := ledgerFrom(t, []int{1, 1, 1, 1, 1, 1, 1, 1}, now, loc)

	s := Compute(history, nil, now, loc)

	assert.Equal(t, 8, s.TotalCompleted)
	assert.Equal(t, 7, s.MaxWeeklyTasks)
	assert.Equal(t, 2, s.PerfectWeeks)
}

func TestComputeZeroFillsTrailingGap(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 6, 20, 12, 0, 0, 0, loc)

	// One active day ten days ago; the dense range still reaches today
	history := []*streakdomain.ActivityDay{
		{UserID: "u1", Date: "2026-06-10", TasksCompleted: 9},
	}

	s := Compute(history, nil, now, loc)

	assert.Equal(t, 9, s.TotalCompleted)
	assert.Equal(t, 9, s.MaxWeeklyTasks)
	assert.Equal(t, 0, s.PerfectWeeks)
	assert.False(t, s.WeeklyRecordBroken, "trailing window is all zeros")
}

func TestComputeShortHistoryHasNoWindows(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 6, 20, 12, 0, 0, 0, loc)

	history := ledgerFrom(t, []int{2, 3, 1}, now, loc)

	s := Compute(history, nil, now, loc)

	assert.Equal(t, 6, s.TotalCompleted)
	assert.Equal(t, 0, s.MaxWeeklyTasks)
	assert.Equal(t, 0, s.PerfectWeeks)
	assert.False(t, s.WeeklyRecordBroken)
}

func TestComputePriorityAndHourBuckets(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	now := time.Date(2026, 6, 20, 12, 0, 0, 0, loc)

	tasks := []*taskdomain.Task{
		completedTask(taskdomain.PriorityHigh, time.Date(2026, 6, 19, 6, 30, 0, 0, loc)),   // early bird
		completedTask(taskdomain.PriorityHigh, time.Date(2026, 6, 19, 7, 59, 0, 0, loc)),   // early bird
		completedTask(taskdomain.PriorityMedium, time.Date(2026, 6, 19, 8, 0, 0, 0, loc)),  // neither
		completedTask(taskdomain.PriorityLow, time.Date(2026, 6, 19, 22, 0, 0, 0, loc)),    // night owl
		completedTask(taskdomain.PriorityLow, time.Date(2026, 6, 19, 23, 45, 0, 0, loc)),   // night owl
		{Status: taskdomain.TaskStatusPending, Priority: taskdomain.PriorityHigh},          // ignored
	}

	s := Compute(nil, tasks, now, loc)

	assert.Equal(t, 2, s.HighPriorityCompleted)
	assert.Equal(t, 1, s.MediumPriorityCompleted)
	assert.Equal(t, 2, s.LowPriorityCompleted)
	assert.Equal(t, 2, s.EarlyBirdCount)
	assert.Equal(t, 2, s.NightOwlCount)
}

func TestComputeLongHistory(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 6, 20, 12, 0, 0, 0, loc)

	// 400 days, 2 tasks every other day; no perfect weeks, every full
	// window sums to 8 or 6 depending on alignment
	counts := make([]int, 400)
	for i := range counts {
		if i%2 == 0 {
			counts[i] = 2
		}
	}
	history := ledgerFrom(t, counts, now, loc)
	require.Len(t, history, 200)

	s := Compute(history, nil, now, loc)

	assert.Equal(t, 400, s.TotalCompleted)
	assert.Equal(t, 8, s.MaxWeeklyTasks)
	assert.Equal(t, 0, s.PerfectWeeks)
}

func TestComputeHourBucketRespectsLocation(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	now := time.Now()

	// 01:30 UTC is 07:00 in Kolkata: early bird there, night owl nowhere
	completed := time.Date(2026, 6, 19, 1, 30, 0, 0, time.UTC)
	tasks := []*taskdomain.Task{completedTask(taskdomain.PriorityMedium, completed)}

	utcSnap := Compute(nil, tasks, now, time.UTC)
	kolkataSnap := Compute(nil, tasks, now, kolkata)

	assert.Equal(t, 1, utcSnap.EarlyBirdCount)
	assert.Equal(t, 1, kolkataSnap.EarlyBirdCount)
	assert.Equal(t, 0, kolkataSnap.NightOwlCount)
}

func TestDenseCountsOrderIndependent(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 6, 10, 9, 0, 0, 0, loc)

	// Rows arrive unsorted; the earliest date still anchors the range
	history := []*streakdomain.ActivityDay{
		{Date: "2026-06-09", TasksCompleted: 1},
		{Date: "2026-06-05", TasksCompleted: 4},
		{Date: "2026-06-07", TasksCompleted: 2},
	}

	daily := denseCounts(history, now, loc)
	assert.Equal(t, []int{4, 0, 2, 0, 1, 0}, daily)
}

func TestSlidingWindowsAgainstBruteForce(t *testing.T) {
	daily := []int{3, 0, 5, 2, 0, 0, 1, 4, 4, 4, 4, 4, 4, 4, 0, 2}

	maxWeekly, perfectWeeks := slidingWindows(daily)

	wantMax, wantPerfect := 0, 0
	for i := 0; i+windowDays <= len(daily); i++ {
		sum, zeros := 0, 0
		for _, n := range daily[i : i+windowDays] {
			sum += n
			if n == 0 {
				zeros++
			}
		}
		if sum > wantMax {
			wantMax = sum
		}
		if zeros == 0 {
			wantPerfect++
		}
	}

	assert.Equal(t, wantMax, maxWeekly, fmt.Sprintf("daily=%v", daily))
	assert.Equal(t, wantPerfect, perfectWeeks)
}
