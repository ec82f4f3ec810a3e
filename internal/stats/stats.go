// Package stats computes derived task-completion statistics from the
// activity ledger and the task collection. Everything here is pure
// computation over loaded data; persistence stays in the callers.
package stats

import (
	"time"

	streakdomain "taskstreak-backend/internal/streak/domain"
	taskdomain "taskstreak-backend/internal/task/domain"
)

// windowDays is the rolling window used for weekly maxima and perfect weeks.
const windowDays = 7

// Snapshot holds every statistic the achievement engine evaluates against.
// All counts are exact integers.
type Snapshot struct {
	TotalCompleted          int  `json:"totalCompleted"`
	HighPriorityCompleted   int  `json:"highPriorityCompleted"`
	MediumPriorityCompleted int  `json:"mediumPriorityCompleted"`
	LowPriorityCompleted    int  `json:"lowPriorityCompleted"`
	EarlyBirdCount          int  `json:"earlyBirdCount"`
	NightOwlCount           int  `json:"nightOwlCount"`
	MaxTasksInDay           int  `json:"maxTasksInDay"`
	MaxWeeklyTasks          int  `json:"maxWeeklyTasks"`
	PerfectWeeks            int  `json:"perfectWeeks"`
	WeeklyRecordBroken      bool `json:"weeklyRecordBroken"`

	// TasksCreatedInSession is kept for catalog parity; session tracking
	// never made it past the catalog in the product, so it stays zero.
	TasksCreatedInSession int `json:"tasksCreatedInSession"`
}

// Compute derives a snapshot from the full activity ledger and the user's
// tasks. now anchors the trailing week; loc is the reference timezone for
// day and hour bucketing.
func Compute(history []*streakdomain.ActivityDay, tasks []*taskdomain.Task, now time.Time, loc *time.Location) Snapshot {
	var s Snapshot

	for _, day := range history {
		s.TotalCompleted += day.TasksCompleted
		if day.TasksCompleted > s.MaxTasksInDay {
			s.MaxTasksInDay = day.TasksCompleted
		}
	}

	for _, t := range tasks {
		if t.Status != taskdomain.TaskStatusCompleted {
			continue
		}
		switch t.Priority {
		case taskdomain.PriorityHigh:
			s.HighPriorityCompleted++
		case taskdomain.PriorityMedium:
			s.MediumPriorityCompleted++
		case taskdomain.PriorityLow:
			s.LowPriorityCompleted++
		}
		if t.CompletedAt != nil {
			hour := t.CompletedAt.In(loc).Hour()
			if hour < 8 {
				s.EarlyBirdCount++
			}
			if hour >= 22 {
				s.NightOwlCount++
			}
		}
	}

	daily := denseCounts(history, now, loc)
	s.MaxWeeklyTasks, s.PerfectWeeks = slidingWindows(daily)

	// The most recent full week; ties with the record count as broken.
	if len(daily) >= windowDays {
		lastWeek := 0
		for _, n := range daily[len(daily)-windowDays:] {
			lastWeek += n
		}
		s.WeeklyRecordBroken = lastWeek >= s.MaxWeeklyTasks && lastWeek > 0
	}

	return s
}

// denseCounts expands the ledger into one count per calendar day from the
// first recorded day through today, zero-filling gaps. Rolling windows are
// over calendar days, not over sparse ledger rows, so inactive days count
// against perfect weeks.
func denseCounts(history []*streakdomain.ActivityDay, now time.Time, loc *time.Location) []int {
	if len(history) == 0 {
		return nil
	}

	counts := make(map[string]int, len(history))
	first := history[0].Date
	for _, day := range history {
		counts[day.Date] = day.TasksCompleted
		if day.Date < first {
			first = day.Date
		}
	}

	start, err := time.ParseInLocation(streakdomain.DayFormat, first, loc)
	if err != nil {
		return nil
	}
	today := streakdomain.StartOfDay(now, loc)

	var daily []int
	for d := start; !d.After(today); d = d.AddDate(0, 0, 1) {
		daily = append(daily, counts[d.Format(streakdomain.DayFormat)])
	}
	return daily
}

// slidingWindows scans every full 7-day window once, tracking the maximum
// window sum and the number of windows with activity on all seven days.
func slidingWindows(daily []int) (maxWeekly, perfectWeeks int) {
	if len(daily) < windowDays {
		return 0, 0
	}

	sum, zeros := 0, 0
	for i, n := range daily {
		sum += n
		if n == 0 {
			zeros++
		}
		if i >= windowDays {
			out := daily[i-windowDays]
			sum -= out
			if out == 0 {
				zeros--
			}
		}
		if i >= windowDays-1 {
			if sum > maxWeekly {
				maxWeekly = sum
			}
			if zeros == 0 {
				perfectWeeks++
			}
		}
	}
	return maxWeekly, perfectWeeks
}
