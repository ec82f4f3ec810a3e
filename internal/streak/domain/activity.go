package domain

import "time"

// DayFormat is the calendar-day key used throughout the activity ledger.
const DayFormat = "2006-01-02"

// ActivityDay is one day of the per-user activity ledger. Rows are created
// on first completion of a day and incremented afterwards; they are never
// deleted, so historical activity survives task deletion.
type ActivityDay struct {
	UserID         string    `json:"user_id" gorm:"primaryKey"`
	Date           string    `json:"date" gorm:"primaryKey"` // YYYY-MM-DD in the reference timezone
	TasksCompleted int       `json:"tasks_completed" gorm:"not null;default:0"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// DayActivity is one entry of a dense day-by-day activity response.
type DayActivity struct {
	Date           string `json:"date"`
	TasksCompleted int    `json:"tasksCompleted"`
	Level          int    `json:"level"`
}

// ActivityLevel buckets a day's completion count for heatmap display.
// Bucket 1 is intentionally unused to keep parity with existing frontend
// color scales: 0 tasks -> 0, 1-2 -> 2, 3-4 -> 3, 5+ -> 4.
func ActivityLevel(tasksCompleted int) int {
	switch {
	case tasksCompleted >= 5:
		return 4
	case tasksCompleted >= 3:
		return 3
	case tasksCompleted >= 1:
		return 2
	default:
		return 0
	}
}

// StartOfDay normalizes a timestamp to midnight of its calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// DayKey formats a timestamp as its calendar-day ledger key in loc.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DayFormat)
}

// DaysBetween returns the number of calendar days from a to b in loc.
// Rounding absorbs DST days that are 23 or 25 hours long.
func DaysBetween(a, b time.Time, loc *time.Location) int {
	diff := StartOfDay(b, loc).Sub(StartOfDay(a, loc))
	days := diff.Hours() / 24
	if days >= 0 {
		return int(days + 0.5)
	}
	return int(days - 0.5)
}
