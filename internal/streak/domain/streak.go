package domain

import "time"

// Transition classifies a streak touch relative to the last active day.
type Transition int

const (
	// TransitionNotStarted is the first activity ever recorded for a user.
	TransitionNotStarted Transition = iota
	// TransitionSameDay is a repeat completion on an already-active day.
	TransitionSameDay
	// TransitionConsecutive extends the streak by one day.
	TransitionConsecutive
	// TransitionBroken resets the streak after a gap of more than one day.
	TransitionBroken
)

func (t Transition) String() string {
	switch t {
	case TransitionNotStarted:
		return "not_started"
	case TransitionSameDay:
		return "same_day"
	case TransitionConsecutive:
		return "consecutive"
	case TransitionBroken:
		return "broken"
	}
	return "unknown"
}

// StreakState is the persisted streak portion of a user record.
type StreakState struct {
	CurrentStreak  int
	LongestStreak  int
	LastActiveDate *time.Time
}

// Advance applies one streak touch at time now and returns the transition
// taken plus the resulting state. It is a pure function of its inputs:
//
//	no prior activity      -> current = 1
//	same day or earlier    -> unchanged (idempotent)
//	exactly one day later  -> current + 1
//	more than one day gap  -> current = 1
//
// LongestStreak only ever grows, so it stays >= CurrentStreak and a retry
// of the same day is always safe.
func Advance(state StreakState, now time.Time, loc *time.Location) (Transition, StreakState) {
	today := StartOfDay(now, loc)

	if state.LastActiveDate == nil {
		next := StreakState{
			CurrentStreak:  1,
			LongestStreak:  maxInt(state.LongestStreak, 1),
			LastActiveDate: &today,
		}
		return TransitionNotStarted, next
	}

	gap := DaysBetween(*state.LastActiveDate, today, loc)
	switch {
	case gap <= 0:
		// A clock rollback never rewinds the streak or LastActiveDate
		return TransitionSameDay, state
	case gap == 1:
		current := state.CurrentStreak + 1
		next := StreakState{
			CurrentStreak:  current,
			LongestStreak:  maxInt(state.LongestStreak, current),
			LastActiveDate: &today,
		}
		return TransitionConsecutive, next
	default:
		next := StreakState{
			CurrentStreak:  1,
			LongestStreak:  maxInt(state.LongestStreak, 1),
			LastActiveDate: &today,
		}
		return TransitionBroken, next
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
