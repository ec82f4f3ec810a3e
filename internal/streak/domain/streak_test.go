package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, value string, loc *time.Location) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation(DayFormat, value, loc)
	require.NoError(t, err)
	return parsed
}

func TestAdvanceFirstActivity(t *testing.T) {
	loc := time.UTC
	now := day(t, "2026-03-10", loc).Add(9 * time.Hour)

	transition, next := Advance(StreakState{}, now, loc)

	assert.Equal(t, TransitionNotStarted, transition)
	assert.Equal(t, 1, next.CurrentStreak)
	assert.Equal(t, 1, next.LongestStreak)
	require.NotNil(t, next.LastActiveDate)
	assert.Equal(t, "2026-03-10", next.LastActiveDate.Format(DayFormat))
}

func TestAdvanceClockRollbackKeepsState(t *testing.T) {
	loc := time.UTC
	lastActive := day(t, "2026-03-10", loc)
	state := StreakState{CurrentStreak: 4, LongestStreak: 9, LastActiveDate: &lastActive}

	transition, next := Advance(state, day(t, "2026-03-08", loc).Add(9*time.Hour), loc)

	assert.Equal(t, TransitionSameDay, transition)
	assert.Equal(t, state, next, "a touch in the past changes nothing")
}

func TestAdvanceTransitions(t *testing.T) {
	loc := time.UTC
	lastActive := day(t, "2026-03-10", loc)

	tests := []struct {
		name           string
		now            string
		state          StreakState
		wantTransition Transition
		wantCurrent    int
		wantLongest    int
	}{
		{
			name:           "same day is idempotent",
			now:            "2026-03-10",
			state:          StreakState{CurrentStreak: 4, LongestStreak: 9, LastActiveDate: &lastActive},
			wantTransition: TransitionSameDay,
			wantCurrent:    4,
			wantLongest:    9,
		},
		{
			name:           "next day extends",
			now:            "2026-03-11",
			state:          StreakState{CurrentStreak: 4, LongestStreak: 9, LastActiveDate: &lastActive},
			wantTransition: TransitionConsecutive,
			wantCurrent:    5,
			wantLongest:    9,
		},
		{
			name:           "extension can set a new record",
			now:            "2026-03-11",
			state:          StreakState{CurrentStreak: 9, LongestStreak: 9, LastActiveDate: &lastActive},
			wantTransition: TransitionConsecutive,
			wantCurrent:    10,
			wantLongest:    10,
		},
		{
			name:           "two day gap breaks",
			now:            "2026-03-12",
			state:          StreakState{CurrentStreak: 4, LongestStreak: 9, LastActiveDate: &lastActive},
			wantTransition: TransitionBroken,
			wantCurrent:    1,
			wantLongest:    9,
		},
		{
			name:           "long gap breaks",
			now:            "2026-04-20",
			state:          StreakState{CurrentStreak: 4, LongestStreak: 9, LastActiveDate: &lastActive},
			wantTransition: TransitionBroken,
			wantCurrent:    1,
			wantLongest:    9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := day(t, tt.now, loc).Add(14 * time.Hour)

			transition, next := Advance(tt.state, now, loc)

			assert.Equal(t, tt.wantTransition, transition)
			assert.Equal(t, tt.wantCurrent, next.CurrentStreak)
			assert.Equal(t, tt.wantLongest, next.LongestStreak)
			assert.GreaterOrEqual(t, next.LongestStreak, next.CurrentStreak)
		})
	}
}

func TestAdvanceRetrySameDayIsSafe(t *testing.T) {
	loc := time.UTC
	now := day(t, "2026-03-11", loc).Add(8 * time.Hour)
	lastActive := day(t, "2026-03-10", loc)

	state := StreakState{CurrentStreak: 2, LongestStreak: 2, LastActiveDate: &lastActive}

	_, first := Advance(state, now, loc)
	transition, second := Advance(first, now.Add(5*time.Hour), loc)

	assert.Equal(t, TransitionSameDay, transition)
	assert.Equal(t, first, second)
}

func TestAdvanceJustBeforeAndAfterMidnight(t *testing.T) {
	loc := time.UTC
	lastActive := day(t, "2026-03-10", loc)
	state := StreakState{CurrentStreak: 3, LongestStreak: 3, LastActiveDate: &lastActive}

	// 23:59 on the next day still counts as consecutive
	transition, next := Advance(state, day(t, "2026-03-11", loc).Add(23*time.Hour+59*time.Minute), loc)
	assert.Equal(t, TransitionConsecutive, transition)
	assert.Equal(t, 4, next.CurrentStreak)

	// 00:01 two days later is already a break
	transition, next = Advance(state, day(t, "2026-03-12", loc).Add(1*time.Minute), loc)
	assert.Equal(t, TransitionBroken, transition)
	assert.Equal(t, 1, next.CurrentStreak)
}

func TestDaysBetweenAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2026-03-08 is the spring-forward date: that calendar day is 23 hours long
	before := time.Date(2026, 3, 7, 22, 0, 0, 0, loc)
	after := time.Date(2026, 3, 8, 22, 0, 0, 0, loc)

	assert.Equal(t, 1, DaysBetween(before, after, loc))
	assert.Equal(t, -1, DaysBetween(after, before, loc))
	assert.Equal(t, 0, DaysBetween(after, after, loc))
}

func TestActivityLevelBuckets(t *testing.T) {
	tests := []struct {
		tasks int
		want  int
	}{
		{0, 0},
		{1, 2},
		{2, 2},
		{3, 3},
		{4, 3},
		{5, 4},
		{12, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ActivityLevel(tt.tasks), "tasks=%d", tt.tasks)
	}
}

func TestDayKeyUsesLocation(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	// 22:30 UTC is already the next calendar day in Kolkata (UTC+5:30)
	utcEvening := time.Date(2026, 3, 10, 22, 30, 0, 0, time.UTC)

	assert.Equal(t, "2026-03-10", DayKey(utcEvening, time.UTC))
	assert.Equal(t, "2026-03-11", DayKey(utcEvening, kolkata))
}
