// Package catalog holds the static achievement definitions. The catalog is
// process-wide immutable configuration, loaded once and shared across
// concurrent evaluations; it must be identical on every server instance.
package catalog

import (
	authdomain "taskstreak-backend/internal/auth/domain"
	"taskstreak-backend/internal/stats"
)

type Category string

const (
	CategoryStreak   Category = "streak"
	CategoryTasks    Category = "tasks"
	CategoryTiming   Category = "timing"
	CategoryPriority Category = "priority"
	CategoryWeekly   Category = "weekly"
	CategorySpecial  Category = "special"
)

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// StatKey names a field of stats.Snapshot a condition can test.
type StatKey string

const (
	StatTotalCompleted        StatKey = "totalCompleted"
	StatHighPriority          StatKey = "highPriorityCompleted"
	StatMediumPriority        StatKey = "mediumPriorityCompleted"
	StatLowPriority           StatKey = "lowPriorityCompleted"
	StatEarlyBird             StatKey = "earlyBirdCount"
	StatNightOwl              StatKey = "nightOwlCount"
	StatMaxTasksInDay         StatKey = "maxTasksInDay"
	StatMaxWeeklyTasks        StatKey = "maxWeeklyTasks"
	StatPerfectWeeks          StatKey = "perfectWeeks"
	StatTasksCreatedInSession StatKey = "tasksCreatedInSession"
)

// ConditionKind enumerates the shapes an unlock condition can take.
// Conditions are data, not code, so the catalog stays declarative and the
// evaluator stays a small pure interpreter.
type ConditionKind int

const (
	// CondAlways is satisfied unconditionally (welcome badge).
	CondAlways ConditionKind = iota
	// CondStreakAtLeast tests currentStreak >= Threshold.
	CondStreakAtLeast
	// CondStreakRecord fires whenever the current streak matches or
	// exceeds the longest recorded streak.
	CondStreakRecord
	// CondPointsAtLeast tests task points >= Threshold.
	CondPointsAtLeast
	// CondStatAtLeast tests a single snapshot field >= Threshold.
	CondStatAtLeast
	// CondStatsAllAtLeast tests several snapshot fields at once.
	CondStatsAllAtLeast
	// CondWeeklyRecordBroken tests the weeklyRecordBroken flag.
	CondWeeklyRecordBroken
)

// StatThreshold is one clause of a multi-stat condition.
type StatThreshold struct {
	Stat      StatKey
	Threshold int
}

type Condition struct {
	Kind      ConditionKind
	Stat      StatKey
	Threshold int
	All       []StatThreshold
}

// RequiresStats reports whether evaluating the condition needs a computed
// stats snapshot, or user state alone suffices.
func (c Condition) RequiresStats() bool {
	switch c.Kind {
	case CondStatAtLeast, CondStatsAllAtLeast, CondWeeklyRecordBroken:
		return true
	}
	return false
}

// Satisfied evaluates the condition against user state and an optional
// stats snapshot. It is pure and never mutates either input.
func (c Condition) Satisfied(user *authdomain.User, s *stats.Snapshot) bool {
	switch c.Kind {
	case CondAlways:
		return true
	case CondStreakAtLeast:
		return user.CurrentStreak >= c.Threshold
	case CondStreakRecord:
		return user.CurrentStreak >= user.LongestStreak
	case CondPointsAtLeast:
		return user.Points >= c.Threshold
	case CondStatAtLeast:
		return s != nil && statValue(s, c.Stat) >= c.Threshold
	case CondStatsAllAtLeast:
		if s == nil {
			return false
		}
		for _, st := range c.All {
			if statValue(s, st.Stat) < st.Threshold {
				return false
			}
		}
		return true
	case CondWeeklyRecordBroken:
		return s != nil && s.WeeklyRecordBroken
	}
	return false
}

func statValue(s *stats.Snapshot, key StatKey) int {
	switch key {
	case StatTotalCompleted:
		return s.TotalCompleted
	case StatHighPriority:
		return s.HighPriorityCompleted
	case StatMediumPriority:
		return s.MediumPriorityCompleted
	case StatLowPriority:
		return s.LowPriorityCompleted
	case StatEarlyBird:
		return s.EarlyBirdCount
	case StatNightOwl:
		return s.NightOwlCount
	case StatMaxTasksInDay:
		return s.MaxTasksInDay
	case StatMaxWeeklyTasks:
		return s.MaxWeeklyTasks
	case StatPerfectWeeks:
		return s.PerfectWeeks
	case StatTasksCreatedInSession:
		return s.TasksCreatedInSession
	}
	return 0
}

// Definition is one achievement in the static catalog.
type Definition struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Category    Category  `json:"category"`
	Rarity      Rarity    `json:"rarity"`
	Points      int       `json:"points"`
	Condition   Condition `json:"-"`
}
