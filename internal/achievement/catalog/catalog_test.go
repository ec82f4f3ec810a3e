package catalog

import (
	"testing"

	authdomain "taskstreak-backend/internal/auth/domain"
	"taskstreak-backend/internal/stats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogIntegrity(t *testing.T) {
	require.Len(t, Achievements, 25)

	seen := make(map[string]bool, len(Achievements))
	for _, a := range Achievements {
		assert.NotEmpty(t, a.ID)
		assert.NotEmpty(t, a.Name)
		assert.NotEmpty(t, a.Description)
		assert.NotEmpty(t, a.Icon)
		assert.Positive(t, a.Points, "achievement %s", a.ID)
		assert.False(t, seen[a.ID], "duplicate id %s", a.ID)
		seen[a.ID] = true

		_, ok := Categories[a.Category]
		assert.True(t, ok, "achievement %s has unknown category %s", a.ID, a.Category)
		_, ok = Rarities[a.Rarity]
		assert.True(t, ok, "achievement %s has unknown rarity %s", a.ID, a.Rarity)
	}

	assert.True(t, seen[FreshStartID])
}

func TestByID(t *testing.T) {
	def := ByID("week_warrior")
	require.NotNil(t, def)
	assert.Equal(t, "Week Warrior", def.Name)
	assert.Equal(t, 25, def.Points)

	assert.Nil(t, ByID("no_such_badge"))
}

func TestStreakConditions(t *testing.T) {
	user := &authdomain.User{CurrentStreak: 7, LongestStreak: 12}

	assert.True(t, ByID("first_day").Condition.Satisfied(user, nil))
	assert.True(t, ByID("week_warrior").Condition.Satisfied(user, nil))
	assert.False(t, ByID("fortnight_fighter").Condition.Satisfied(user, nil))

	// Record condition fires only when the current streak ties or beats
	// the longest
	assert.False(t, ByID("streak_record").Condition.Satisfied(user, nil))
	user.CurrentStreak = 12
	assert.True(t, ByID("streak_record").Condition.Satisfied(user, nil))
}

func TestStatConditionsNeedSnapshot(t *testing.T) {
	user := &authdomain.User{}

	for _, a := range Achievements {
		if !a.Condition.RequiresStats() {
			continue
		}
		assert.False(t, a.Condition.Satisfied(user, nil),
			"stat condition %s must not fire without a snapshot", a.ID)
	}
}

func TestStatConditions(t *testing.T) {
	user := &authdomain.User{}
	snap := &stats.Snapshot{
		TotalCompleted:          100,
		HighPriorityCompleted:   20,
		MediumPriorityCompleted: 20,
		LowPriorityCompleted:    19,
		EarlyBirdCount:          5,
		MaxTasksInDay:           10,
		MaxWeeklyTasks:          21,
		PerfectWeeks:            1,
		WeeklyRecordBroken:      true,
	}

	assert.True(t, ByID("century_club").Condition.Satisfied(user, snap))
	assert.False(t, ByID("productivity_beast").Condition.Satisfied(user, snap))
	assert.True(t, ByID("early_bird").Condition.Satisfied(user, snap))
	assert.False(t, ByID("night_owl").Condition.Satisfied(user, snap))
	assert.True(t, ByID("speed_demon").Condition.Satisfied(user, snap))
	assert.True(t, ByID("perfect_week").Condition.Satisfied(user, snap))
	assert.True(t, ByID("power_week").Condition.Satisfied(user, snap))
	assert.True(t, ByID("personal_best").Condition.Satisfied(user, snap))

	// balanced needs 20 of every priority; low is one short
	assert.False(t, ByID("balanced").Condition.Satisfied(user, snap))
	snap.LowPriorityCompleted = 20
	assert.True(t, ByID("balanced").Condition.Satisfied(user, snap))
}

func TestPointsCondition(t *testing.T) {
	cond := ByID("point_milestone_1k").Condition

	assert.False(t, cond.Satisfied(&authdomain.User{Points: 999}, nil))
	assert.True(t, cond.Satisfied(&authdomain.User{Points: 1000}, nil))
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		points int
		want   authdomain.ProfileLevel
	}{
		{0, authdomain.LevelBronze},
		{99, authdomain.LevelBronze},
		{100, authdomain.LevelSilver},
		{499, authdomain.LevelSilver},
		{500, authdomain.LevelGold},
		{999, authdomain.LevelGold},
		{1000, authdomain.LevelDiamond},
		{5000, authdomain.LevelDiamond},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFor(tt.points), "points=%d", tt.points)
	}
}

func TestProfileLevelsAreContiguous(t *testing.T) {
	require.NotEmpty(t, ProfileLevels)
	assert.Equal(t, 0, ProfileLevels[0].MinPoints)

	for i := 1; i < len(ProfileLevels); i++ {
		assert.Equal(t, ProfileLevels[i-1].MaxPoints+1, ProfileLevels[i].MinPoints,
			"gap between %s and %s", ProfileLevels[i-1].Name, ProfileLevels[i].Name)
	}
	assert.Equal(t, -1, ProfileLevels[len(ProfileLevels)-1].MaxPoints)
}

func TestLevelInfoFor(t *testing.T) {
	info := LevelInfoFor(authdomain.LevelGold)
	require.NotNil(t, info)
	assert.Equal(t, 500, info.MinPoints)
	assert.Equal(t, 999, info.MaxPoints)

	assert.Nil(t, LevelInfoFor(authdomain.ProfileLevel("platinum")))
}
