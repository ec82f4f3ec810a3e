package catalog

import authdomain "taskstreak-backend/internal/auth/domain"

// FreshStartID is awarded on first login rather than by evaluation.
const FreshStartID = "fresh_start"

// Achievements is the full catalog in declaration order. Evaluation order
// follows this order, which fixes unlock ordering when several achievements
// unlock in one pass.
var Achievements = []Definition{
	// Streak achievements
	{
		ID:          "first_day",
		Name:        "Getting Started",
		Description: "Complete your first day streak",
		Icon:        "🔥",
		Category:    CategoryStreak,
		Rarity:      RarityCommon,
		Points:      5,
		Condition:   Condition{Kind: CondStreakAtLeast, Threshold: 1},
	},
	{
		ID:          "three_day_streak",
		Name:        "Consistency",
		Description: "Maintain a 3-day streak",
		Icon:        "🔥",
		Category:    CategoryStreak,
		Rarity:      RarityCommon,
		Points:      10,
		Condition:   Condition{Kind: CondStreakAtLeast, Threshold: 3},
	},
	{
		ID:          "week_warrior",
		Name:        "Week Warrior",
		Description: "Complete 7-day streak",
		Icon:        "🔥",
		Category:    CategoryStreak,
		Rarity:      RarityRare,
		Points:      25,
		Condition:   Condition{Kind: CondStreakAtLeast, Threshold: 7},
	},
	{
		ID:          "fortnight_fighter",
		Name:        "Fortnight Fighter",
		Description: "Complete 14-day streak",
		Icon:        "🔥",
		Category:    CategoryStreak,
		Rarity:      RarityRare,
		Points:      50,
		Condition:   Condition{Kind: CondStreakAtLeast, Threshold: 14},
	},
	{
		ID:          "monthly_master",
		Name:        "Monthly Master",
		Description: "Complete 30-day streak",
		Icon:        "🔥",
		Category:    CategoryStreak,
		Rarity:      RarityEpic,
		Points:      100,
		Condition:   Condition{Kind: CondStreakAtLeast, Threshold: 30},
	},
	{
		ID:          "quarter_champion",
		Name:        "Quarter Champion",
		Description: "Complete 90-day streak",
		Icon:        "🔥",
		Category:    CategoryStreak,
		Rarity:      RarityEpic,
		Points:      200,
		Condition:   Condition{Kind: CondStreakAtLeast, Threshold: 90},
	},
	{
		ID:          "legendary_streak",
		Name:        "Legendary",
		Description: "Complete 365-day streak",
		Icon:        "🔥",
		Category:    CategoryStreak,
		Rarity:      RarityLegendary,
		Points:      500,
		Condition:   Condition{Kind: CondStreakAtLeast, Threshold: 365},
	},
	{
		ID:          "streak_record",
		Name:        "Unstoppable",
		Description: "Break your longest streak record",
		Icon:        "💪",
		Category:    CategoryStreak,
		Rarity:      RarityEpic,
		Points:      100,
		Condition:   Condition{Kind: CondStreakRecord},
	},

	// Task volume achievements
	{
		ID:          "first_task",
		Name:        "First Step",
		Description: "Complete your first task",
		Icon:        "✅",
		Category:    CategoryTasks,
		Rarity:      RarityCommon,
		Points:      5,
		Condition:   Condition{Kind: CondStatAtLeast, Stat: StatTotalCompleted, Threshold: 1},
	},
	{
		ID:          "ten_tasks",
		Name:        "Getting Things Done",
		Description: "Complete 10 tasks",
		Icon:        "✅",
		Category:    CategoryTasks,
		Rarity:      RarityCommon,
		Points:      10,
		Condition:   Condition{Kind: CondStatAtLeast, Stat: StatTotalCompleted, Threshold: 10},
	},
	{
		ID:          "fifty_tasks",
		Name:        "Half Century",
		Description: "Complete 50 tasks",
		Icon:        "✅",
		Category:    CategoryTasks,
		Rarity:      RarityRare,
		Points:      25,
		Condition:   Condition{Kind: CondStatAtLeast, Stat: StatTotalCompleted, Threshold: 50},
	},
	{
		ID:          "century_club",
		Name:        "Century Club",
		Description: "Complete 100 tasks",
		Icon:        "✅",
		Category:    CategoryTasks,
		Rarity:      RarityRare,
		Points:      50,
		Condition:   Condition{Kind: CondStatAtLeast, Stat: StatTotalCompleted, Threshold: 100},
	},
	{
		ID:          "productivity_beast",
		Name:        "Productivity Beast",
		Description: "Complete 500 tasks",
		Icon:        "✅",
		Category:    CategoryTasks,
		Rarity:      RarityEpic,
		Points:      150,
		Condition:   Condition{Kind: CondStatAtLeast, Stat: StatTotalCompleted, Threshold: 500},
	},
	{
		ID:          "task_master",
		Name:        "Task Master",
		Description: "Complete 1,000 tasks",
		Icon:        "✅",
		Category:    CategoryTasks,
		Rarity:      RarityLegendary,
		Points:      300,
		Condition:   Condition{Kind: CondStatAtLeast, Stat: StatTotalCompleted, Threshold: 1000},
	},

	// Speed & timing achievements
	{
		ID:          "early_bird",
		Name:        "Early Bird",
		Description: "Complete 5 tasks before 8 AM",
		Icon:        "⏰",
		Category:    CategoryTiming,
		Rarity:      RarityRare,
		Points:      30,
		Condition:   Condition{Kind: CondStatAtLeast, Stat: StatEarlyBird, Threshold: 5},
	},
	{
		ID:          "night_owl",
		Name:        "Night Owl",
		Description: "Complete 5 tasks after 10 PM",
		Icon:        "🌙",
		Category:    CategoryTiming,
		Rarity:      RarityRare,
		Points:      30,
		Condition:   Condition{Kind: CondStatAtLeast, Stat: StatNightOwl, Threshold: 5},
	},
	{
		ID:          "speed_demon",
		Name:        "Speed Demon",
		Description: "Complete 10 tasks in one day",
		Icon:        "⚡",
		Category:    CategoryTiming,
		Rarity:      RarityEpic,
		Points:      50,
		Condition:   Condition{Kind: CondStatAtLeast, Stat: StatMaxTasksInDay, Threshold: 10},
	},
	{
		ID:          "perfect_week",
		Name:        "Perfect Week",
		Description: "Complete all tasks for a week",
		Icon:        "🎯",
		Category:    CategoryTiming,
		Rarity:      RarityEpic,
		Points:      75,
		Condition:   Condition{Kind: CondStatAtLeast, Stat: StatPerfectWeeks, Threshold: 1},
	},

	// Priority mastery
	{
		ID:          "priority_pro",
		Name:        "Priority Pro",
		Description: "Complete 50 high-priority tasks",
		Icon:        "🔴",
		Category:    CategoryPriority,
		Rarity:      RarityRare,
		Points:      40,
		Condition:   Condition{Kind: CondStatAtLeast, Stat: StatHighPriority, Threshold: 50},
	},
	{
		ID:          "balanced",
		Name:        "Balanced",
		Description: "Complete 20 tasks of each priority",
		Icon:        "⚖️",
		Category:    CategoryPriority,
		Rarity:      RarityEpic,
		Points:      60,
		Condition: Condition{Kind: CondStatsAllAtLeast, All: []StatThreshold{
			{Stat: StatHighPriority, Threshold: 20},
			{Stat: StatMediumPriority, Threshold: 20},
			{Stat: StatLowPriority, Threshold: 20},
		}},
	},

	// Weekly performance
	{
		ID:          "power_week",
		Name:        "Power Week",
		Description: "Complete 20+ tasks in a week",
		Icon:        "💪",
		Category:    CategoryWeekly,
		Rarity:      RarityRare,
		Points:      35,
		Condition:   Condition{Kind: CondStatAtLeast, Stat: StatMaxWeeklyTasks, Threshold: 20},
	},
	{
		ID:          "personal_best",
		Name:        "Personal Best",
		Description: "Set a new weekly record",
		Icon:        "🏅",
		Category:    CategoryWeekly,
		Rarity:      RarityEpic,
		Points:      50,
		Condition:   Condition{Kind: CondWeeklyRecordBroken},
	},

	// Special achievements
	{
		ID:          FreshStartID,
		Name:        "Fresh Start",
		Description: "Welcome! Start your journey",
		Icon:        "🌅",
		Category:    CategorySpecial,
		Rarity:      RarityCommon,
		Points:      5,
		Condition:   Condition{Kind: CondAlways},
	},
	{
		ID:          "organized",
		Name:        "Organized",
		Description: "Create 10 tasks in one session",
		Icon:        "📝",
		Category:    CategorySpecial,
		Rarity:      RarityCommon,
		Points:      15,
		Condition:   Condition{Kind: CondStatAtLeast, Stat: StatTasksCreatedInSession, Threshold: 10},
	},
	{
		ID:          "point_milestone_1k",
		Name:        "Point Master",
		Description: "Earn 1,000 points",
		Icon:        "💎",
		Category:    CategorySpecial,
		Rarity:      RarityEpic,
		Points:      100,
		Condition:   Condition{Kind: CondPointsAtLeast, Threshold: 1000},
	},
}

// ByID returns the catalog definition for id, nil when unknown.
func ByID(id string) *Definition {
	for i := range Achievements {
		if Achievements[i].ID == id {
			return &Achievements[i]
		}
	}
	return nil
}

// CategoryInfo describes how a category is displayed.
type CategoryInfo struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

var Categories = map[Category]CategoryInfo{
	CategoryStreak:   {Name: "Streak", Color: "orange", Icon: "🔥"},
	CategoryTasks:    {Name: "Tasks", Color: "blue", Icon: "✅"},
	CategoryTiming:   {Name: "Timing", Color: "purple", Icon: "⏰"},
	CategoryPriority: {Name: "Priority", Color: "red", Icon: "🎯"},
	CategoryWeekly:   {Name: "Weekly", Color: "green", Icon: "📊"},
	CategorySpecial:  {Name: "Special", Color: "yellow", Icon: "🌟"},
}

// RarityInfo describes how a rarity tier is displayed.
type RarityInfo struct {
	Name       string `json:"name"`
	Color      string `json:"color"`
	Percentage int    `json:"percentage"`
}

var Rarities = map[Rarity]RarityInfo{
	RarityCommon:    {Name: "Common", Color: "gray", Percentage: 70},
	RarityRare:      {Name: "Rare", Color: "blue", Percentage: 20},
	RarityEpic:      {Name: "Epic", Color: "purple", Percentage: 8},
	RarityLegendary: {Name: "Legendary", Color: "gold", Percentage: 2},
}

// ProfileLevelInfo is one tier of the points-derived profile level.
// Tiers are contiguous and exhaustive over non-negative point totals.
type ProfileLevelInfo struct {
	Level     authdomain.ProfileLevel `json:"level"`
	Name      string                  `json:"name"`
	Icon      string                  `json:"icon"`
	MinPoints int                     `json:"minPoints"`
	MaxPoints int                     `json:"maxPoints"` // -1 means unbounded
}

var ProfileLevels = []ProfileLevelInfo{
	{Level: authdomain.LevelBronze, Name: "Bronze", Icon: "🥉", MinPoints: 0, MaxPoints: 99},
	{Level: authdomain.LevelSilver, Name: "Silver", Icon: "🥈", MinPoints: 100, MaxPoints: 499},
	{Level: authdomain.LevelGold, Name: "Gold", Icon: "🥇", MinPoints: 500, MaxPoints: 999},
	{Level: authdomain.LevelDiamond, Name: "Diamond", Icon: "💎", MinPoints: 1000, MaxPoints: -1},
}

// LevelFor maps an achievement point total to its profile level.
func LevelFor(points int) authdomain.ProfileLevel {
	for _, l := range ProfileLevels {
		if points >= l.MinPoints && (l.MaxPoints < 0 || points <= l.MaxPoints) {
			return l.Level
		}
	}
	return authdomain.LevelBronze
}

// LevelInfoFor returns the full tier description for a profile level.
func LevelInfoFor(level authdomain.ProfileLevel) *ProfileLevelInfo {
	for i := range ProfileLevels {
		if ProfileLevels[i].Level == level {
			return &ProfileLevels[i]
		}
	}
	return nil
}
