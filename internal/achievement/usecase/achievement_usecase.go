package usecase

import (
	"errors"
	"log"
	"time"

	"taskstreak-backend/internal/achievement/catalog"
	achvdomain "taskstreak-backend/internal/achievement/domain"
	achvrepo "taskstreak-backend/internal/achievement/repository"
	authrepo "taskstreak-backend/internal/auth/repository"
	"taskstreak-backend/internal/stats"
	streakdomain "taskstreak-backend/internal/streak/domain"
	taskdomain "taskstreak-backend/internal/task/domain"
	"taskstreak-backend/pkg/userlock"
)

var ErrUserNotFound = errors.New("user not found")

// TaskSource is the slice of the task repository stats computation needs.
type TaskSource interface {
	FindAllByUser(userID string) ([]*taskdomain.Task, error)
}

// ActivityHistory supplies the per-day completion ledger, reconciled with
// task records for users who predate it.
type ActivityHistory interface {
	FullHistory(userID string) ([]*streakdomain.ActivityDay, error)
}

// achievementUsecase implements AchievementUsecase
type achievementUsecase struct {
	achvRepo   achvrepo.AchievementRepository
	userRepo   authrepo.UserRepository
	history    ActivityHistory
	taskSource TaskSource
	locks      *userlock.Registry
	loc        *time.Location
}

// NewAchievementUsecase creates a new instance of achievementUsecase
func NewAchievementUsecase(achvRepo achvrepo.AchievementRepository, userRepo authrepo.UserRepository, history ActivityHistory, taskSource TaskSource, locks *userlock.Registry, loc *time.Location) AchievementUsecase {
	return &achievementUsecase{
		achvRepo:   achvRepo,
		userRepo:   userRepo,
		history:    history,
		taskSource: taskSource,
		locks:      locks,
		loc:        loc,
	}
}

func (u *achievementUsecase) Evaluate(userID string) (*EvaluationResult, error) {
	unlock := u.locks.Lock(userID)
	defer unlock()

	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	existing, err := u.achvRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	unlockedIDs := make(map[string]bool, len(existing))
	for _, a := range existing {
		unlockedIDs[a.BadgeID] = true
	}

	// One stats snapshot shared by every condition in this pass. Computed
	// lazily: a pass where only user-state conditions remain locked skips
	// the task scan entirely.
	var snapshot *stats.Snapshot
	loadStats := func() (*stats.Snapshot, error) {
		if snapshot != nil {
			return snapshot, nil
		}
		history, err := u.history.FullHistory(userID)
		if err != nil {
			return nil, err
		}
		tasks, err := u.taskSource.FindAllByUser(userID)
		if err != nil {
			return nil, err
		}
		s := stats.Compute(history, tasks, time.Now(), u.loc)
		snapshot = &s
		return snapshot, nil
	}

	now := time.Now()
	var newRows []*achvdomain.UserAchievement
	var newlyUnlocked []UnlockedAchievement

	// Catalog declaration order decides unlock ordering within one pass
	for _, def := range catalog.Achievements {
		if unlockedIDs[def.ID] {
			continue
		}

		var s *stats.Snapshot
		if def.Condition.RequiresStats() {
			s, err = loadStats()
			if err != nil {
				return nil, err
			}
		}
		if !def.Condition.Satisfied(user, s) {
			continue
		}

		newRows = append(newRows, &achvdomain.UserAchievement{
			UserID:     userID,
			BadgeID:    def.ID,
			UnlockedAt: now,
		})
		newlyUnlocked = append(newlyUnlocked, UnlockedAchievement{Definition: def, UnlockedAt: now})
		unlockedIDs[def.ID] = true
	}

	// Recompute points from the full unlocked set so the stored total
	// always equals the sum of catalog points, repairing any drift.
	totalPoints := 0
	for id := range unlockedIDs {
		if def := catalog.ByID(id); def != nil {
			totalPoints += def.Points
		}
	}
	level := catalog.LevelFor(totalPoints)

	if len(newRows) > 0 {
		if err := u.achvRepo.InsertIfAbsent(newRows); err != nil {
			return nil, err
		}
		// Scoped to the achievement columns; a full-row save would revert
		// task points incremented since the load above.
		if err := u.userRepo.UpdateAchievementStanding(userID, totalPoints, level); err != nil {
			return nil, err
		}
		log.Printf("[Achievements] user %s unlocked %d badges, total points %d (%s)", userID, len(newRows), totalPoints, level)
	}

	return &EvaluationResult{
		NewlyUnlocked: newlyUnlocked,
		TotalPoints:   totalPoints,
		ProfileLevel:  level,
	}, nil
}

func (u *achievementUsecase) AwardFreshStart(userID string) {
	unlock := u.locks.Lock(userID)
	defer unlock()

	existing, err := u.achvRepo.FindByUser(userID)
	if err != nil {
		log.Printf("[Achievements] fresh start check failed for user %s: %v", userID, err)
		return
	}
	if len(existing) > 0 {
		return
	}

	def := catalog.ByID(catalog.FreshStartID)
	if def == nil {
		return
	}

	row := &achvdomain.UserAchievement{
		UserID:     userID,
		BadgeID:    def.ID,
		UnlockedAt: time.Now(),
	}
	if err := u.achvRepo.InsertIfAbsent([]*achvdomain.UserAchievement{row}); err != nil {
		log.Printf("[Achievements] failed to seed fresh start for user %s: %v", userID, err)
		return
	}

	if err := u.userRepo.UpdateAchievementStanding(userID, def.Points, catalog.LevelFor(def.Points)); err != nil {
		log.Printf("[Achievements] failed to save fresh start points for user %s: %v", userID, err)
	}
}

func (u *achievementUsecase) ListAll(userID string) (*AchievementsList, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	unlocks, err := u.achvRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*achvdomain.UserAchievement, len(unlocks))
	for _, a := range unlocks {
		byID[a.BadgeID] = a
	}

	annotated := make([]AnnotatedAchievement, 0, len(catalog.Achievements))
	for _, def := range catalog.Achievements {
		entry := AnnotatedAchievement{Definition: def}
		if ua := byID[def.ID]; ua != nil {
			entry.Unlocked = true
			unlockedAt := ua.UnlockedAt
			entry.UnlockedAt = &unlockedAt
			entry.Notified = ua.Notified
		}
		annotated = append(annotated, entry)
	}

	return &AchievementsList{
		Achievements:  annotated,
		TotalPoints:   user.AchievementPoints,
		ProfileLevel:  user.ProfileLevel,
		UnlockedCount: len(unlocks),
		TotalCount:    len(catalog.Achievements),
	}, nil
}

func (u *achievementUsecase) ListUnnotified(userID string) ([]UnlockedAchievement, error) {
	unlocks, err := u.achvRepo.FindUnnotified(userID)
	if err != nil {
		return nil, err
	}

	result := make([]UnlockedAchievement, 0, len(unlocks))
	for _, ua := range unlocks {
		def := catalog.ByID(ua.BadgeID)
		if def == nil {
			// Badge dropped from the catalog; nothing sensible to show
			continue
		}
		result = append(result, UnlockedAchievement{Definition: *def, UnlockedAt: ua.UnlockedAt})
	}
	return result, nil
}

func (u *achievementUsecase) MarkNotified(userID string, badgeIDs []string) error {
	return u.achvRepo.MarkNotified(userID, badgeIDs)
}

func (u *achievementUsecase) GetProfileStats(userID string) (*ProfileStats, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	unlocks, err := u.achvRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	history, err := u.history.FullHistory(userID)
	if err != nil {
		return nil, err
	}
	totalCompleted := 0
	for _, day := range history {
		totalCompleted += day.TasksCompleted
	}

	return &ProfileStats{
		AchievementPoints:   user.AchievementPoints,
		ProfileLevel:        user.ProfileLevel,
		ProfileLevelData:    catalog.LevelInfoFor(user.ProfileLevel),
		UnlockedCount:       len(unlocks),
		TotalAchievements:   len(catalog.Achievements),
		CurrentStreak:       user.CurrentStreak,
		LongestStreak:       user.LongestStreak,
		TotalTasksCompleted: totalCompleted,
	}, nil
}
