package main

import (
	"context"
	"log"
	"os"
	"time"

	api "taskstreak-backend/cmd/api"
	achvDelivery "taskstreak-backend/internal/achievement/delivery"
	achvdomain "taskstreak-backend/internal/achievement/domain"
	achvRepo "taskstreak-backend/internal/achievement/repository"
	achvUsecase "taskstreak-backend/internal/achievement/usecase"
	authDelivery "taskstreak-backend/internal/auth/delivery"
	authdomain "taskstreak-backend/internal/auth/domain"
	authRepo "taskstreak-backend/internal/auth/repository"
	authUsecase "taskstreak-backend/internal/auth/usecase"
	"taskstreak-backend/internal/quote"
	"taskstreak-backend/internal/reminder"
	streakDelivery "taskstreak-backend/internal/streak/delivery"
	streakdomain "taskstreak-backend/internal/streak/domain"
	streakRepo "taskstreak-backend/internal/streak/repository"
	streakUsecase "taskstreak-backend/internal/streak/usecase"
	taskDelivery "taskstreak-backend/internal/task/delivery"
	taskdomain "taskstreak-backend/internal/task/domain"
	taskRepo "taskstreak-backend/internal/task/repository"
	taskUsecase "taskstreak-backend/internal/task/usecase"
	"taskstreak-backend/pkg/cache"
	"taskstreak-backend/pkg/config"
	"taskstreak-backend/pkg/database"
	"taskstreak-backend/pkg/mailer"
	"taskstreak-backend/pkg/userlock"
)

func main() {
	// Load configuration
	cfg := config.Load()
	loc := cfg.Location()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(
		&authdomain.User{},
		&authdomain.RefreshToken{},
		&taskdomain.Task{},
		&streakdomain.ActivityDay{},
		&achvdomain.UserAchievement{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepo := authRepo.NewUserRepository(db)
	taskRepository := taskRepo.NewGormTaskRepository(db)
	activityRepo := streakRepo.NewGormActivityRepository(db)
	achievementRepo := achvRepo.NewGormAchievementRepository(db)

	// Shared per-user locks keep streak and achievement updates serialized
	locks := userlock.New()

	// Redis read cache (optional, nil when REDIS_ADDR is unset)
	readCache := cache.New(cfg.RedisAddr, cfg.RedisPassword, "taskstreak:", cfg.CacheTTL)
	if readCache == nil {
		log.Println("[Main] Redis not configured, read cache disabled")
	}

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepo, cfg)
	streakUsecaseInstance := streakUsecase.NewStreakUsecase(activityRepo, userRepo, taskRepository, locks, loc)
	achievementUsecaseInstance := achvUsecase.NewAchievementUsecase(achievementRepo, userRepo, streakUsecaseInstance, taskRepository, locks, loc)
	taskUsecaseInstance := taskUsecase.NewTaskUsecase(taskRepository, userRepo, loc)

	// Completing a task feeds the streak ledger and re-evaluates the
	// achievement catalog; either failing must not fail the task update
	taskUsecaseInstance.SetCompletionHook(func(userID string, task *taskdomain.Task) {
		completedAt := time.Now()
		if task.CompletedAt != nil {
			completedAt = *task.CompletedAt
		}
		if err := streakUsecaseInstance.RecordCompletion(userID, completedAt); err != nil {
			log.Printf("[Main] Failed to record completion for user %s: %v", userID, err)
		}
		if _, err := achievementUsecaseInstance.Evaluate(userID); err != nil {
			log.Printf("[Main] Failed to evaluate achievements for user %s: %v", userID, err)
		}
		invalidateUserCache(readCache, userID)
	})
	taskUsecaseInstance.SetUncompletionHook(func(userID string, task *taskdomain.Task) {
		invalidateUserCache(readCache, userID)
	})

	// Every successful login seeds the welcome badge if needed
	authUsecaseInstance.SetFirstLoginHook(func(userID string) {
		achievementUsecaseInstance.AwardFreshStart(userID)
	})

	// Reminder emails (daily digests + per-task reminders)
	mailSender := mailer.New(cfg)
	reminderScheduler := reminder.NewScheduler(taskRepository, userRepo, mailSender, loc)
	if cfg.SMTPUser != "" {
		if err := reminderScheduler.Start(); err != nil {
			log.Printf("[Main] Failed to start reminder scheduler: %v", err)
		}
	} else {
		log.Println("[Main] SMTP not configured, reminder scheduler disabled")
	}

	// Initialize HTTP handlers
	handler := api.NewHandler(
		authUsecaseInstance,
		authDelivery.NewAuthHandler(authUsecaseInstance),
		taskDelivery.NewTaskHandler(taskUsecaseInstance),
		streakDelivery.NewStreakHandler(streakUsecaseInstance, readCache),
		achvDelivery.NewAchievementHandler(achievementUsecaseInstance, readCache),
		quote.NewHandler(loc),
		cfg,
	)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := handler.Start(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// invalidateUserCache drops the user's cached read endpoints after a
// write that changes streaks, stats or achievements. Year-scoped
// snapshot keys are left to expire by TTL.
func invalidateUserCache(c *cache.Cache, userID string) {
	c.Invalidate(context.Background(),
		"streak:"+userID+":90d",
		"streakstats:"+userID,
		"achievements:"+userID,
	)
}
