package api

import (
	"net/http"

	"taskstreak-backend/internal/auth/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *Handler) {
	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.authHandler.Register)
			auth.POST("/login", h.authHandler.Login)
			auth.POST("/refresh", h.authHandler.RefreshToken)
			auth.POST("/logout", h.authHandler.Logout)
			auth.GET("/me", delivery.AuthMiddleware(h.authUsecase), h.authHandler.Me)
			auth.POST("/change-password", delivery.AuthMiddleware(h.authUsecase), h.authHandler.ChangePassword)
		}

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			tasks.GET("", h.taskHandler.GetTasks)
			tasks.POST("", h.taskHandler.CreateTask)
			tasks.GET("/today", h.taskHandler.GetTodayTasks)
			tasks.GET("/stats", h.taskHandler.GetTaskStats)
			tasks.GET("/:id", h.taskHandler.GetTaskByID)
			tasks.PUT("/:id", h.taskHandler.UpdateTask)
			tasks.DELETE("/:id", h.taskHandler.DeleteTask)
			tasks.PATCH("/:id/status", h.taskHandler.UpdateTaskStatus)
		}

		// Streak routes (protected)
		streaks := api.Group("/streaks")
		streaks.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			streaks.GET("", h.streakHandler.GetStreak)
			streaks.GET("/stats", h.streakHandler.GetStreakStats)
		}

		// Achievement routes (protected)
		achievements := api.Group("/achievements")
		achievements.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			achievements.GET("", h.achvHandler.GetAllAchievements)
			achievements.POST("/check", h.achvHandler.CheckAchievements)
			achievements.GET("/unnotified", h.achvHandler.GetUnnotified)
			achievements.POST("/mark-notified", h.achvHandler.MarkNotified)
			achievements.GET("/profile-stats", h.achvHandler.GetProfileStats)
		}

		// Quote routes (public)
		quotes := api.Group("/quotes")
		{
			quotes.GET("", h.quoteHandler.GetAllQuotes)
			quotes.GET("/daily", h.quoteHandler.GetDailyQuote)
		}
	}
}
