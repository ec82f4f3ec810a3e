package api

import (
	achvDelivery "taskstreak-backend/internal/achievement/delivery"
	authDelivery "taskstreak-backend/internal/auth/delivery"
	authUsecase "taskstreak-backend/internal/auth/usecase"
	"taskstreak-backend/internal/quote"
	streakDelivery "taskstreak-backend/internal/streak/delivery"
	taskDelivery "taskstreak-backend/internal/task/delivery"
	"taskstreak-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

// Handler bundles the per-module HTTP handlers and runs the server.
type Handler struct {
	authUsecase   authUsecase.AuthUsecase
	authHandler   *authDelivery.AuthHandler
	taskHandler   *taskDelivery.TaskHandler
	streakHandler *streakDelivery.StreakHandler
	achvHandler   *achvDelivery.AchievementHandler
	quoteHandler  *quote.Handler
	config        *config.Config
}

func NewHandler(
	authUc authUsecase.AuthUsecase,
	authHandler *authDelivery.AuthHandler,
	taskHandler *taskDelivery.TaskHandler,
	streakHandler *streakDelivery.StreakHandler,
	achvHandler *achvDelivery.AchievementHandler,
	quoteHandler *quote.Handler,
	cfg *config.Config,
) *Handler {
	return &Handler{
		authUsecase:   authUc,
		authHandler:   authHandler,
		taskHandler:   taskHandler,
		streakHandler: streakHandler,
		achvHandler:   achvHandler,
		quoteHandler:  quoteHandler,
		config:        cfg,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h)

	return r.Run(addr)
}
