package delivery

import (
	"errors"
	"net/http"

	"taskstreak-backend/internal/achievement/usecase"
	"taskstreak-backend/pkg/cache"

	"github.com/gin-gonic/gin"
)

// AchievementHandler handles achievement HTTP requests
type AchievementHandler struct {
	achievementUsecase usecase.AchievementUsecase
	cache              *cache.Cache
}

// NewAchievementHandler creates a new AchievementHandler
func NewAchievementHandler(achievementUsecase usecase.AchievementUsecase, c *cache.Cache) *AchievementHandler {
	return &AchievementHandler{
		achievementUsecase: achievementUsecase,
		cache:              c,
	}
}

// CheckAchievements evaluates the catalog and awards new unlocks
// POST /api/achievements/check
func (h *AchievementHandler) CheckAchievements(c *gin.Context) {
	userID := c.GetString("userID")

	result, err := h.achievementUsecase.Evaluate(userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error checking achievements"})
		return
	}

	if len(result.NewlyUnlocked) > 0 {
		h.cache.Invalidate(c.Request.Context(), "achievements:"+userID)
	}

	c.JSON(http.StatusOK, result)
}

// GetAllAchievements returns the full catalog with unlock state
// GET /api/achievements
func (h *AchievementHandler) GetAllAchievements(c *gin.Context) {
	userID := c.GetString("userID")
	cacheKey := "achievements:" + userID

	var cached usecase.AchievementsList
	if h.cache.Get(c.Request.Context(), cacheKey, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	list, err := h.achievementUsecase.ListAll(userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error getting achievements"})
		return
	}

	h.cache.Set(c.Request.Context(), cacheKey, list)
	c.JSON(http.StatusOK, list)
}

// GetUnnotified returns unlocked-but-unseen achievements
// GET /api/achievements/unnotified
func (h *AchievementHandler) GetUnnotified(c *gin.Context) {
	userID := c.GetString("userID")

	unnotified, err := h.achievementUsecase.ListUnnotified(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error getting unnotified achievements"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"unnotified": unnotified})
}

// MarkNotifiedRequest is the body for the mark-notified endpoint
type MarkNotifiedRequest struct {
	AchievementIDs []string `json:"achievementIds" binding:"required"`
}

// MarkNotified flips the notified flag after the client shows the unlock UI
// POST /api/achievements/mark-notified
func (h *AchievementHandler) MarkNotified(c *gin.Context) {
	userID := c.GetString("userID")

	var req MarkNotifiedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.achievementUsecase.MarkNotified(userID, req.AchievementIDs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error marking notifications"})
		return
	}

	h.cache.Invalidate(c.Request.Context(), "achievements:"+userID)
	c.JSON(http.StatusOK, gin.H{"message": "Achievements marked as notified"})
}

// GetProfileStats returns the profile gamification summary
// GET /api/achievements/profile-stats
func (h *AchievementHandler) GetProfileStats(c *gin.Context) {
	userID := c.GetString("userID")

	profile, err := h.achievementUsecase.GetProfileStats(userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error getting profile stats"})
		return
	}

	c.JSON(http.StatusOK, profile)
}
