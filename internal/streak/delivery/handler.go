package delivery

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	streakdomain "taskstreak-backend/internal/streak/domain"
	"taskstreak-backend/internal/streak/usecase"
	"taskstreak-backend/pkg/cache"

	"github.com/gin-gonic/gin"
)

// StreakHandler handles streak and activity HTTP requests
type StreakHandler struct {
	streakUsecase usecase.StreakUsecase
	cache         *cache.Cache
}

// NewStreakHandler creates a new StreakHandler
func NewStreakHandler(streakUsecase usecase.StreakUsecase, c *cache.Cache) *StreakHandler {
	return &StreakHandler{
		streakUsecase: streakUsecase,
		cache:         c,
	}
}

type snapshotResponse struct {
	Success         bool                       `json:"success"`
	Streak          *usecase.StreakInfo        `json:"streak"`
	ActivityHistory []streakdomain.DayActivity `json:"activityHistory"`
}

type statsResponse struct {
	Success bool                 `json:"success"`
	Stats   *usecase.StreakStats `json:"stats"`
}

// GetStreak returns the streak summary plus dense day-by-day activity
// GET /api/streaks?year=2026
func (h *StreakHandler) GetStreak(c *gin.Context) {
	userID := c.GetString("userID")

	var year *int
	cacheKey := fmt.Sprintf("streak:%s:90d", userID)
	if y := c.Query("year"); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
			return
		}
		year = &parsed
		cacheKey = fmt.Sprintf("streak:%s:%d", userID, parsed)
	}

	var cached snapshotResponse
	if h.cache.Get(c.Request.Context(), cacheKey, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	info, activity, err := h.streakUsecase.GetSnapshot(userID, year)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch streak data"})
		return
	}

	resp := snapshotResponse{Success: true, Streak: info, ActivityHistory: activity}
	h.cache.Set(c.Request.Context(), cacheKey, resp)
	c.JSON(http.StatusOK, resp)
}

// GetStreakStats returns weekly/monthly totals plus streak and points
// GET /api/streaks/stats
func (h *StreakHandler) GetStreakStats(c *gin.Context) {
	userID := c.GetString("userID")
	cacheKey := "streakstats:" + userID

	var cached statsResponse
	if h.cache.Get(c.Request.Context(), cacheKey, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	stats, err := h.streakUsecase.GetStats(userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch streak statistics"})
		return
	}

	resp := statsResponse{Success: true, Stats: stats}
	h.cache.Set(c.Request.Context(), cacheKey, resp)
	c.JSON(http.StatusOK, resp)
}
