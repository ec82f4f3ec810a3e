package quote

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Handler serves the quote endpoints.
type Handler struct {
	loc *time.Location
}

// NewHandler creates a quote Handler.
func NewHandler(loc *time.Location) *Handler {
	return &Handler{loc: loc}
}

// GetDailyQuote returns the quote of the day
// GET /api/quotes/daily
func (h *Handler) GetDailyQuote(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "quote": Daily(time.Now(), h.loc)})
}

// GetAllQuotes returns the full catalog
// GET /api/quotes
func (h *Handler) GetAllQuotes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "quotes": All()})
}
