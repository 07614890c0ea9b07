package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/owais-io/sixer/internal/guardian"
	"github.com/owais-io/sixer/internal/models"
)

const wireDateFormat = "2006-01-02"

// fetchArticles triggers one ingestion run
// POST /api/v1/admin/fetch-articles
func (r *Router) fetchArticles(c *gin.Context) {
	var req models.FetchArticlesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	from, err := time.Parse(wireDateFormat, req.FromDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid from_date, expected YYYY-MM-DD",
		})
		return
	}
	to, err := time.Parse(wireDateFormat, req.ToDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid to_date, expected YYYY-MM-DD",
		})
		return
	}

	stats, err := r.ingest.Run(c.Request.Context(), guardian.FetchRequest{
		From:        from,
		To:          to,
		Section:     req.Section,
		Keyword:     req.Keyword,
		MaxArticles: req.MaxArticles,
	})
	if err != nil {
		switch {
		case errors.Is(err, models.ErrIngestInProgress):
			c.JSON(http.StatusConflict, gin.H{
				"error": err.Error(),
			})
		case errors.Is(err, guardian.ErrInvalidRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
		default:
			// Validation failures never reach the provider; everything else
			// here is an upstream fetch problem.
			c.JSON(http.StatusBadGateway, gin.H{
				"error":   "Failed to fetch articles from provider",
				"details": err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats":   stats,
		"message": stats.Message(),
	})
}

// clearArticles irreversibly deletes every content store record
// DELETE /api/v1/admin/articles
func (r *Router) clearArticles(c *gin.Context) {
	removed, err := r.store.ClearAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to clear content store",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"removed": removed,
		"message": "All articles deleted",
	})
}
