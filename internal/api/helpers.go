package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/owais-io/sixer/internal/models"
)

const (
	defaultPageSize = 12
	maxPageSize     = 50

	// readCacheControl mirrors the framework-default caching the site ran
	// with: five-minute shared cache with stale-while-revalidate.
	readCacheControl = "s-maxage=300, stale-while-revalidate=600"
)

// parsePagination reads page/limit query parameters with defaults and caps.
func parsePagination(c *gin.Context) (page, limit int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
	if err != nil || limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	return page, limit
}

// handleStoreError maps store/pipeline errors to HTTP responses.
func handleStoreError(c *gin.Context, err error, resource string) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": resource + " not found",
		})
	case errors.Is(err, models.ErrIngestInProgress):
		c.JSON(http.StatusConflict, gin.H{
			"error": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to read " + resource,
		})
	}
}

// setReadCacheHeaders applies the shared cache policy to read endpoints.
func setReadCacheHeaders(c *gin.Context) {
	c.Header("Cache-Control", readCacheControl)
}
