package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/owais-io/sixer/internal/models"
	"github.com/owais-io/sixer/internal/query"
	"github.com/samber/lo"
)

const defaultRecentLimit = 10

// listArticles returns the full listing, newest first, paginated
// GET /api/v1/articles?page=&limit=
func (r *Router) listArticles(c *gin.Context) {
	page, limit := parsePagination(c)

	articles, err := r.queries.All()
	if err != nil {
		handleStoreError(c, err, "articles")
		return
	}

	result := query.Paginate(articles, page, limit)
	setReadCacheHeaders(c)
	c.JSON(http.StatusOK, gin.H{
		"articles": summaries(result.Articles),
		"pagination": gin.H{
			"current_page":   result.CurrentPage,
			"total_pages":    result.TotalPages,
			"total_articles": result.TotalArticles,
			"has_more":       result.HasMore,
		},
	})
}

// getRecentArticles returns the newest articles for the home page
// GET /api/v1/articles/recent?limit=
func (r *Router) getRecentArticles(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultRecentLimit)))
	if err != nil || limit < 1 {
		limit = defaultRecentLimit
	}

	articles, err := r.queries.Recent(limit)
	if err != nil {
		handleStoreError(c, err, "articles")
		return
	}

	setReadCacheHeaders(c)
	c.JSON(http.StatusOK, gin.H{
		"articles": summaries(articles),
		"count":    len(articles),
	})
}

// getArticle returns one article with its body
// GET /api/v1/articles/:slug
func (r *Router) getArticle(c *gin.Context) {
	article, err := r.store.GetBySlug(c.Param("slug"))
	if err != nil {
		handleStoreError(c, err, "article")
		return
	}

	setReadCacheHeaders(c)
	c.JSON(http.StatusOK, article)
}

// listTopSections returns the most populated sections
// GET /api/v1/sections
func (r *Router) listTopSections(c *gin.Context) {
	const topSectionsLimit = 10

	sections, err := r.queries.TopSections(topSectionsLimit)
	if err != nil {
		handleStoreError(c, err, "sections")
		return
	}

	setReadCacheHeaders(c)
	c.JSON(http.StatusOK, gin.H{
		"sections": sections,
		"count":    len(sections),
	})
}

// listSectionArticles returns one section's articles, paginated
// GET /api/v1/sections/:name/articles?page=&limit=
func (r *Router) listSectionArticles(c *gin.Context) {
	page, limit := parsePagination(c)

	articles, err := r.queries.BySection(c.Param("name"))
	if err != nil {
		handleStoreError(c, err, "section articles")
		return
	}

	result := query.Paginate(articles, page, limit)
	setReadCacheHeaders(c)
	c.JSON(http.StatusOK, gin.H{
		"section":  c.Param("name"),
		"articles": summaries(result.Articles),
		"pagination": gin.H{
			"current_page":   result.CurrentPage,
			"total_pages":    result.TotalPages,
			"total_articles": result.TotalArticles,
			"has_more":       result.HasMore,
		},
	})
}

// searchArticles returns title/section substring matches
// GET /api/v1/search?q=
func (r *Router) searchArticles(c *gin.Context) {
	term := c.Query("q")

	matches, err := r.queries.Search(term)
	if err != nil {
		handleStoreError(c, err, "search results")
		return
	}

	setReadCacheHeaders(c)
	c.JSON(http.StatusOK, gin.H{
		"query":   term,
		"results": summaries(matches),
		"count":   len(matches),
	})
}

// summaries maps full records to their listing projection.
func summaries(articles []*models.Article) []models.ArticleSummary {
	return lo.Map(articles, func(a *models.Article, _ int) models.ArticleSummary {
		return a.Summary()
	})
}
