// Package web serves the server-rendered HTML pages. The pages are thin
// glue over the query layer; layout and styling are intentionally minimal.
package web

import (
	"embed"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/owais-io/sixer/internal/models"
	"github.com/owais-io/sixer/internal/query"
	"github.com/owais-io/sixer/internal/store"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const (
	homeRecentLimit  = 10
	homeSectionLimit = 10
	sectionPageSize  = 12
)

type pages struct {
	queries *query.Service
	store   *store.Store
}

// RegisterPages mounts the HTML routes on the engine. adminGuard protects
// the admin dashboard with the same allow-list as the admin API.
func RegisterPages(router *gin.Engine, queries *query.Service, contentStore *store.Store, adminGuard gin.HandlerFunc) {
	tmpl := template.Must(template.New("").Funcs(template.FuncMap{
		"fmtDate": func(a *models.Article) string {
			return a.PublishedAt.Format("2 January 2006")
		},
		"add": func(a, b int) int { return a + b },
	}).ParseFS(templateFS, "templates/*.tmpl"))
	router.SetHTMLTemplate(tmpl)

	p := &pages{queries: queries, store: contentStore}

	router.GET("/", p.home)
	router.GET("/section/:name", p.section)
	router.GET("/article/:slug", p.article)
	router.GET("/search", p.search)
	router.GET("/admin", adminGuard, p.admin)
}

func (p *pages) home(c *gin.Context) {
	recent, err := p.queries.Recent(homeRecentLimit)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.tmpl", gin.H{"Message": "Failed to load articles"})
		return
	}

	sections, err := p.queries.TopSections(homeSectionLimit)
	if err != nil {
		sections = nil
	}

	c.HTML(http.StatusOK, "home.tmpl", gin.H{
		"Articles": recent,
		"Sections": sections,
	})
}

func (p *pages) section(c *gin.Context) {
	name := c.Param("name")

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	articles, err := p.queries.BySection(name)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.tmpl", gin.H{"Message": "Failed to load section"})
		return
	}

	result := query.Paginate(articles, page, sectionPageSize)
	c.HTML(http.StatusOK, "section.tmpl", gin.H{
		"Section": name,
		"Page":    result,
	})
}

func (p *pages) article(c *gin.Context) {
	article, err := p.store.GetBySlug(c.Param("slug"))
	if err != nil {
		c.HTML(http.StatusNotFound, "error.tmpl", gin.H{"Message": "Article not found"})
		return
	}

	c.HTML(http.StatusOK, "article.tmpl", gin.H{"Article": article})
}

func (p *pages) search(c *gin.Context) {
	term := c.Query("q")

	results, err := p.queries.Search(term)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.tmpl", gin.H{"Message": "Search failed"})
		return
	}

	c.HTML(http.StatusOK, "search.tmpl", gin.H{
		"Query":   term,
		"Results": results,
	})
}

func (p *pages) admin(c *gin.Context) {
	c.HTML(http.StatusOK, "admin.tmpl", gin.H{
		"ArticleCount": p.store.Count(),
	})
}
