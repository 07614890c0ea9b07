// Package query answers read-only questions against the full in-memory
// materialization of the content store. Every call re-reads and re-sorts
// the record set; there is no cache between the store and repeated calls.
package query

import (
	"sort"
	"strings"

	"github.com/owais-io/sixer/internal/models"
	"github.com/samber/lo"
)

const (
	// MinSearchLength is the minimum term length before a search scans.
	MinSearchLength = 2
	// MaxSearchResults caps the search result set.
	MaxSearchResults = 50
)

// ArticleSource provides the materialized record set.
type ArticleSource interface {
	All() ([]*models.Article, error)
}

// Service is the read-only query layer.
type Service struct {
	source ArticleSource
}

// NewService creates the query service over an article source.
func NewService(source ArticleSource) *Service {
	return &Service{source: source}
}

// All returns every record sorted by publication date, newest first.
func (s *Service) All() ([]*models.Article, error) {
	return s.source.All()
}

// Recent returns the newest records up to limit.
func (s *Service) Recent(limit int) ([]*models.Article, error) {
	articles, err := s.source.All()
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(articles) > limit {
		articles = articles[:limit]
	}
	return articles, nil
}

// BySection returns records whose section matches name case-insensitively.
func (s *Service) BySection(name string) ([]*models.Article, error) {
	articles, err := s.source.All()
	if err != nil {
		return nil, err
	}

	return lo.Filter(articles, func(a *models.Article, _ int) bool {
		return strings.EqualFold(a.Section, name)
	}), nil
}

// Search returns records whose title or section contains the term,
// case-insensitively, in store order. Terms shorter than MinSearchLength
// return an empty set without scanning; results are capped at
// MaxSearchResults.
func (s *Service) Search(term string) ([]*models.Article, error) {
	term = strings.TrimSpace(term)
	if len(term) < MinSearchLength {
		return []*models.Article{}, nil
	}

	articles, err := s.source.All()
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(term)
	matches := lo.Filter(articles, func(a *models.Article, _ int) bool {
		return strings.Contains(strings.ToLower(a.Title), needle) ||
			strings.Contains(strings.ToLower(a.Section), needle)
	})

	if len(matches) > MaxSearchResults {
		matches = matches[:MaxSearchResults]
	}
	return matches, nil
}

// TopSections counts records per section and returns the most populated
// sections, descending, up to limit.
func (s *Service) TopSections(limit int) ([]models.SectionCount, error) {
	articles, err := s.source.All()
	if err != nil {
		return nil, err
	}

	counts := lo.CountValuesBy(articles, func(a *models.Article) string {
		return a.Section
	})
	delete(counts, "")

	sections := make([]models.SectionCount, 0, len(counts))
	for name, count := range counts {
		sections = append(sections, models.SectionCount{Name: name, Count: count})
	}

	sort.Slice(sections, func(i, j int) bool {
		if sections[i].Count != sections[j].Count {
			return sections[i].Count > sections[j].Count
		}
		return sections[i].Name < sections[j].Name
	})

	if limit > 0 && len(sections) > limit {
		sections = sections[:limit]
	}
	return sections, nil
}

// Page is one slice of a paginated listing.
type Page struct {
	Articles      []*models.Article `json:"articles"`
	CurrentPage   int               `json:"current_page"`
	TotalPages    int               `json:"total_pages"`
	TotalArticles int               `json:"total_articles"`
	HasMore       bool              `json:"has_more"`
}

// Paginate slices a sorted list by simple offsets. Page numbers start at 1;
// out-of-range pages return an empty slice.
func Paginate(articles []*models.Article, page, pageSize int) Page {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}

	total := len(articles)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return Page{
		Articles:      articles[start:end],
		CurrentPage:   page,
		TotalPages:    totalPages,
		TotalArticles: total,
		HasMore:       end < total,
	}
}
