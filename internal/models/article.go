package models

import "time"

// Article is the persistent content record. Records are immutable after
// creation; re-ingesting the same ExternalID is detected as a duplicate.
type Article struct {
	ExternalID   string    `json:"external_id"  yaml:"externalId"`
	Title        string    `json:"title"        yaml:"title"`
	Section      string    `json:"section"      yaml:"section"`
	PublishedAt  time.Time `json:"published_at" yaml:"publishedAt"`
	Slug         string    `json:"slug"         yaml:"slug"`
	ThumbnailURL string    `json:"thumbnail,omitempty"  yaml:"thumbnail,omitempty"`
	SourceURL    string    `json:"source_url"   yaml:"sourceUrl"`
	BodyText     string    `json:"body_text,omitempty"  yaml:"-"`
}

// ArticleSummary is the listing projection returned by list/search
// endpoints. It omits the body to keep list responses small.
type ArticleSummary struct {
	ExternalID   string    `json:"external_id"`
	Title        string    `json:"title"`
	Section      string    `json:"section"`
	PublishedAt  time.Time `json:"published_at"`
	Slug         string    `json:"slug"`
	ThumbnailURL string    `json:"thumbnail,omitempty"`
}

// Summary returns the listing projection of the article.
func (a *Article) Summary() ArticleSummary {
	return ArticleSummary{
		ExternalID:   a.ExternalID,
		Title:        a.Title,
		Section:      a.Section,
		PublishedAt:  a.PublishedAt,
		Slug:         a.Slug,
		ThumbnailURL: a.ThumbnailURL,
	}
}

// SectionCount is a section name with its article count, used by the
// top-sections endpoint and the home page.
type SectionCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
