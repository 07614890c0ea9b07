package store

import (
	"testing"
	"time"

	"github.com/owais-io/sixer/internal/logger"
	"github.com/owais-io/sixer/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()

	dir := t.TempDir()
	s, err := Open(dir, logger.NewNopLogger())
	require.NoError(t, err)
	return s, dir
}

func testArticle(externalID, title string, published time.Time) *models.Article {
	return &models.Article{
		ExternalID:  externalID,
		Title:       title,
		Section:     "World news",
		PublishedAt: published,
		Slug:        DeriveSlug(title),
		SourceURL:   "https://www.theguardian.com/" + externalID,
		BodyText:    "Body of " + title,
	}
}

func TestDeriveSlug(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple title", "Hello World", "hello-world"},
		{"punctuation stripped", "Hello, World: Again!", "hello-world-again"},
		{"already lower", "plain", "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveSlug(tt.title))
			// Derivation is deterministic.
			assert.Equal(t, DeriveSlug(tt.title), DeriveSlug(tt.title))
		})
	}
}

func TestSaveAndGetBySlug(t *testing.T) {
	s, _ := newTestStore(t)

	published := time.Date(2026, 8, 20, 10, 30, 0, 0, time.UTC)
	article := testArticle("world/2026/aug/20/example", "An Example Story", published)
	require.NoError(t, s.Save(article))

	got, err := s.GetBySlug("an-example-story")
	require.NoError(t, err)

	assert.Equal(t, article.ExternalID, got.ExternalID)
	assert.Equal(t, article.Title, got.Title)
	assert.Equal(t, article.Section, got.Section)
	assert.True(t, article.PublishedAt.Equal(got.PublishedAt))
	assert.Equal(t, article.SourceURL, got.SourceURL)
	assert.Equal(t, article.BodyText, got.BodyText)
}

func TestGetBySlugNotFound(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.GetBySlug("missing")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestSaveRejectsDuplicateExternalID(t *testing.T) {
	s, _ := newTestStore(t)

	published := time.Now().UTC()
	require.NoError(t, s.Save(testArticle("world/dup", "First Title", published)))

	err := s.Save(testArticle("world/dup", "Second Title", published))
	assert.ErrorIs(t, err, models.ErrAlreadyExists)
	assert.Equal(t, 1, s.Count())
}

func TestSaveRejectsSlugCollision(t *testing.T) {
	s, _ := newTestStore(t)

	published := time.Now().UTC()
	require.NoError(t, s.Save(testArticle("world/one", "Same Headline", published)))

	// A different external ID normalizing to the same slug is rejected as a
	// write error, not silently deduplicated.
	err := s.Save(testArticle("world/two", "Same Headline", published))
	assert.ErrorIs(t, err, models.ErrSlugTaken)

	assert.True(t, s.ExistsByExternalID("world/one"))
	assert.False(t, s.ExistsByExternalID("world/two"))
}

func TestAllSortsNewestFirst(t *testing.T) {
	s, _ := newTestStore(t)

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.Save(testArticle("a", "Oldest", base)))
	require.NoError(t, s.Save(testArticle("b", "Newest", base.Add(48*time.Hour))))
	require.NoError(t, s.Save(testArticle("c", "Middle", base.Add(24*time.Hour))))

	articles, err := s.All()
	require.NoError(t, err)
	require.Len(t, articles, 3)

	assert.Equal(t, "Newest", articles[0].Title)
	assert.Equal(t, "Middle", articles[1].Title)
	assert.Equal(t, "Oldest", articles[2].Title)
}

func TestIndexRebuiltOnReopen(t *testing.T) {
	s, dir := newTestStore(t)

	require.NoError(t, s.Save(testArticle("world/persist", "Persisted Story", time.Now().UTC())))

	reopened, err := Open(dir, logger.NewNopLogger())
	require.NoError(t, err)

	assert.Equal(t, 1, reopened.Count())
	assert.True(t, reopened.ExistsByExternalID("world/persist"))

	// Duplicate detection works across process restarts.
	err = reopened.Save(testArticle("world/persist", "Persisted Story", time.Now().UTC()))
	assert.ErrorIs(t, err, models.ErrAlreadyExists)
}

func TestClearAll(t *testing.T) {
	s, _ := newTestStore(t)

	now := time.Now().UTC()
	require.NoError(t, s.Save(testArticle("a", "One", now)))
	require.NoError(t, s.Save(testArticle("b", "Two", now)))

	removed, err := s.ClearAll()
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.Equal(t, 0, s.Count())

	articles, err := s.All()
	require.NoError(t, err)
	assert.Empty(t, articles)
}

func TestFrontMatterRoundTrip(t *testing.T) {
	article := &models.Article{
		ExternalID:   "sport/2026/aug/20/match-report",
		Title:        "Match Report: a \"quoted\" headline",
		Section:      "Sport",
		PublishedAt:  time.Date(2026, 8, 20, 18, 0, 0, 0, time.UTC),
		Slug:         "match-report-a-quoted-headline",
		ThumbnailURL: "https://media.example.com/thumb.jpg",
		SourceURL:    "https://www.theguardian.com/sport/2026/aug/20/match-report",
		BodyText:     "First paragraph.\n\nSecond paragraph.",
	}

	data, err := encodeArticle(article)
	require.NoError(t, err)

	decoded, err := decodeArticle(data)
	require.NoError(t, err)

	assert.Equal(t, article.ExternalID, decoded.ExternalID)
	assert.Equal(t, article.Title, decoded.Title)
	assert.Equal(t, article.ThumbnailURL, decoded.ThumbnailURL)
	assert.Equal(t, article.BodyText, decoded.BodyText)
}

func TestDecodeArticleRejectsMissingFrontMatter(t *testing.T) {
	_, err := decodeArticle([]byte("just some text"))
	assert.Error(t, err)

	_, err = decodeArticle([]byte("---\ntitle: unterminated\n"))
	assert.Error(t, err)
}
