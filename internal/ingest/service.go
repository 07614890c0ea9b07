// Package ingest orchestrates one ingestion run: fetch from the provider,
// deduplicate against the content store, and write new records with
// per-article fault isolation.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/owais-io/sixer/internal/guardian"
	"github.com/owais-io/sixer/internal/logger"
	"github.com/owais-io/sixer/internal/metrics"
	"github.com/owais-io/sixer/internal/models"
	"github.com/owais-io/sixer/internal/store"
)

// Fetcher retrieves raw provider articles for a date range.
type Fetcher interface {
	Fetch(ctx context.Context, req guardian.FetchRequest) ([]guardian.RawArticle, error)
}

// ContentStore is the subset of store operations the pipeline needs.
type ContentStore interface {
	ExistsByExternalID(externalID string) bool
	Save(article *models.Article) error
}

// Service runs ingestion. Runs are mutually exclusive: a trigger while
// another run is in flight fails with models.ErrIngestInProgress rather
// than racing on the duplicate check.
type Service struct {
	fetcher Fetcher
	store   ContentStore
	metrics *metrics.Metrics
	logger  logger.Logger

	mu sync.Mutex
}

// NewService creates the ingestion service. metrics may be nil.
func NewService(fetcher Fetcher, contentStore ContentStore, m *metrics.Metrics, log logger.Logger) *Service {
	return &Service{
		fetcher: fetcher,
		store:   contentStore,
		metrics: m,
		logger:  log,
	}
}

// Run executes one ingestion run. A fetch failure aborts the run with
// nothing written; a per-record write failure is counted and the batch
// continues.
func (s *Service) Run(ctx context.Context, req guardian.FetchRequest) (models.FetchStats, error) {
	if !s.mu.TryLock() {
		return models.FetchStats{}, models.ErrIngestInProgress
	}
	defer s.mu.Unlock()

	runID := uuid.New().String()
	log := s.logger.With(logger.String("run_id", runID))

	log.Info("Ingestion run started",
		logger.Time("from", req.From),
		logger.Time("to", req.To),
		logger.String("section", req.Section),
		logger.String("keyword", req.Keyword),
	)

	raw, err := s.fetcher.Fetch(ctx, req)
	if err != nil {
		s.observeRun("failed")
		log.Error("Ingestion run aborted", logger.Error(err))
		return models.FetchStats{}, fmt.Errorf("fetch articles: %w", err)
	}

	stats := models.FetchStats{Fetched: len(raw)}

	for i := range raw {
		article := &raw[i]

		if s.store.ExistsByExternalID(article.ID) {
			stats.Duplicates++
			s.observeArticle(metrics.ResultDuplicate)
			continue
		}

		record := assembleRecord(article)
		if saveErr := s.store.Save(record); saveErr != nil {
			if errors.Is(saveErr, models.ErrAlreadyExists) {
				stats.Duplicates++
				s.observeArticle(metrics.ResultDuplicate)
				continue
			}

			// A single bad record never aborts the batch.
			stats.Errors++
			s.observeArticle(metrics.ResultError)
			log.Warn("Failed to save article",
				logger.String("external_id", article.ID),
				logger.String("slug", record.Slug),
				logger.Error(saveErr),
			)
			continue
		}

		stats.New++
		s.observeArticle(metrics.ResultNew)
	}

	s.observeRun("completed")
	log.Info("Ingestion run complete",
		logger.Int("fetched", stats.Fetched),
		logger.Int("new", stats.New),
		logger.Int("duplicates", stats.Duplicates),
		logger.Int("errors", stats.Errors),
	)

	return stats, nil
}

// assembleRecord maps a raw provider payload to a content store record,
// deriving the slug from the title.
func assembleRecord(raw *guardian.RawArticle) *models.Article {
	return &models.Article{
		ExternalID:   raw.ID,
		Title:        raw.Headline(),
		Section:      raw.SectionName,
		PublishedAt:  raw.WebPublicationDate,
		Slug:         store.DeriveSlug(raw.WebTitle),
		ThumbnailURL: raw.Thumbnail(),
		SourceURL:    raw.WebURL,
		BodyText:     raw.BodyText(),
	}
}

func (s *Service) observeRun(outcome string) {
	if s.metrics != nil {
		s.metrics.ObserveIngestRun(outcome)
	}
}

func (s *Service) observeArticle(result string) {
	if s.metrics != nil {
		s.metrics.ObserveArticle(result)
	}
}
