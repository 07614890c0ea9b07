// Package store implements the flat-file content store: one front-matter
// file per article, named by slug, with an in-memory external-ID index for
// duplicate detection.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/gosimple/slug"
	"github.com/owais-io/sixer/internal/logger"
	"github.com/owais-io/sixer/internal/models"
)

const fileExtension = ".md"

// Store is a directory of article records. Records are immutable after
// creation; the only mutation is the unconditional ClearAll.
type Store struct {
	dir    string
	logger logger.Logger

	mu sync.RWMutex
	// index maps external ID to file name. Built once at open and updated
	// on every write, replacing a per-record directory scan.
	index map[string]string
}

// Open creates the content directory if needed and builds the external-ID
// index from the existing files.
func Open(dir string, log logger.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create content dir: %w", err)
	}

	s := &Store{
		dir:    dir,
		logger: log,
		index:  make(map[string]string),
	}

	if err := s.buildIndex(); err != nil {
		return nil, err
	}

	log.Info("Content store opened",
		logger.String("dir", dir),
		logger.Int("articles", len(s.index)),
	)

	return s, nil
}

// DeriveSlug computes the URL slug for a title. Derivation is deterministic:
// the same title always yields the same slug.
func DeriveSlug(title string) string {
	return slug.Make(title)
}

// buildIndex scans the content directory once and maps external IDs to
// file names. Unparseable files are logged and skipped.
func (s *Store) buildIndex() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("read content dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), fileExtension) {
			continue
		}

		article, err := s.readFile(entry.Name())
		if err != nil {
			s.logger.Warn("Skipping unreadable article file",
				logger.String("file", entry.Name()),
				logger.Error(err),
			)
			continue
		}

		s.index[article.ExternalID] = entry.Name()
	}

	return nil
}

// ExistsByExternalID reports whether a record with the given external ID is
// already in the store.
func (s *Store) ExistsByExternalID(externalID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.index[externalID]
	return ok
}

// Count returns the number of records in the store.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.index)
}

// Save writes a new article record. It rejects a duplicate external ID with
// models.ErrAlreadyExists, and a slug already owned by a different external
// ID with models.ErrSlugTaken.
func (s *Store) Save(article *models.Article) error {
	if article.Slug == "" {
		return fmt.Errorf("article %q has no slug", article.ExternalID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[article.ExternalID]; ok {
		return models.ErrAlreadyExists
	}

	fileName := article.Slug + fileExtension
	path := filepath.Join(s.dir, fileName)

	if _, err := os.Stat(path); err == nil {
		// A different external ID normalized to the same slug.
		return fmt.Errorf("%w: %s", models.ErrSlugTaken, article.Slug)
	}

	data, err := encodeArticle(article)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write article file: %w", err)
	}

	s.index[article.ExternalID] = fileName
	return nil
}

// GetBySlug reads a single article by its slug. Returns models.ErrNotFound
// if no file exists for the slug.
func (s *Store) GetBySlug(slugName string) (*models.Article, error) {
	fileName := slugName + fileExtension

	s.mu.RLock()
	defer s.mu.RUnlock()

	article, err := s.readFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	return article, nil
}

// All loads every record and returns them sorted by publication date,
// newest first. This is a full materialization on every call.
func (s *Store) All() ([]*models.Article, error) {
	s.mu.RLock()
	fileNames := make([]string, 0, len(s.index))
	for _, name := range s.index {
		fileNames = append(fileNames, name)
	}
	s.mu.RUnlock()

	articles := make([]*models.Article, 0, len(fileNames))
	for _, name := range fileNames {
		article, err := s.readFile(name)
		if err != nil {
			s.logger.Warn("Skipping unreadable article file",
				logger.String("file", name),
				logger.Error(err),
			)
			continue
		}
		articles = append(articles, article)
	}

	sort.Slice(articles, func(i, j int) bool {
		return articles[i].PublishedAt.After(articles[j].PublishedAt)
	})

	return articles, nil
}

// ClearAll irreversibly deletes every record and resets the index.
func (s *Store) ClearAll() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for externalID, fileName := range s.index {
		if err := os.Remove(filepath.Join(s.dir, fileName)); err != nil && !os.IsNotExist(err) {
			return removed, fmt.Errorf("remove %s: %w", fileName, err)
		}
		delete(s.index, externalID)
		removed++
	}

	s.logger.Info("Content store cleared", logger.Int("removed", removed))
	return removed, nil
}

// readFile reads and decodes one article file by name.
func (s *Store) readFile(fileName string) (*models.Article, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, fileName))
	if err != nil {
		return nil, err
	}

	article, err := decodeArticle(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", fileName, err)
	}

	return article, nil
}
