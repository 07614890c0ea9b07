// Package guardian implements the client for the Guardian content search
// API: date-range validation, sequential page fetching, and a politeness
// delay between page requests.
package guardian

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/owais-io/sixer/internal/config"
	"github.com/owais-io/sixer/internal/logger"
)

const (
	// archiveFloor is the earliest date the provider archive reaches.
	archiveFloor = "1999-01-01"

	// showFields selects the optional payload fields requested per article.
	showFields = "bodyText,headline,thumbnail"

	dateFormat = "2006-01-02"
)

// ErrInvalidRange wraps all date-range validation failures so callers can
// distinguish them from upstream fetch errors.
var ErrInvalidRange = errors.New("invalid date range")

// FetchRequest describes one date-range fetch against the provider.
type FetchRequest struct {
	From        time.Time
	To          time.Time
	Section     string // Optional provider section filter
	Keyword     string // Optional free-text query
	MaxArticles int    // 0 means no cap
}

// Client fetches articles from the Guardian content API.
type Client struct {
	baseURL      string
	apiKey       string
	pageSize     int
	requestDelay time.Duration
	httpClient   *http.Client
	logger       logger.Logger

	// now is injected for date-range validation tests.
	now func() time.Time
}

// NewClient creates a provider client from configuration.
func NewClient(cfg *config.GuardianConfig, log logger.Logger) *Client {
	return &Client{
		baseURL:      cfg.BaseURL,
		apiKey:       cfg.APIKey,
		pageSize:     cfg.PageSize,
		requestDelay: cfg.RequestDelay,
		httpClient:   &http.Client{Timeout: cfg.RequestTimeout},
		logger:       log,
		now:          time.Now,
	}
}

// ValidateRange checks the fetch date range before any network call:
// from must not be after to, to must not be in the future (end-of-day
// boundary), and from must not precede the provider archive floor.
func (c *Client) ValidateRange(from, to time.Time) error {
	if from.After(to) {
		return fmt.Errorf("%w: from date %s must not be after to date %s",
			ErrInvalidRange, from.Format(dateFormat), to.Format(dateFormat))
	}

	now := c.now()
	endOfToday := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())
	if to.After(endOfToday) {
		return fmt.Errorf("%w: to date %s cannot be in the future", ErrInvalidRange, to.Format(dateFormat))
	}

	floor, _ := time.Parse(dateFormat, archiveFloor)
	if from.Before(floor) {
		return fmt.Errorf("%w: from date %s cannot be earlier than %s",
			ErrInvalidRange, from.Format(dateFormat), archiveFloor)
	}

	return nil
}

// Fetch retrieves all articles in the inclusive [From, To] range, page by
// page, newest first. Any page failure aborts the whole fetch; no partial
// list is returned.
func (c *Client) Fetch(ctx context.Context, req FetchRequest) ([]RawArticle, error) {
	if err := c.ValidateRange(req.From, req.To); err != nil {
		return nil, err
	}

	var articles []RawArticle
	page := 1
	totalPages := 1

	for page <= totalPages {
		if page > 1 {
			// Politeness throttle between page requests.
			select {
			case <-time.After(c.requestDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err := c.fetchPage(ctx, req, page)
		if err != nil {
			c.logger.Error("Provider fetch aborted",
				logger.Int("page", page),
				logger.Int("accumulated", len(articles)),
				logger.Error(err),
			)
			return nil, err
		}

		articles = append(articles, resp.Results...)
		totalPages = resp.Pages

		c.logger.Debug("Fetched provider page",
			logger.Int("page", page),
			logger.Int("total_pages", totalPages),
			logger.Int("page_results", len(resp.Results)),
		)

		if req.MaxArticles > 0 && len(articles) >= req.MaxArticles {
			articles = articles[:req.MaxArticles]
			break
		}
		page++
	}

	c.logger.Info("Provider fetch complete",
		logger.Time("from", req.From),
		logger.Time("to", req.To),
		logger.Int("articles", len(articles)),
	)

	return articles, nil
}

// fetchPage issues one search request and decodes the response envelope.
func (c *Client) fetchPage(ctx context.Context, req FetchRequest, page int) (*searchResponse, error) {
	endpoint := fmt.Sprintf("%s/search?%s", c.baseURL, c.queryParams(req, page))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	duration := time.Since(start)

	if err != nil {
		return nil, fmt.Errorf("fetch page %d: %w", page, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("provider returned status %d for page %d", resp.StatusCode, page)
	}

	var envelope searchEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode page %d: %w", page, err)
	}

	if envelope.Response.Status != "ok" {
		return nil, fmt.Errorf("provider error for page %d: %s", page, envelope.Response.Message)
	}

	c.logger.Debug("Provider page request",
		logger.Int("page", page),
		logger.Duration("duration", duration),
	)

	return &envelope.Response, nil
}

// queryParams builds the search query string for one page.
func (c *Client) queryParams(req FetchRequest, page int) string {
	params := url.Values{}
	params.Set("api-key", c.apiKey)
	params.Set("from-date", req.From.Format(dateFormat))
	params.Set("to-date", req.To.Format(dateFormat))
	params.Set("show-fields", showFields)
	params.Set("page-size", strconv.Itoa(c.pageSize))
	params.Set("order-by", "newest")
	params.Set("page", strconv.Itoa(page))

	if req.Section != "" {
		params.Set("section", req.Section)
	}
	if req.Keyword != "" {
		params.Set("q", req.Keyword)
	}

	return params.Encode()
}
