package models

import "fmt"

// FetchStats aggregates the outcome of one ingestion run.
type FetchStats struct {
	Fetched    int `json:"fetched"`
	New        int `json:"new"`
	Duplicates int `json:"duplicates"`
	Errors     int `json:"errors"`
}

// Message returns the human-readable run summary shown to the
// administrative caller.
func (s FetchStats) Message() string {
	return fmt.Sprintf("Successfully processed %d articles. %d new articles saved, %d duplicates skipped.",
		s.Fetched, s.New, s.Duplicates)
}

// FetchArticlesRequest is the payload of the admin ingestion trigger.
// Dates use the YYYY-MM-DD wire format.
type FetchArticlesRequest struct {
	FromDate    string `binding:"required" json:"from_date"`
	ToDate      string `binding:"required" json:"to_date"`
	Section     string `json:"section,omitempty"`
	Keyword     string `json:"keyword,omitempty"`
	MaxArticles int    `json:"max_articles,omitempty"`
}
