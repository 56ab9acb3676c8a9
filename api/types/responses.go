package types

import (
	"github.com/dreamecho/feed-api/internal/models"
	"github.com/dreamecho/feed-api/internal/services/feeds"
	"github.com/dreamecho/feed-api/internal/services/history"
	"github.com/dreamecho/feed-api/internal/services/sleepscore"
)

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`  // One of the Status constants above
	Message string `json:"message"` // Human-readable message
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`   // Error code/type
	Details interface{} `json:"details,omitempty"` // Additional error details
}

// FeedResponse for a single parsed feed
type FeedResponse struct {
	BaseResponse
	RSSURL string         `json:"rssUrl"`
	Feed   *feeds.Podcast `json:"feed"`
}

// ValidateFeedResponse for feed URL validation
type ValidateFeedResponse struct {
	BaseResponse
	RSSURL string `json:"rssUrl"`
	Valid  bool   `json:"valid"`
}

// PopularFeedsResponse for the curated discovery list
type PopularFeedsResponse struct {
	BaseResponse
	Feeds []feeds.PopularFeed `json:"feeds"`
	Count int                 `json:"count"`
}

// HistoryRecordResponse for a single listening record
type HistoryRecordResponse struct {
	BaseResponse
	Record *models.HistoryRecord `json:"record"`
}

// HistoryListResponse for listing and searching records
type HistoryListResponse struct {
	BaseResponse
	Records []models.HistoryRecord `json:"records"`
	Count   int                    `json:"count"`
	Query   string                 `json:"query,omitempty"`
}

// SuggestionsResponse for search-as-you-type completions
type SuggestionsResponse struct {
	BaseResponse
	Suggestions []string `json:"suggestions"`
	Query       string   `json:"query"`
}

// HistoryStatsResponse for aggregate listening statistics
type HistoryStatsResponse struct {
	BaseResponse
	Stats *history.Stats `json:"stats"`
}

// ContentAnalysisResponse for sleep-friendliness analysis of one episode
type ContentAnalysisResponse struct {
	BaseResponse
	Analysis     *sleepscore.ContentAnalysis `json:"analysis"`
	Explanations []sleepscore.Explanation    `json:"explanations"`
}

// PeriodStatsResponse for aggregated sleep scores across a period
type PeriodStatsResponse struct {
	BaseResponse
	Stats *sleepscore.PeriodStats `json:"stats"`
}
