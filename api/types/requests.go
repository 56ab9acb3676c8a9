package types

// ParseFeedRequest is the body for POST /api/v1/feeds/parse.
type ParseFeedRequest struct {
	RSSURL       string `json:"rssUrl" binding:"required" example:"https://feeds.npr.org/500005/podcast.xml"`
	ForceRefresh bool   `json:"forceRefresh,omitempty" example:"false"` // Bypass the cache and re-fetch
}

// ValidateFeedRequest is the body for POST /api/v1/feeds/validate.
type ValidateFeedRequest struct {
	RSSURL string `json:"rssUrl" binding:"required" example:"https://feeds.npr.org/500005/podcast.xml"`
}

// HistoryRecordRequest is the body for POST /api/v1/history. ID is optional;
// omitting it lets the server mint one.
type HistoryRecordRequest struct {
	ID             string `json:"id,omitempty"`
	EpisodeID      string `json:"episodeId,omitempty"`
	RSSURL         string `json:"rssUrl,omitempty"`
	EpisodeTitle   string `json:"episodeTitle" binding:"required"`
	PodcastName    string `json:"podcastName,omitempty"`
	Duration       int    `json:"duration,omitempty"`       // Episode length in seconds
	PlayedDuration int    `json:"playedDuration,omitempty"` // Seconds actually listened
	PlayedAt       string `json:"playedAt,omitempty"`       // RFC 3339; defaults to now
	EpisodeURL     string `json:"episodeUrl,omitempty"`
	CoverImage     string `json:"coverImage,omitempty"`
	Description    string `json:"description,omitempty"`
}

// AnalyzeContentRequest is the body for POST /api/v1/sleep/analyze.
type AnalyzeContentRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description,omitempty"`
	PodcastName string `json:"podcastName,omitempty"`
	Duration    int    `json:"duration,omitempty"` // Seconds
}

// PeriodStatsRequest is the body for POST /api/v1/sleep/period. Empty bounds
// mean the whole history.
type PeriodStatsRequest struct {
	StartDate      string `json:"startDate,omitempty" example:"2026-08-01"` // RFC 3339 or 2006-01-02
	EndDate        string `json:"endDate,omitempty" example:"2026-08-31"`
	IncludeRecords bool   `json:"includeRecords,omitempty"` // Echo the per-record breakdowns
}
