package types

import (
	"github.com/dreamecho/feed-api/internal/database"
	"github.com/dreamecho/feed-api/internal/services/feeds"
	"github.com/dreamecho/feed-api/internal/services/history"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB             *database.DB
	FeedService    feeds.FeedService
	HistoryService history.HistoryService
}
