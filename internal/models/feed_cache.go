package models

import (
	"time"

	"gorm.io/datatypes"
)

// FeedCacheEntry mirrors one in-memory cache slot so parsed feeds survive
// restarts. Data holds the normalized podcast as JSON; freshness and
// eviction order both key off Timestamp (the write time, not first-seen).
type FeedCacheEntry struct {
	URL       string         `gorm:"primaryKey" json:"url"`
	Data      datatypes.JSON `gorm:"not null" json:"data"`
	Timestamp time.Time      `gorm:"not null;index" json:"timestamp"`
}

// TableName returns the table name for the FeedCacheEntry model
func (FeedCacheEntry) TableName() string {
	return "feed_cache"
}
