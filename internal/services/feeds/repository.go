package feeds

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/dreamecho/feed-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository persists cache entries to the feed_cache table.
type Repository struct {
	db *gorm.DB
}

// Ensure Repository implements CacheStore interface
var _ CacheStore = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) LoadAll(ctx context.Context) ([]StoredFeed, error) {
	var rows []models.FeedCacheEntry
	if err := r.db.WithContext(ctx).Order("timestamp DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("loading feed cache: %w", err)
	}

	stored := make([]StoredFeed, 0, len(rows))
	for _, row := range rows {
		var podcast Podcast
		if err := json.Unmarshal(row.Data, &podcast); err != nil {
			// A row we cannot decode is dead weight; drop it and move on.
			log.Printf("[WARN] Feed cache: dropping undecodable entry for %s: %v", row.URL, err)
			if delErr := r.db.WithContext(ctx).Delete(&models.FeedCacheEntry{}, "url = ?", row.URL).Error; delErr != nil {
				log.Printf("[WARN] Feed cache: failed to delete undecodable entry %s: %v", row.URL, delErr)
			}
			continue
		}
		stored = append(stored, StoredFeed{URL: row.URL, Podcast: &podcast, Timestamp: row.Timestamp})
	}
	return stored, nil
}

func (r *Repository) Save(ctx context.Context, url string, podcast *Podcast, timestamp time.Time) error {
	data, err := json.Marshal(podcast)
	if err != nil {
		return fmt.Errorf("encoding feed for cache: %w", err)
	}
	entry := models.FeedCacheEntry{URL: url, Data: data, Timestamp: timestamp}
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "url"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "timestamp"}),
	}).Create(&entry).Error; err != nil {
		return fmt.Errorf("saving feed cache entry: %w", err)
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, urls []string) error {
	if len(urls) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Delete(&models.FeedCacheEntry{}, "url IN ?", urls).Error; err != nil {
		return fmt.Errorf("deleting feed cache entries: %w", err)
	}
	return nil
}

func (r *Repository) Trim(ctx context.Context, keep int) error {
	// Keep the newest rows by write timestamp, drop the rest.
	subquery := r.db.Model(&models.FeedCacheEntry{}).
		Select("url").
		Order("timestamp DESC").
		Limit(keep)
	if err := r.db.WithContext(ctx).
		Where("url NOT IN (?)", subquery).
		Delete(&models.FeedCacheEntry{}).Error; err != nil {
		return fmt.Errorf("trimming feed cache: %w", err)
	}
	return nil
}
