package models

import (
	"math"
	"time"

	"gorm.io/gorm"
)

// completedThreshold is the progress percentage at which a listen counts as
// a full play.
const completedThreshold = 90

// HistoryRecord represents one listening session of an episode
type HistoryRecord struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Episode identity. EpisodeID plus RSSURL is the preferred dedup key;
	// EpisodeTitle plus PodcastName is the fallback for feeds without guids.
	EpisodeID    string `gorm:"index:idx_history_episode" json:"episodeId"`
	RSSURL       string `gorm:"index:idx_history_episode" json:"rssUrl"`
	EpisodeTitle string `gorm:"not null;index:idx_history_title" json:"episodeTitle"`
	PodcastName  string `gorm:"index:idx_history_title" json:"podcastName"`

	// Playback
	Duration       int       `json:"duration"`       // episode length in seconds
	PlayedDuration int       `json:"playedDuration"` // seconds actually listened
	PlayedAt       time.Time `gorm:"index" json:"playedAt"`

	// Presentation
	EpisodeURL  string `json:"episodeUrl"`
	CoverImage  string `json:"coverImage"`
	Description string `gorm:"type:text" json:"description"`
}

// TableName returns the table name for the HistoryRecord model
func (HistoryRecord) TableName() string {
	return "history_records"
}

// BeforeCreate hook to set timestamps
func (r *HistoryRecord) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	r.CreatedAt = now
	r.UpdatedAt = now
	if r.PlayedAt.IsZero() {
		r.PlayedAt = now
	}
	return nil
}

// BeforeUpdate hook to update timestamp
func (r *HistoryRecord) BeforeUpdate(tx *gorm.DB) error {
	r.UpdatedAt = time.Now()
	return nil
}

// Progress returns the played percentage, rounded to the nearest integer.
// A zero duration yields 0 rather than dividing by zero.
func (r *HistoryRecord) Progress() int {
	if r.Duration == 0 {
		return 0
	}
	return int(math.Round(float64(r.PlayedDuration) / float64(r.Duration) * 100))
}

// IsCompleted reports whether the session reached the completion threshold.
func (r *HistoryRecord) IsCompleted() bool {
	return r.Progress() >= completedThreshold
}
