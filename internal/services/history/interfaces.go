package history

import (
	"context"
	"time"

	"github.com/dreamecho/feed-api/internal/models"
)

// HistoryRepository defines the interface for history persistence
type HistoryRepository interface {
	// Upsert writes record, replacing an existing session for the same
	// episode instead of duplicating it. Returns the stored record.
	Upsert(ctx context.Context, record *models.HistoryRecord) (*models.HistoryRecord, error)

	// List returns all records, most recently played first.
	List(ctx context.Context) ([]models.HistoryRecord, error)

	GetByID(ctx context.Context, id string) (*models.HistoryRecord, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error

	// FilterByDate returns records played within [start, end], end expanded
	// to the end of its calendar day.
	FilterByDate(ctx context.Context, start, end time.Time) ([]models.HistoryRecord, error)
}

// Stats summarizes the whole listening history.
type Stats struct {
	TotalRecords         int     `json:"totalRecords"`
	CompletedRecords     int     `json:"completedRecords"`
	CompletionRate       int     `json:"completionRate"` // percent, rounded
	TotalPlayTime        float64 `json:"totalPlayTime"`  // hours
	TotalPlayTimeSeconds int     `json:"totalPlayTimeSeconds"`
	UniquePodcasts       int     `json:"uniquePodcasts"`
}

// HistoryService defines the business logic interface for history operations
type HistoryService interface {
	AddRecord(ctx context.Context, record *models.HistoryRecord) (*models.HistoryRecord, error)
	List(ctx context.Context) ([]models.HistoryRecord, error)
	Recent(ctx context.Context, limit int) ([]models.HistoryRecord, error)
	Search(ctx context.Context, query string, opts SearchOptions) ([]models.HistoryRecord, error)
	Suggest(ctx context.Context, query string, limit int) ([]string, error)
	FilterByDate(ctx context.Context, start, end time.Time) ([]models.HistoryRecord, error)
	Stats(ctx context.Context) (*Stats, error)
	DeleteRecord(ctx context.Context, id string) error
	ClearAll(ctx context.Context) error
}
