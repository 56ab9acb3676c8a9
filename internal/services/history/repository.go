package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/dreamecho/feed-api/internal/models"
)

type Repository struct {
	db *gorm.DB
}

// Ensure Repository implements HistoryRepository interface
var _ HistoryRepository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Upsert deduplicates against existing sessions in order of strongest
// identity first: explicit id, then episode id within the same feed, then
// episode title within the same podcast. A match keeps the stored id and
// creation time and takes every other field from record.
func (r *Repository) Upsert(ctx context.Context, record *models.HistoryRecord) (*models.HistoryRecord, error) {
	existing, err := r.findExisting(ctx, record)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		record.ID = existing.ID
		record.CreatedAt = existing.CreatedAt
		if err := r.db.WithContext(ctx).Save(record).Error; err != nil {
			return nil, fmt.Errorf("updating history record: %w", err)
		}
		return record, nil
	}

	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, fmt.Errorf("creating history record: %w", err)
	}
	return record, nil
}

func (r *Repository) findExisting(ctx context.Context, record *models.HistoryRecord) (*models.HistoryRecord, error) {
	lookups := []func(*gorm.DB) *gorm.DB{}

	if record.ID != "" {
		lookups = append(lookups, func(db *gorm.DB) *gorm.DB {
			return db.Where("id = ?", record.ID)
		})
	}
	if record.EpisodeID != "" {
		lookups = append(lookups, func(db *gorm.DB) *gorm.DB {
			return db.Where("episode_id = ? AND rss_url = ?", record.EpisodeID, record.RSSURL)
		})
	}
	lookups = append(lookups, func(db *gorm.DB) *gorm.DB {
		return db.Where("episode_title = ? AND podcast_name = ?", record.EpisodeTitle, record.PodcastName)
	})

	for _, lookup := range lookups {
		var existing models.HistoryRecord
		err := lookup(r.db.WithContext(ctx)).First(&existing).Error
		if err == nil {
			return &existing, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("looking up history record: %w", err)
		}
	}
	return nil, nil
}

func (r *Repository) List(ctx context.Context) ([]models.HistoryRecord, error) {
	var records []models.HistoryRecord
	if err := r.db.WithContext(ctx).Order("played_at DESC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("listing history records: %w", err)
	}
	return records, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*models.HistoryRecord, error) {
	var record models.HistoryRecord
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("history record", id)
		}
		return nil, fmt.Errorf("getting history record: %w", err)
	}
	return &record, nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.HistoryRecord{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting history record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return NewNotFoundError("history record", id)
	}
	return nil
}

func (r *Repository) DeleteAll(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Where("1 = 1").Delete(&models.HistoryRecord{}).Error; err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	return nil
}

func (r *Repository) FilterByDate(ctx context.Context, start, end time.Time) ([]models.HistoryRecord, error) {
	// Include the whole end day regardless of the time component passed in.
	endOfDay := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), end.Location())

	var records []models.HistoryRecord
	if err := r.db.WithContext(ctx).
		Where("played_at >= ? AND played_at <= ?", start, endOfDay).
		Order("played_at DESC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("filtering history records: %w", err)
	}
	return records, nil
}
