package history

import (
	"context"
	"log"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dreamecho/feed-api/internal/models"
)

// Service implements the HistoryService interface with business logic
type Service struct {
	repository     HistoryRepository
	searchDefaults SearchOptions
}

// Ensure Service implements HistoryService interface
var _ HistoryService = (*Service)(nil)

// ServiceOption configures the service
type ServiceOption func(*Service)

// WithSearchDefaults overrides the built-in fuzzy search threshold and
// result cap for callers that pass zero-valued options.
func WithSearchDefaults(threshold float64, maxResults int) ServiceOption {
	return func(s *Service) {
		if threshold > 0 && threshold <= 1 {
			s.searchDefaults.Threshold = threshold
		}
		if maxResults > 0 {
			s.searchDefaults.MaxResults = maxResults
		}
	}
}

func NewService(repository HistoryRepository, opts ...ServiceOption) *Service {
	s := &Service{repository: repository}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddRecord validates and upserts one listening session. A missing id gets a
// generated one; a missing playedAt defaults to now.
func (s *Service) AddRecord(ctx context.Context, record *models.HistoryRecord) (*models.HistoryRecord, error) {
	if strings.TrimSpace(record.EpisodeTitle) == "" {
		return nil, NewValidationError("episodeTitle", "must not be empty")
	}
	if record.Duration < 0 || record.PlayedDuration < 0 {
		return nil, NewValidationError("duration", "must not be negative")
	}
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.PlayedAt.IsZero() {
		record.PlayedAt = time.Now()
	}

	stored, err := s.repository.Upsert(ctx, record)
	if err != nil {
		return nil, err
	}
	log.Printf("[DEBUG] History: stored record %s (%s / %s)", stored.ID, stored.PodcastName, stored.EpisodeTitle)
	return stored, nil
}

func (s *Service) List(ctx context.Context) ([]models.HistoryRecord, error) {
	return s.repository.List(ctx)
}

// Recent returns the most recently played records, capped at limit.
func (s *Service) Recent(ctx context.Context, limit int) ([]models.HistoryRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	records, err := s.repository.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// Search runs the fuzzy engine over the whole history.
func (s *Service) Search(ctx context.Context, query string, opts SearchOptions) ([]models.HistoryRecord, error) {
	records, err := s.repository.List(ctx)
	if err != nil {
		return nil, err
	}
	if opts.Threshold == 0 {
		opts.Threshold = s.searchDefaults.Threshold
	}
	if opts.MaxResults == 0 {
		opts.MaxResults = s.searchDefaults.MaxResults
	}
	return Search(records, query, opts), nil
}

// Suggest returns completion candidates for a partial query.
func (s *Service) Suggest(ctx context.Context, query string, limit int) ([]string, error) {
	records, err := s.repository.List(ctx)
	if err != nil {
		return nil, err
	}
	return Suggestions(records, query, limit), nil
}

func (s *Service) FilterByDate(ctx context.Context, start, end time.Time) ([]models.HistoryRecord, error) {
	return s.repository.FilterByDate(ctx, start, end)
}

// Stats summarizes play counts, completion rate, total play time and podcast
// variety across the whole history.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	records, err := s.repository.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{TotalRecords: len(records)}
	podcasts := make(map[string]struct{})
	for _, record := range records {
		if record.IsCompleted() {
			stats.CompletedRecords++
		}
		stats.TotalPlayTimeSeconds += record.PlayedDuration
		podcasts[record.PodcastName] = struct{}{}
	}
	stats.UniquePodcasts = len(podcasts)
	stats.TotalPlayTime = float64(stats.TotalPlayTimeSeconds) / 3600
	if stats.TotalRecords > 0 {
		stats.CompletionRate = int(math.Round(float64(stats.CompletedRecords) / float64(stats.TotalRecords) * 100))
	}
	return stats, nil
}

func (s *Service) DeleteRecord(ctx context.Context, id string) error {
	return s.repository.Delete(ctx, id)
}

func (s *Service) ClearAll(ctx context.Context) error {
	return s.repository.DeleteAll(ctx)
}
