package history

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dreamecho/feed-api/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.HistoryRecord{})
	require.NoError(t, err)

	return db
}

func TestRepository_UpsertCreates(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	record := &models.HistoryRecord{
		ID:             "rec-1",
		EpisodeID:      "ep-1",
		RSSURL:         "https://a.example.com/feed",
		EpisodeTitle:   "Episode One",
		PodcastName:    "Night Waves",
		Duration:       1800,
		PlayedDuration: 900,
	}
	stored, err := repo.Upsert(context.Background(), record)
	require.NoError(t, err)
	assert.Equal(t, "rec-1", stored.ID)

	records, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestRepository_UpsertDeduplicatesByEpisode(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	first := &models.HistoryRecord{
		ID:             "rec-1",
		EpisodeID:      "ep-1",
		RSSURL:         "https://a.example.com/feed",
		EpisodeTitle:   "Episode One",
		PodcastName:    "Night Waves",
		PlayedDuration: 100,
	}
	_, err := repo.Upsert(ctx, first)
	require.NoError(t, err)

	// Same episode in the same feed, different session id: updates in place.
	second := &models.HistoryRecord{
		ID:             "rec-2",
		EpisodeID:      "ep-1",
		RSSURL:         "https://a.example.com/feed",
		EpisodeTitle:   "Episode One",
		PodcastName:    "Night Waves",
		PlayedDuration: 1700,
	}
	stored, err := repo.Upsert(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, "rec-1", stored.ID, "existing id is preserved")
	assert.Equal(t, 1700, stored.PlayedDuration)

	records, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestRepository_UpsertDeduplicatesByTitle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	// No episode id on either side: title plus podcast name is the key.
	_, err := repo.Upsert(ctx, &models.HistoryRecord{
		ID:           "rec-1",
		EpisodeTitle: "Episode One",
		PodcastName:  "Night Waves",
	})
	require.NoError(t, err)

	stored, err := repo.Upsert(ctx, &models.HistoryRecord{
		ID:             "rec-2",
		EpisodeTitle:   "Episode One",
		PodcastName:    "Night Waves",
		PlayedDuration: 60,
	})
	require.NoError(t, err)
	assert.Equal(t, "rec-1", stored.ID)

	// A different podcast with the same episode title is a new record.
	other, err := repo.Upsert(ctx, &models.HistoryRecord{
		ID:           "rec-3",
		EpisodeTitle: "Episode One",
		PodcastName:  "Other Show",
	})
	require.NoError(t, err)
	assert.Equal(t, "rec-3", other.ID)

	records, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestRepository_ListOrdersByPlayedAt(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	base := time.Now()
	for i, id := range []string{"old", "newest", "middle"} {
		offsets := []time.Duration{-2 * time.Hour, 0, -time.Hour}
		_, err := repo.Upsert(ctx, &models.HistoryRecord{
			ID:           id,
			EpisodeTitle: id,
			PodcastName:  "show " + id,
			PlayedAt:     base.Add(offsets[i]),
		})
		require.NoError(t, err)
	}

	records, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "newest", records[0].ID)
	assert.Equal(t, "middle", records[1].ID)
	assert.Equal(t, "old", records[2].ID)
}

func TestRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	_, err := repo.Upsert(ctx, &models.HistoryRecord{ID: "rec-1", EpisodeTitle: "a", PodcastName: "b"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, "rec-1"))

	err = repo.Delete(ctx, "rec-1")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestRepository_FilterByDateIncludesEndDay(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	inside := day.Add(23 * time.Hour)
	after := day.Add(25 * time.Hour)

	_, err := repo.Upsert(ctx, &models.HistoryRecord{ID: "in", EpisodeTitle: "in", PodcastName: "p", PlayedAt: inside})
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, &models.HistoryRecord{ID: "out", EpisodeTitle: "out", PodcastName: "p", PlayedAt: after})
	require.NoError(t, err)

	records, err := repo.FilterByDate(ctx, day, day)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "in", records[0].ID)
}
