package sleep

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamecho/feed-api/api/types"
	"github.com/dreamecho/feed-api/internal/models"
	historyService "github.com/dreamecho/feed-api/internal/services/history"
)

// Mock history service for testing. Only List is exercised by the period
// handler; the rest satisfy the interface.
type mockHistoryService struct {
	listFunc func(ctx context.Context) ([]models.HistoryRecord, error)
}

func (m *mockHistoryService) AddRecord(ctx context.Context, record *models.HistoryRecord) (*models.HistoryRecord, error) {
	return record, nil
}

func (m *mockHistoryService) List(ctx context.Context) ([]models.HistoryRecord, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockHistoryService) Recent(ctx context.Context, limit int) ([]models.HistoryRecord, error) {
	return nil, nil
}

func (m *mockHistoryService) Search(ctx context.Context, query string, opts historyService.SearchOptions) ([]models.HistoryRecord, error) {
	return nil, nil
}

func (m *mockHistoryService) Suggest(ctx context.Context, query string, limit int) ([]string, error) {
	return nil, nil
}

func (m *mockHistoryService) FilterByDate(ctx context.Context, start, end time.Time) ([]models.HistoryRecord, error) {
	return nil, nil
}

func (m *mockHistoryService) Stats(ctx context.Context) (*historyService.Stats, error) {
	return &historyService.Stats{}, nil
}

func (m *mockHistoryService) DeleteRecord(ctx context.Context, id string) error {
	return nil
}

func (m *mockHistoryService) ClearAll(ctx context.Context) error {
	return nil
}

var _ historyService.HistoryService = (*mockHistoryService)(nil)

func doPeriodRequest(t *testing.T, deps *types.Dependencies, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	w := httptest.NewRecorder()
	_, router := gin.CreateTestContext(w)
	router.POST("/api/v1/sleep/period", Period(deps))

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sleep/period", bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return w, response
}

func TestPeriod(t *testing.T) {
	gin.SetMode(gin.TestMode)

	nightSession := models.HistoryRecord{
		ID:             "rec-1",
		EpisodeTitle:   "Calm Shores",
		PodcastName:    "Night Waves",
		Duration:       1800,
		PlayedDuration: 1700,
		PlayedAt:       time.Date(2026, 8, 20, 23, 0, 0, 0, time.Local),
	}

	t.Run("whole history", func(t *testing.T) {
		deps := &types.Dependencies{
			HistoryService: &mockHistoryService{
				listFunc: func(ctx context.Context) ([]models.HistoryRecord, error) {
					return []models.HistoryRecord{nightSession}, nil
				},
			},
		}

		w, response := doPeriodRequest(t, deps, types.PeriodStatsRequest{})
		assert.Equal(t, http.StatusOK, w.Code)

		stats := response["stats"].(map[string]interface{})
		assert.Equal(t, float64(1), stats["totalRecords"])
		assert.Greater(t, stats["averageScore"].(float64), float64(84))
		_, hasRecords := stats["records"]
		assert.False(t, hasRecords, "per-record breakdowns are opt-in")
	})

	t.Run("date window excludes records outside it", func(t *testing.T) {
		deps := &types.Dependencies{
			HistoryService: &mockHistoryService{
				listFunc: func(ctx context.Context) ([]models.HistoryRecord, error) {
					return []models.HistoryRecord{nightSession}, nil
				},
			},
		}

		w, response := doPeriodRequest(t, deps, types.PeriodStatsRequest{
			StartDate: "2026-08-21",
			EndDate:   "2026-08-31",
		})
		assert.Equal(t, http.StatusOK, w.Code)

		stats := response["stats"].(map[string]interface{})
		assert.Equal(t, float64(0), stats["totalRecords"])
	})

	t.Run("end date covers its whole day", func(t *testing.T) {
		deps := &types.Dependencies{
			HistoryService: &mockHistoryService{
				listFunc: func(ctx context.Context) ([]models.HistoryRecord, error) {
					return []models.HistoryRecord{nightSession}, nil
				},
			},
		}

		w, response := doPeriodRequest(t, deps, types.PeriodStatsRequest{
			StartDate: "2026-08-20",
			EndDate:   "2026-08-20",
		})
		assert.Equal(t, http.StatusOK, w.Code)

		stats := response["stats"].(map[string]interface{})
		assert.Equal(t, float64(1), stats["totalRecords"])
	})

	t.Run("records included on request", func(t *testing.T) {
		deps := &types.Dependencies{
			HistoryService: &mockHistoryService{
				listFunc: func(ctx context.Context) ([]models.HistoryRecord, error) {
					return []models.HistoryRecord{nightSession}, nil
				},
			},
		}

		w, response := doPeriodRequest(t, deps, types.PeriodStatsRequest{IncludeRecords: true})
		assert.Equal(t, http.StatusOK, w.Code)

		stats := response["stats"].(map[string]interface{})
		records, ok := stats["records"].([]interface{})
		require.True(t, ok)
		assert.Len(t, records, 1)
	})

	t.Run("invalid start date", func(t *testing.T) {
		deps := &types.Dependencies{HistoryService: &mockHistoryService{}}

		w, _ := doPeriodRequest(t, deps, types.PeriodStatsRequest{StartDate: "last month"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
