package history

import (
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
)

func doListRequest(t *testing.T, deps *types.Dependencies, target string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	w := httptest.NewRecorder()
	_, router := gin.CreateTestContext(w)
	router.GET("/api/v1/history", List(deps))

	req := httptest.NewRequest(http.MethodGet, target, nil)
	router.ServeHTTP(w, req)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return w, response
}

func TestList(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("all records", func(t *testing.T) {
		deps := &types.Dependencies{
			HistoryService: &mockHistoryService{
				listFunc: func(ctx context.Context) ([]models.HistoryRecord, error) {
					return []models.HistoryRecord{
						{ID: "rec-1", EpisodeTitle: "Newest"},
						{ID: "rec-2", EpisodeTitle: "Older"},
					}, nil
				},
			},
		}

		w, response := doListRequest(t, deps, "/api/v1/history")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(2), response["count"])

		records := response["records"].([]interface{})
		first := records[0].(map[string]interface{})
		assert.Equal(t, "Newest", first["episodeTitle"])
	})

	t.Run("limit uses recent", func(t *testing.T) {
		deps := &types.Dependencies{
			HistoryService: &mockHistoryService{
				recentFunc: func(ctx context.Context, limit int) ([]models.HistoryRecord, error) {
					assert.Equal(t, 5, limit)
					return []models.HistoryRecord{{ID: "rec-1"}}, nil
				},
			},
		}

		w, response := doListRequest(t, deps, "/api/v1/history?limit=5")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(1), response["count"])
	})

	t.Run("invalid limit", func(t *testing.T) {
		deps := &types.Dependencies{HistoryService: &mockHistoryService{}}

		w, _ := doListRequest(t, deps, "/api/v1/history?limit=zero")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("date range uses filter", func(t *testing.T) {
		deps := &types.Dependencies{
			HistoryService: &mockHistoryService{
				filterFunc: func(ctx context.Context, start, end time.Time) ([]models.HistoryRecord, error) {
					assert.Equal(t, 2026, start.Year())
					assert.Equal(t, time.August, start.Month())
					assert.Equal(t, 1, start.Day())
					assert.Equal(t, 31, end.Day())
					return nil, nil
				},
			},
		}

		w, _ := doListRequest(t, deps, "/api/v1/history?from=2026-08-01&to=2026-08-31")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid date", func(t *testing.T) {
		deps := &types.Dependencies{HistoryService: &mockHistoryService{}}

		w, _ := doListRequest(t, deps, "/api/v1/history?from=last-week")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
