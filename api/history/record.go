package history

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dreamecho/feed-api/api/types"
	"github.com/dreamecho/feed-api/internal/models"
	historyService "github.com/dreamecho/feed-api/internal/services/history"
)

// Post handles saving a listening record
// @Summary      Save a listening record
// @Description  Insert or update a listening record, deduplicating by ID, episode identity or title
// @Tags         history
// @Accept       json
// @Produce      json
// @Param        request body types.HistoryRecordRequest true "Listening record"
// @Success      200 {object} types.HistoryRecordResponse "Saved record"
// @Failure      400 {object} types.ErrorResponse "Bad request - invalid parameters"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/history [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.HistoryRecordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Invalid request format",
				Details: err.Error(),
			})
			return
		}

		record := &models.HistoryRecord{
			ID:             req.ID,
			EpisodeID:      req.EpisodeID,
			RSSURL:         req.RSSURL,
			EpisodeTitle:   req.EpisodeTitle,
			PodcastName:    req.PodcastName,
			Duration:       req.Duration,
			PlayedDuration: req.PlayedDuration,
			EpisodeURL:     req.EpisodeURL,
			CoverImage:     req.CoverImage,
			Description:    req.Description,
		}

		if req.PlayedAt != "" {
			playedAt, err := time.Parse(time.RFC3339, req.PlayedAt)
			if err != nil {
				c.JSON(http.StatusBadRequest, types.ErrorResponse{
					Status:  types.StatusError,
					Message: "playedAt must be an RFC 3339 timestamp",
					Details: err.Error(),
				})
				return
			}
			record.PlayedAt = playedAt
		}

		saved, err := deps.HistoryService.AddRecord(c.Request.Context(), record)
		if err != nil {
			if errors.Is(err, historyService.ErrInvalidInput) {
				c.JSON(http.StatusBadRequest, types.ErrorResponse{
					Status:  types.StatusError,
					Message: "Invalid listening record",
					Details: err.Error(),
				})
				return
			}
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to save listening record",
				Details: err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, types.HistoryRecordResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Listening record saved successfully",
			},
			Record: saved,
		})
	}
}
