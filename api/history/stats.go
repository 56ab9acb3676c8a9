package history

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dreamecho/feed-api/api/types"
)

// Stats handles aggregate listening statistics
// @Summary      Listening statistics
// @Description  Return totals, completion rate and play time across all records
// @Tags         history
// @Produce      json
// @Success      200 {object} types.HistoryStatsResponse "Aggregate statistics"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/history/stats [get]
func Stats(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := deps.HistoryService.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to compute listening statistics",
				Details: err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, types.HistoryStatsResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Listening statistics retrieved successfully",
			},
			Stats: stats,
		})
	}
}
