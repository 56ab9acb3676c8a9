package history

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dreamecho/feed-api/api/types"
	"github.com/dreamecho/feed-api/internal/models"
)

// List handles listing records, newest first
// @Summary      List listening records
// @Description  Return listening records newest first, optionally bounded by a date range or a result limit
// @Tags         history
// @Produce      json
// @Param        from query string false "Start date (2006-01-02)"
// @Param        to query string false "End date, inclusive (2006-01-02)"
// @Param        limit query int false "Maximum number of records"
// @Success      200 {object} types.HistoryListResponse "Listening records"
// @Failure      400 {object} types.ErrorResponse "Bad request - invalid parameters"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/history [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		from := c.Query("from")
		to := c.Query("to")

		var records []models.HistoryRecord
		var err error

		if from != "" || to != "" {
			start, end, parseErr := parseDateRange(from, to)
			if parseErr != nil {
				c.JSON(http.StatusBadRequest, types.ErrorResponse{
					Status:  types.StatusError,
					Message: "Dates must use the 2006-01-02 format",
					Details: parseErr.Error(),
				})
				return
			}
			records, err = deps.HistoryService.FilterByDate(c.Request.Context(), start, end)
		} else if limitStr := c.Query("limit"); limitStr != "" {
			limit, convErr := strconv.Atoi(limitStr)
			if convErr != nil || limit < 1 {
				c.JSON(http.StatusBadRequest, types.ErrorResponse{
					Status:  types.StatusError,
					Message: "Limit must be a positive integer",
				})
				return
			}
			records, err = deps.HistoryService.Recent(c.Request.Context(), limit)
		} else {
			records, err = deps.HistoryService.List(c.Request.Context())
		}

		if err != nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to list listening records",
				Details: err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, types.HistoryListResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Listening records retrieved successfully",
			},
			Records: records,
			Count:   len(records),
		})
	}
}

// parseDateRange turns from/to query values into a concrete interval. A
// missing bound falls back to the epoch or to now.
func parseDateRange(from, to string) (time.Time, time.Time, error) {
	start := time.Time{}
	end := time.Now()

	if from != "" {
		parsed, err := time.ParseInLocation("2006-01-02", from, time.Local)
		if err != nil {
			return start, end, err
		}
		start = parsed
	}
	if to != "" {
		parsed, err := time.ParseInLocation("2006-01-02", to, time.Local)
		if err != nil {
			return start, end, err
		}
		end = parsed
	}
	return start, end, nil
}
