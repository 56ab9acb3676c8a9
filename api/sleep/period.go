package sleep

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dreamecho/feed-api/api/types"
	"github.com/dreamecho/feed-api/internal/services/sleepscore"
)

// Period handles aggregated sleep scores over a date range
// @Summary      Aggregate sleep scores
// @Description  Score every listening session in the period and summarize averages, distribution, daily trend and habit recommendations
// @Tags         sleep
// @Accept       json
// @Produce      json
// @Param        request body types.PeriodStatsRequest true "Period bounds"
// @Success      200 {object} types.PeriodStatsResponse "Period statistics"
// @Failure      400 {object} types.ErrorResponse "Bad request - invalid parameters"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/sleep/period [post]
func Period(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.PeriodStatsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Invalid request format",
				Details: err.Error(),
			})
			return
		}

		start, err := parseBound(req.StartDate, false)
		if err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "startDate must be RFC 3339 or 2006-01-02",
				Details: err.Error(),
			})
			return
		}
		end, err := parseBound(req.EndDate, true)
		if err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "endDate must be RFC 3339 or 2006-01-02",
				Details: err.Error(),
			})
			return
		}

		records, err := deps.HistoryService.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to load listening records",
				Details: err.Error(),
			})
			return
		}

		stats := sleepscore.Aggregate(records, start, end)
		if !req.IncludeRecords {
			stats.Records = nil
		}

		c.JSON(http.StatusOK, types.PeriodStatsResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Period statistics computed successfully",
			},
			Stats: stats,
		})
	}
}

// parseBound parses a period bound. Date-only values cover their whole local
// day, so an end bound moves to the last nanosecond of it. An empty value
// means no bound.
func parseBound(value string, endOfDay bool) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return &parsed, nil
	}

	parsed, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return nil, err
	}
	if endOfDay {
		parsed = parsed.Add(24*time.Hour - time.Nanosecond)
	}
	return &parsed, nil
}
