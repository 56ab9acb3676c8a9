package history

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dreamecho/feed-api/api/types"
	historyService "github.com/dreamecho/feed-api/internal/services/history"
)

// Search handles fuzzy history search
// @Summary      Search listening records
// @Description  Fuzzy-match listening records against episode titles, podcast names and descriptions
// @Tags         history
// @Produce      json
// @Param        q query string true "Search query"
// @Param        threshold query number false "Minimum similarity score (0-1]"
// @Param        limit query int false "Maximum number of results"
// @Success      200 {object} types.HistoryListResponse "Matching records, best first"
// @Failure      400 {object} types.ErrorResponse "Bad request - invalid parameters"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/history/search [get]
func Search(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("q")

		opts := historyService.SearchOptions{}

		if thresholdStr := c.Query("threshold"); thresholdStr != "" {
			threshold, err := strconv.ParseFloat(thresholdStr, 64)
			if err != nil || threshold <= 0 || threshold > 1 {
				c.JSON(http.StatusBadRequest, types.ErrorResponse{
					Status:  types.StatusError,
					Message: "Threshold must be a number in (0, 1]",
				})
				return
			}
			opts.Threshold = threshold
		}

		if limitStr := c.Query("limit"); limitStr != "" {
			limit, err := strconv.Atoi(limitStr)
			if err != nil || limit < 1 {
				c.JSON(http.StatusBadRequest, types.ErrorResponse{
					Status:  types.StatusError,
					Message: "Limit must be a positive integer",
				})
				return
			}
			opts.MaxResults = limit
		}

		records, err := deps.HistoryService.Search(c.Request.Context(), query, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to search listening records",
				Details: err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, types.HistoryListResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Search results retrieved successfully",
			},
			Records: records,
			Count:   len(records),
			Query:   query,
		})
	}
}

// Suggestions handles search-as-you-type completions
// @Summary      Suggest search completions
// @Description  Return title words and podcast names matching the query prefix
// @Tags         history
// @Produce      json
// @Param        q query string true "Query prefix, at least two characters"
// @Param        limit query int false "Maximum number of suggestions"
// @Success      200 {object} types.SuggestionsResponse "Suggestions"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/history/suggestions [get]
func Suggestions(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("q")

		limit := 10
		if limitStr := c.Query("limit"); limitStr != "" {
			parsed, err := strconv.Atoi(limitStr)
			if err == nil && parsed > 0 {
				limit = parsed
			}
		}

		suggestions, err := deps.HistoryService.Suggest(c.Request.Context(), query, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to build suggestions",
				Details: err.Error(),
			})
			return
		}

		if suggestions == nil {
			suggestions = []string{}
		}

		c.JSON(http.StatusOK, types.SuggestionsResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Suggestions retrieved successfully",
			},
			Suggestions: suggestions,
			Query:       query,
		})
	}
}
