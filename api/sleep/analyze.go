package sleep

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dreamecho/feed-api/api/types"
	"github.com/dreamecho/feed-api/internal/services/sleepscore"
)

// Analyze handles sleep-friendliness analysis of one episode
// @Summary      Analyze episode content
// @Description  Score how sleep-friendly an episode looks from its title, description, podcast name and duration
// @Tags         sleep
// @Accept       json
// @Produce      json
// @Param        request body types.AnalyzeContentRequest true "Episode metadata"
// @Success      200 {object} types.ContentAnalysisResponse "Analysis with explanations"
// @Failure      400 {object} types.ErrorResponse "Bad request - invalid parameters"
// @Router       /api/v1/sleep/analyze [post]
func Analyze(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.AnalyzeContentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Invalid request format",
				Details: err.Error(),
			})
			return
		}

		if req.Duration < 0 {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Duration must not be negative",
			})
			return
		}

		analysis := sleepscore.AnalyzeContent(sleepscore.ContentInput{
			Title:       req.Title,
			Description: req.Description,
			PodcastName: req.PodcastName,
			Duration:    req.Duration,
		})

		c.JSON(http.StatusOK, types.ContentAnalysisResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Content analyzed successfully",
			},
			Analysis:     analysis,
			Explanations: sleepscore.Explanations(analysis),
		})
	}
}
