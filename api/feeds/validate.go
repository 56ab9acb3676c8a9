package feeds

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dreamecho/feed-api/api/types"
)

// Validate handles feed URL validation requests
// @Summary      Validate a feed URL
// @Description  Check that the given URL currently resolves to a parseable RSS or Atom feed
// @Tags         feeds
// @Accept       json
// @Produce      json
// @Param        request body types.ValidateFeedRequest true "Feed URL to check"
// @Success      200 {object} types.ValidateFeedResponse "Validation result"
// @Failure      400 {object} types.ErrorResponse "Bad request - invalid parameters"
// @Router       /api/v1/feeds/validate [post]
func Validate(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.ValidateFeedRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Invalid request format",
				Details: err.Error(),
			})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), parseTimeout)
		defer cancel()

		valid := deps.FeedService.ValidateFeedURL(ctx, req.RSSURL)

		message := "Feed URL is valid"
		if !valid {
			message = "Feed URL did not resolve to a parseable feed"
		}

		c.JSON(http.StatusOK, types.ValidateFeedResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: message,
			},
			RSSURL: req.RSSURL,
			Valid:  valid,
		})
	}
}
