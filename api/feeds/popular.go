package feeds

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dreamecho/feed-api/api/types"
)

// Popular handles requests for the curated feed list
// @Summary      List popular feeds
// @Description  Return the curated discovery list of podcast feeds
// @Tags         feeds
// @Produce      json
// @Success      200 {object} types.PopularFeedsResponse "Curated feeds"
// @Router       /api/v1/feeds/popular [get]
func Popular(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		popular := deps.FeedService.PopularFeeds()

		c.JSON(http.StatusOK, types.PopularFeedsResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Popular feeds retrieved successfully",
			},
			Feeds: popular,
			Count: len(popular),
		})
	}
}
