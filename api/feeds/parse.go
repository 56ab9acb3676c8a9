package feeds

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dreamecho/feed-api/api/types"
	feedsService "github.com/dreamecho/feed-api/internal/services/feeds"
)

// parseTimeout bounds one fetch-and-parse round trip, including every proxy
// fallback the fetcher tries.
const parseTimeout = 60 * time.Second

// Parse handles feed parsing requests
// @Summary      Parse an RSS or Atom feed
// @Description  Fetch and parse the given feed URL, serving from the cache when a fresh copy exists
// @Tags         feeds
// @Accept       json
// @Produce      json
// @Param        request body types.ParseFeedRequest true "Feed URL and cache options"
// @Success      200 {object} types.FeedResponse "Parsed feed"
// @Failure      400 {object} types.ErrorResponse "Bad request - invalid parameters"
// @Failure      422 {object} types.ErrorResponse "Feed reached but not parseable"
// @Failure      502 {object} types.ErrorResponse "Feed unreachable"
// @Router       /api/v1/feeds/parse [post]
func Parse(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.ParseFeedRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Invalid request format",
				Details: err.Error(),
			})
			return
		}

		if !isFeedURL(req.RSSURL) {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "rssUrl must be an http or https URL",
			})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), parseTimeout)
		defer cancel()

		podcast, err := deps.FeedService.GetFeed(ctx, req.RSSURL, req.ForceRefresh)
		if err != nil {
			status := http.StatusBadGateway
			message := "Feed could not be reached"
			if feedsService.IsMalformed(err) {
				status = http.StatusUnprocessableEntity
				message = "Feed content could not be parsed"
			}
			c.JSON(status, types.ErrorResponse{
				Status:  types.StatusError,
				Message: message,
				Details: err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, types.FeedResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Feed parsed successfully",
			},
			RSSURL: req.RSSURL,
			Feed:   podcast,
		})
	}
}

// isFeedURL accepts only absolute http(s) URLs with a host.
func isFeedURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
