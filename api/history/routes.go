package history

import (
	"github.com/gin-gonic/gin"

	"github.com/dreamecho/feed-api/api/types"
)

// RegisterRoutes registers history routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// Router already includes the /history prefix
	router.POST("", Post(deps))
	router.GET("", List(deps))
	router.GET("/search", Search(deps))
	router.GET("/suggestions", Suggestions(deps))
	router.GET("/stats", Stats(deps))
	router.DELETE("/:id", Delete(deps))
	router.DELETE("", Clear(deps))
}
