package sleep

import (
	"github.com/gin-gonic/gin"

	"github.com/dreamecho/feed-api/api/types"
)

// RegisterRoutes registers sleep score routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// Router already includes the /sleep prefix
	router.POST("/analyze", Analyze(deps))
	router.POST("/period", Period(deps))
}
