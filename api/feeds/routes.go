package feeds

import (
	"github.com/gin-gonic/gin"

	"github.com/dreamecho/feed-api/api/types"
)

// RegisterRoutes registers feed routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// Router already includes the /feeds prefix
	router.POST("/parse", Parse(deps))
	router.POST("/validate", Validate(deps))
	router.GET("/popular", Popular(deps))
}
