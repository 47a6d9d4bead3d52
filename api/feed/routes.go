package feed

import (
	"github.com/gin-gonic/gin"
	"github.com/zoocast/catalog-api/api/types"
)

// RegisterRoutes registers feed catalog routes
func RegisterRoutes(group *gin.RouterGroup, deps *types.Dependencies) {
	group.GET("/feed", Get(deps))
}
