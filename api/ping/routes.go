package ping

import (
	"github.com/gin-gonic/gin"
	"github.com/zoocast/catalog-api/api/types"
)

// RegisterRoutes registers liveness routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies) {
	engine.GET("/ping", Get())
}
