package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zoocast/catalog-api/api/types"
	"github.com/zoocast/catalog-api/pkg/config"
)

// Get handles health check requests
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"feed_url":  config.GetString("feed.url"),
		}

		if deps == nil || deps.Fetcher == nil {
			response["status"] = "degraded"
			response["detail"] = "feed fetcher not configured"
		}

		c.JSON(http.StatusOK, response)
	}
}
