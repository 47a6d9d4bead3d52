package ping

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Get answers liveness probes
// @Summary      Liveness check
// @Tags         health
// @Produce      plain
// @Success      200  {string}  string  "pong"
// @Router       /ping [get]
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	}
}
