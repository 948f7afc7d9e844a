package health

import (
	"net/http"
	"time"

	"github.com/castpage/catalog-api/api/types"
	"github.com/gin-gonic/gin"
)

// Get handles health check requests. The response is 503 when the
// configured database fails its ping, so load balancers can take the
// instance out of rotation.
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := http.StatusOK
		dbStatus := gin.H{"status": "not configured"}

		if deps != nil && deps.DB != nil && deps.DB.DB != nil {
			if err := deps.DB.HealthCheck(); err != nil {
				status = http.StatusServiceUnavailable
				dbStatus = gin.H{"status": "unhealthy", "error": err.Error()}
			} else {
				dbStatus = gin.H{"status": "healthy"}
			}
		}

		c.JSON(status, gin.H{
			"status":    statusWord(status),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"database":  dbStatus,
		})
	}
}

func statusWord(httpStatus int) string {
	if httpStatus == http.StatusOK {
		return "ok"
	}
	return "degraded"
}
