package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/inquira/inquira/pkg/database"
	"github.com/inquira/inquira/pkg/version"
)

// Health handles GET /api/v1/health. Reports database reachability and
// worker pool state; degraded state returns 503 for load balancer checks.
func (s *Server) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, dbErr := database.Health(ctx, s.db.DB())

	var poolHealth any
	healthy := dbErr == nil
	if s.pool != nil {
		ph := s.pool.Health()
		poolHealth = ph
		healthy = healthy && ph.IsHealthy
	}

	status := "healthy"
	code := http.StatusOK
	if !healthy {
		status = "unhealthy"
		code = http.StatusServiceUnavailable
	}

	body := gin.H{
		"status":   status,
		"version":  version.Full(),
		"database": dbHealth,
	}
	if poolHealth != nil {
		body["worker_pool"] = poolHealth
	}
	if dbErr != nil {
		body["error"] = dbErr.Error()
	}

	c.JSON(code, body)
}
