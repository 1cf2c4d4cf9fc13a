// Package api exposes the HTTP surface: research session endpoints behind
// the auth proxy, the internal process endpoint, and health.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/inquira/inquira/pkg/database"
	"github.com/inquira/inquira/pkg/queue"
	"github.com/inquira/inquira/pkg/services"
)

// Server wires the session service and worker pool into HTTP handlers.
type Server struct {
	db       *database.Client
	sessions *services.SessionService
	pool     *queue.WorkerPool
	executor queue.SessionExecutor
	podID    string
}

// NewServer creates a new API server. The executor is the same one the
// worker pool runs; the internal process endpoint invokes it synchronously.
func NewServer(db *database.Client, sessions *services.SessionService, pool *queue.WorkerPool, executor queue.SessionExecutor, podID string) *Server {
	return &Server{
		db:       db,
		sessions: sessions,
		pool:     pool,
		executor: executor,
		podID:    podID,
	}
}

// Router builds the gin engine with all routes and middleware registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(requestLogger(), gin.Recovery(), securityHeaders())

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", s.Health)

		research := v1.Group("/research", requireIdentity())
		{
			research.POST("", s.StartResearch)
			research.GET("", s.ListSessions)
			research.GET("/:id", s.GetSession)
			research.POST("/:id/answers", s.SubmitAnswer)
		}

		// Service-to-service surface; not exposed through the auth proxy.
		internal := v1.Group("/internal")
		{
			internal.POST("/research/:id/process", s.ProcessSession)
		}
	}

	return router
}
