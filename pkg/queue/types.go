// Package queue provides the worker pool that executes claimed research
// sessions in the background.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/inquira/inquira/ent"
	"github.com/inquira/inquira/ent/researchsession"
)

// Sentinel errors for queue operations.
var (
	// ErrNoSessionsAvailable indicates no claimable sessions are in the queue.
	ErrNoSessionsAvailable = errors.New("no sessions available")

	// ErrAtCapacity indicates the global concurrent research limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// SessionExecutor runs the research phase for one claimed session.
//
// The executor owns everything between claim and terminal status:
//   - fans the refined prompt out to both providers in parallel
//   - persists both results and moves the session to completed (conditional
//     update, so a racing writer cannot duplicate the work)
//   - renders the PDF report and emails it
//
// The worker only handles claiming, heartbeat, and the terminal status write.
type SessionExecutor interface {
	Execute(ctx context.Context, session *ent.ResearchSession) *ExecutionResult
}

// ExecutionResult is just the terminal state. Provider results and
// completed_at were already written by the executor during processing.
type ExecutionResult struct {
	Status researchsession.Status // email_sent, completed (lost the completion race), failed
	Error  error                  // Error details (if failed)
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveSessions   int            `json:"active_sessions"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID                string    `json:"id"`
	Status            string    `json:"status"` // "idle" or "working"
	CurrentSessionID  string    `json:"current_session_id,omitempty"`
	SessionsProcessed int       `json:"sessions_processed"`
	LastActivity      time.Time `json:"last_activity"`
}
