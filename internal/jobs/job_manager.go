package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"logipeek/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	expiredPendingJob *ExpiredPendingJob
	staleClaimJob     *StaleClaimJob
}

// NewJobManager creates a new job manager with both maintenance sweeps wired.
// The cron specs come from configuration so tests and deployments can tune
// sweep frequency without code changes.
func NewJobManager(
	expirePendingHandler commands.ExpirePendingOrdersCommandHandler,
	reopenStaleHandler commands.ReopenStaleClaimsCommandHandler,
	now func() time.Time,
	expiredPendingSpec string,
	staleClaimSpec string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		expiredPendingJob: NewExpiredPendingJob(expirePendingHandler, now, expiredPendingSpec, logger),
		staleClaimJob:     NewStaleClaimJob(reopenStaleHandler, now, staleClaimSpec, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.expiredPendingJob.Start(); err != nil {
		return fmt.Errorf("failed to start expired pending job: %w", err)
	}

	if err := jm.staleClaimJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.expiredPendingJob.Stop()
		return fmt.Errorf("failed to start stale claim job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.expiredPendingJob.Stop()
	jm.staleClaimJob.Stop()
}
