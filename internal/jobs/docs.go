// Package jobs provides scheduled background tasks for the order lifecycle
// engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to run the two maintenance sweeps the order pool needs.
//
// # Available Jobs
//
// 1. ExpiredPendingJob - Cancels orders that found no driver within the
// posting window (hourly by default).
// 2. StaleClaimJob - Reopens accepted orders whose driver never reached the
// pickup point within the pickup window (every ten minutes by default).
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(
//		expirePendingHandler, reopenStaleHandler,
//		time.Now, cfg.ExpiredPendingCronSpec, cfg.StaleClaimCronSpec, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Cron specs use the standard five-field format and come from configuration.
// Both sweeps are idempotent log-and-continue operations: an order that fails
// to process is logged and skipped, the sweep moves on, and the next run picks
// it up again.
//
// # Error Handling
//
// - Sweep failures are logged with the component logger and never panic
// - A sweep that touched zero orders stays silent to keep logs quiet
// - Failed job starts stop any already running jobs
package jobs
