package jobs

import (
	"context"
	"log/slog"
	"time"

	"logipeek/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ExpiredPendingJob cancels orders that stayed unclaimed past their posting
// window. Runs hourly.
type ExpiredPendingJob struct {
	handler commands.ExpirePendingOrdersCommandHandler
	now     func() time.Time
	spec    string
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewExpiredPendingJob creates the hourly sweep for stale pending orders.
func NewExpiredPendingJob(
	handler commands.ExpirePendingOrdersCommandHandler,
	now func() time.Time,
	spec string,
	logger *slog.Logger,
) *ExpiredPendingJob {
	return &ExpiredPendingJob{
		handler: handler,
		now:     now,
		spec:    spec,
		cron:    cron.New(),
		logger:  logger.With("component", "expired_pending_job"),
	}
}

// Start schedules the sweep. Each run is idempotent: orders that another run
// already cancelled are simply not selected again.
func (j *ExpiredPendingJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()

		cmd, err := commands.NewExpirePendingOrdersCommand(j.now())
		if err != nil {
			j.logger.ErrorContext(ctx, "Expired pending sweep could not be built", "error", err)
			return
		}

		cancelled, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Expired pending sweep failed", "error", err)
			return
		}
		if cancelled > 0 {
			j.logger.InfoContext(ctx, "Expired pending sweep finished", "cancelled", cancelled)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Expired pending job started", "schedule", j.spec)
	return nil
}

// Stop stops the expired pending job.
func (j *ExpiredPendingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Expired pending job stopped")
}
