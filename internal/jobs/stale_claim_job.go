package jobs

import (
	"context"
	"log/slog"
	"time"

	"logipeek/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleClaimJob reopens accepted orders whose driver never picked up.
// Runs every ten minutes so a dropped claim returns to the pool quickly.
type StaleClaimJob struct {
	handler commands.ReopenStaleClaimsCommandHandler
	now     func() time.Time
	spec    string
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStaleClaimJob creates the sweep for claims whose pickup window expired.
func NewStaleClaimJob(
	handler commands.ReopenStaleClaimsCommandHandler,
	now func() time.Time,
	spec string,
	logger *slog.Logger,
) *StaleClaimJob {
	return &StaleClaimJob{
		handler: handler,
		now:     now,
		spec:    spec,
		cron:    cron.New(),
		logger:  logger.With("component", "stale_claim_job"),
	}
}

// Start schedules the sweep.
func (j *StaleClaimJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()

		cmd, err := commands.NewReopenStaleClaimsCommand(j.now())
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale claim sweep could not be built", "error", err)
			return
		}

		reopened, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale claim sweep failed", "error", err)
			return
		}
		if reopened > 0 {
			j.logger.InfoContext(ctx, "Stale claim sweep finished", "reopened", reopened)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale claim job started", "schedule", j.spec)
	return nil
}

// Stop stops the stale claim job.
func (j *StaleClaimJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale claim job stopped")
}
