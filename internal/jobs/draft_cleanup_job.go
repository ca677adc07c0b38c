package jobs

import (
	"context"
	"log/slog"
	"time"

	"pizzeria/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// staleDraftPruner removes draft orders untouched for longer than the
// requested duration and reports how many were removed.
type staleDraftPruner interface {
	Handle(ctx context.Context, cmd commands.PruneStaleDraftsCommand) (int64, error)
}

// DraftCleanupJob periodically removes abandoned draft orders.
// A draft counts as abandoned once it has not been modified for the
// configured time-to-live.
type DraftCleanupJob struct {
	pruner   staleDraftPruner
	schedule string
	draftTTL time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDraftCleanupJob creates a cleanup job that runs on the given cron
// schedule and prunes drafts older than draftTTL.
func NewDraftCleanupJob(
	pruner staleDraftPruner,
	schedule string,
	draftTTL time.Duration,
	logger *slog.Logger,
) *DraftCleanupJob {
	return &DraftCleanupJob{
		pruner:   pruner,
		schedule: schedule,
		draftTTL: draftTTL,
		cron:     cron.New(),
		logger:   logger.With("component", "draft_cleanup_job"),
	}
}

// Start schedules the cleanup job. Returns an error for an invalid schedule.
func (j *DraftCleanupJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Draft cleanup job started",
		"schedule", j.schedule, "draft_ttl", j.draftTTL.String())
	return nil
}

// Stop stops the cleanup job.
func (j *DraftCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Draft cleanup job stopped")
}

func (j *DraftCleanupJob) run() {
	ctx := context.Background()

	cmd, err := commands.NewPruneStaleDraftsCommand(j.draftTTL)
	if err != nil {
		j.logger.ErrorContext(ctx, "Draft cleanup job misconfigured", "error", err)
		return
	}

	removed, err := j.pruner.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Draft cleanup job failed", "error", err)
		return
	}

	// A quiet sweep is the common case and not worth a log line.
	if removed > 0 {
		j.logger.InfoContext(ctx, "Removed stale draft orders", "count", removed)
	}
}
