package jobs

import (
	"context"
	"errors"
	"log/slog"

	"forwarding/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ScheduleActivationJob promotes fee schedules whose effective date has
// arrived. Runs every minute so a schedule registered for a future date goes
// live within a minute of becoming due.
type ScheduleActivationJob struct {
	handler commands.ActivateDueScheduleCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewScheduleActivationJob creates a new job for fee schedule activation.
func NewScheduleActivationJob(
	handler commands.ActivateDueScheduleCommandHandler,
	logger *slog.Logger,
) *ScheduleActivationJob {
	return &ScheduleActivationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "schedule_activation_job"),
	}
}

// Start begins the schedule activation job to run every minute.
func (j *ScheduleActivationJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewActivateDueScheduleCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// No schedule registered yet is an expected state, not a failure
			if !errors.Is(err, commands.ErrNoScheduleDue) {
				j.logger.ErrorContext(ctx, "Schedule activation job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Schedule activation job started (running every minute)")
	return nil
}

// Stop stops the schedule activation job.
func (j *ScheduleActivationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Schedule activation job stopped")
}
