package jobs

import (
	"fmt"
	"log/slog"

	"forwarding/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	scheduleActivationJob *ScheduleActivationJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	activateScheduleHandler commands.ActivateDueScheduleCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		scheduleActivationJob: NewScheduleActivationJob(activateScheduleHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.scheduleActivationJob.Start(); err != nil {
		return fmt.Errorf("failed to start schedule activation job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.scheduleActivationJob.Stop()
}
