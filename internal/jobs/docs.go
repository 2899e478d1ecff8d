// Package jobs provides scheduled background tasks for the forwarding
// platform.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. ScheduleActivationJob - Runs every minute to promote fee schedules
// whose effective date has arrived and retire the previously active one.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(activateScheduleHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The activation job ignores ErrNoScheduleDue, which simply means no
// schedule has been registered yet. Everything else is logged as an error.
package jobs
