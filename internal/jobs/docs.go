// Package jobs provides scheduled background tasks for the pizzeria service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance operations.
//
// # Available Jobs
//
// 1. DraftCleanupJob - Runs on a configurable schedule to remove draft orders
// that have been abandoned for longer than the configured time-to-live
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(pruneHandler, "@hourly", 24*time.Hour, logger)
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
// The cleanup schedule is a standard five-field cron expression (descriptors
// like "@hourly" also work). Drafts are only removed once their last
// modification is older than the configured time-to-live, so running the job
// more often than the TTL is safe.
//
// # Error Handling
//
// A sweep that removes nothing is the normal case and is not logged.
// Failures are logged and retried on the next scheduled run.
package jobs
