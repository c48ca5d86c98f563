// Package jobs provides scheduled background tasks for the manufacturing
// execution system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance the request path cannot cover.
//
// # Available Jobs
//
// 1. ReservationExpiryJob - Runs every minute to release material
// reservations whose expiry has passed, returning their stock to the
// available pool.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(releaseExpiredHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Job runs that fail are logged and retried on the next tick; a failed job
// start stops any already running jobs.
package jobs
