// Package jobs provides the scheduled background tasks of the dispatch
// system, built on github.com/robfig/cron/v3.
//
// The single job, OrderDispatchJob, runs every second and matches the oldest
// pending order with the first available driver. Empty-queue and no-driver
// outcomes are expected business results and are not logged as errors.
package jobs
