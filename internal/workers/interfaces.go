// Package workers runs the background jobs of whitelistd. A Worker owns a
// goroutine between Start and Stop; Workers starts and stops a group of them
// as one unit.
package workers

import "context"

// Worker is a restartable background job.
//
// Start launches the job and returns immediately. The job runs until ctx is
// cancelled or Stop is called. Stop blocks until the job's goroutine has
// exited and is a no-op when the job is not running.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
