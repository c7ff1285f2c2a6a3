// Package workers runs the background jobs of the notes client.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is done and returns nil,
// or returns early with an error when the job cannot make progress.
type Worker interface {
	Run(ctx context.Context) error
}
