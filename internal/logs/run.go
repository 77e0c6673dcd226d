package logs

import (
	"context"
	"crypto/rand"
)

type runKey struct{}

// RunKey is the context key holding the RunID of the current pipeline run
var RunKey runKey

// RunID identifies one pass of the pipeline over a piece of source
type RunID string

// NewRun tags ctx with a fresh RunID, so that every record logged with the
// returned context can be correlated.
func NewRun(ctx context.Context) (context.Context, RunID) {
	id := RunID(rand.Text())
	return context.WithValue(ctx, RunKey, id), id
}
