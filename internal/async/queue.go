package async

import (
	"context"
	"time"
)

// Job is the smallest useful unit the queue accepts: a document path
// discovered by ingestion.
type Job struct {
	Path        string
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
