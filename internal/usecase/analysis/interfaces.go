package analysis

import "context"

// ModelConnector is the single operation the pipeline needs from the
// external model provider: one prompt in, raw completion text out.
type ModelConnector interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
