package insight

import "context"

// Client is the AI provider port. Summarize digests a sample of review
// texts into a JSON summary string.
type Client interface {
	Summarize(ctx context.Context, texts []string) (string, error)
}
