package insight

import (
	"context"
	"strings"

	domain "github.com/bryanwahyu/review-insight/internal/domain/insight"
)

// Service implements the AI review-digest use case. The capability is
// optional: with no client configured every call fails with
// domain.ErrUnavailable.
type Service struct {
	Client     domain.Client
	MaxReviews int
}

// Available reports whether an AI provider is configured.
func (s *Service) Available() bool { return s != nil && s.Client != nil }

// Summarize digests a sample of review texts. Blank texts are dropped and
// the sample is capped at MaxReviews before it reaches the provider.
func (s *Service) Summarize(ctx context.Context, texts []string) (string, error) {
	if !s.Available() {
		return "", domain.ErrUnavailable
	}

	sample := make([]string, 0, len(texts))
	for _, t := range texts {
		if strings.TrimSpace(t) == "" {
			continue
		}
		sample = append(sample, t)
		if s.MaxReviews > 0 && len(sample) >= s.MaxReviews {
			break
		}
	}
	if len(sample) == 0 {
		return "", domain.ErrNoReviews
	}

	return s.Client.Summarize(ctx, sample)
}
