package analysis

import (
	"strings"

	"github.com/bryanwahyu/review-insight/internal/domain/reviews"
)

// Bundle groups the four analyzer outputs for one upload.
type Bundle struct {
	Rating  RatingResult  `json:"rating"`
	Trend   TrendResult   `json:"trend"`
	Variant VariantResult `json:"variant"`
	Media   MediaResult   `json:"media"`
}

// Analyze runs the four aggregators over one normalized table. They are
// independent, read-only and have no ordering dependency.
func Analyze(t *reviews.Table) *Bundle {
	return &Bundle{
		Rating:  Rating(t),
		Trend:   Trend(t),
		Variant: Variant(t),
		Media:   Media(t),
	}
}

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }
