package analysis

import (
	"math"

	"github.com/bryanwahyu/review-insight/internal/domain/reviews"
)

// RatingResult holds the overall rating metrics of one upload.
type RatingResult struct {
	TotalReviews            int         `json:"total_reviews"`
	ValidReviews            int         `json:"valid_reviews"`
	ValidReviewsRatio       float64     `json:"valid_reviews_ratio"`
	AverageRating           float64     `json:"average_rating"`
	RatingDistribution      map[int]int `json:"rating_distribution"`
	ValidRatingDistribution map[int]int `json:"valid_rating_distribution"`
	PositiveRate            float64     `json:"positive_rate"`
	TopVariant              *string     `json:"top_variant"`
	TopVariantCount         int         `json:"top_variant_count"`
	TopVariantImage         *string     `json:"top_variant_image"`
}

// Rating computes overall rating metrics. The two distributions always
// carry keys 1–5, zero-filled; ratios are 0 (not NaN) on empty tables.
func Rating(t *reviews.Table) RatingResult {
	res := RatingResult{
		RatingDistribution:      emptyDistribution(),
		ValidRatingDistribution: emptyDistribution(),
	}

	res.TotalReviews = len(t.Rows)

	var ratingSum, positive int
	for i := range t.Rows {
		r := &t.Rows[i]
		ratingSum += r.Rating
		res.RatingDistribution[r.Rating]++
		if r.HasText() {
			res.ValidReviews++
			res.ValidRatingDistribution[r.Rating]++
		}
		if r.Rating == 4 || r.Rating == 5 {
			positive++
		}
	}

	if res.TotalReviews > 0 {
		res.ValidReviewsRatio = round2(float64(res.ValidReviews) / float64(res.TotalReviews) * 100)
		res.AverageRating = round2(float64(ratingSum) / float64(res.TotalReviews))
		res.PositiveRate = round2(float64(positive) / float64(res.TotalReviews) * 100)
	}

	name, count := topVariant(t)
	if name != "" {
		res.TopVariant = &name
		res.TopVariantCount = count
		if img := topVariantImage(t, name); img != "" {
			res.TopVariantImage = &img
		}
	}

	return res
}

// topVariant returns the variant with the highest row count. Ties break by
// first-encountered order; blank variants never count.
func topVariant(t *reviews.Table) (string, int) {
	counts := make(map[string]int)
	var order []string
	for i := range t.Rows {
		v := t.Rows[i].Variant
		if isBlank(v) {
			continue
		}
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}

	best, bestCount := "", 0
	for _, v := range order {
		if counts[v] > bestCount {
			best, bestCount = v, counts[v]
		}
	}
	return best, bestCount
}

// topVariantImage returns the first non-empty image link among the
// variant's rows, reduced to its first comma-segment.
func topVariantImage(t *reviews.Table, variant string) string {
	for i := range t.Rows {
		r := &t.Rows[i]
		if r.Variant != variant || !r.HasImage() {
			continue
		}
		return reviews.FirstLink(r.ImageLinks)
	}
	return ""
}

func emptyDistribution() map[int]int {
	d := make(map[int]int, 5)
	for star := 1; star <= 5; star++ {
		d[star] = 0
	}
	return d
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round1(v float64) float64 { return math.Round(v*10) / 10 }
