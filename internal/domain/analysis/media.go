package analysis

import (
	"github.com/bryanwahyu/review-insight/internal/domain/reviews"
)

// MediaResult measures how many reviews carry text, images or video.
// Ratios are percentages rounded to 2 decimals, 0 on empty tables.
type MediaResult struct {
	TotalReviews   int     `json:"total_reviews"`
	WithText       int     `json:"with_text"`
	WithTextRatio  float64 `json:"with_text_ratio"`
	WithImage      int     `json:"with_image"`
	WithImageRatio float64 `json:"with_image_ratio"`
	WithVideo      int     `json:"with_video"`
	WithVideoRatio float64 `json:"with_video_ratio"`
	WithMedia      int     `json:"with_media"`
	WithMediaRatio float64 `json:"with_media_ratio"`
}

// Media computes media coverage. When only one of the image/video columns
// resolved, with_media degenerates to that single indicator.
func Media(t *reviews.Table) MediaResult {
	res := MediaResult{TotalReviews: len(t.Rows)}
	if res.TotalReviews == 0 {
		return res
	}

	hasImageCol := t.Mapping.Resolved(reviews.FieldImageLinks)
	hasVideoCol := t.Mapping.Resolved(reviews.FieldVideoLinks)

	for i := range t.Rows {
		r := &t.Rows[i]
		if r.HasText() {
			res.WithText++
		}
		if r.HasImage() {
			res.WithImage++
		}
		if r.HasVideo() {
			res.WithVideo++
		}
		if r.HasImage() || r.HasVideo() {
			res.WithMedia++
		}
	}

	switch {
	case hasImageCol && hasVideoCol:
		// keep the OR count
	case hasImageCol:
		res.WithMedia = res.WithImage
	case hasVideoCol:
		res.WithMedia = res.WithVideo
	default:
		res.WithMedia = 0
	}

	total := float64(res.TotalReviews)
	res.WithTextRatio = round2(float64(res.WithText) / total * 100)
	res.WithImageRatio = round2(float64(res.WithImage) / total * 100)
	res.WithVideoRatio = round2(float64(res.WithVideo) / total * 100)
	res.WithMediaRatio = round2(float64(res.WithMedia) / total * 100)

	return res
}
