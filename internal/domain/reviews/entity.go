package reviews

import (
	"strings"
	"time"
)

// Review is one normalized row. Every canonical field is present even when
// the source sheet lacked a matching column; missing values degrade to the
// field's neutral value (0, nil, or "").
type Review struct {
	Reviewer     string     `json:"reviewer"`
	Text         string     `json:"review_text"`
	Rating       int        `json:"star_rating"`
	Variant      string     `json:"variant"`
	PriceDisplay string     `json:"variant_price_display"`
	PriceNumeric *float64   `json:"variant_price_numeric"`
	ImageLinks   string     `json:"image_links"`
	VideoLinks   string     `json:"video_links"`
	ReviewedAt   *time.Time `json:"review_time"`
}

// HasText reports whether the review counts as "valid" (non-empty text
// after trimming).
func (r *Review) HasText() bool { return strings.TrimSpace(r.Text) != "" }

// HasImage reports a non-blank image link field.
func (r *Review) HasImage() bool { return strings.TrimSpace(r.ImageLinks) != "" }

// HasVideo reports a non-blank video link field.
func (r *Review) HasVideo() bool { return strings.TrimSpace(r.VideoLinks) != "" }

// Table is the normalized view of one uploaded sheet. Owned by a single
// request; aggregators only read it.
type Table struct {
	Rows    []Review
	Mapping ColumnMapping

	// RawRatingOutOfRange counts rows whose parsed star value fell outside
	// [1,5] before clamping. Surfaced as a validation warning.
	RawRatingOutOfRange int
}

// FirstLink reduces a possibly comma-separated link list to its first
// segment, trimmed. Returns "" for blank input.
func FirstLink(links string) string {
	links = strings.TrimSpace(links)
	if links == "" {
		return ""
	}
	if i := strings.Index(links, ","); i >= 0 {
		links = links[:i]
	}
	return strings.TrimSpace(links)
}
