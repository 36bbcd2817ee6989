package reviews

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// priceRegexp captures the first run of digits/commas/decimal point in a
// price string, e.g. "₱1,299.00" → "1,299.00".
var priceRegexp = regexp.MustCompile(`[\d,]+\.?\d*`)

// timeLayouts are tried in order when parsing review timestamps.
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Normalize builds a Table from a raw header row and data rows. Per-field
// failures degrade that field to its neutral value; nothing here aborts a
// row or the upload.
func Normalize(header []string, rows [][]string) *Table {
	mapping := MapColumns(header)
	t := &Table{
		Mapping: mapping,
		Rows:    make([]Review, 0, len(rows)),
	}

	for _, row := range rows {
		cell := func(f CanonicalField) string {
			idx := mapping[f]
			if idx == Unmatched || idx >= len(row) {
				return ""
			}
			return row[idx]
		}

		rating, inRange := parseRating(cell(FieldStarRating))
		if !inRange {
			t.RawRatingOutOfRange++
		}

		price := cleanToken(cell(FieldPriceDisplay))

		t.Rows = append(t.Rows, Review{
			Reviewer:     cleanToken(cell(FieldReviewer)),
			Text:         cleanToken(cell(FieldReviewText)),
			Rating:       rating,
			Variant:      cleanToken(cell(FieldVariant)),
			PriceDisplay: price,
			PriceNumeric: parsePriceNumeric(price),
			ImageLinks:   cleanToken(cell(FieldImageLinks)),
			VideoLinks:   cleanToken(cell(FieldVideoLinks)),
			ReviewedAt:   parseReviewTime(cell(FieldReviewTime)),
		})
	}

	return t
}

// cleanToken maps NaN-like tokens ("", "nan" in any case, "None") to the
// empty string and leaves every other value untouched.
func cleanToken(s string) string {
	if isNaNToken(s) {
		return ""
	}
	return s
}

func isNaNToken(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || strings.EqualFold(s, "nan") || s == "None"
}

// parseRating parses a raw star value: non-parseable becomes 0, the result
// is truncated to an integer and clamped to [1,5]. The second return is
// false when the pre-clamp value was outside [1,5].
func parseRating(raw string) (int, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		v = 0
	}
	inRange := v >= 1 && v <= 5
	// bound before converting; int(huge float) is platform-unspecified
	if v > 5 {
		v = 6
	}
	if v < 1 {
		v = 0
	}
	n := int(v)
	if n < 1 {
		n = 1
	}
	if n > 5 {
		n = 5
	}
	return n, inRange
}

// parsePriceNumeric derives a numeric price from the display text: first
// digit run, thousands separators stripped. Unparseable prices are nil.
func parsePriceNumeric(display string) *float64 {
	match := priceRegexp.FindString(display)
	if match == "" {
		return nil
	}
	match = strings.ReplaceAll(match, ",", "")
	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return nil
	}
	return &v
}

// parseReviewTime parses the expected timestamp format, falling back to a
// bare date. Unparseable times are nil; such rows are excluded from
// time-based aggregates but keep counting everywhere else.
func parseReviewTime(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return &ts
		}
	}
	return nil
}
