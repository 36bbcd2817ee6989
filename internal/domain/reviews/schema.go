package reviews

import (
	"strings"
	"unicode/utf8"
)

// CanonicalField is a logical column name every input sheet is normalized into.
type CanonicalField string

const (
	FieldReviewer     CanonicalField = "reviewer"
	FieldReviewText   CanonicalField = "review_text"
	FieldStarRating   CanonicalField = "star_rating"
	FieldVariant      CanonicalField = "variant"
	FieldPriceDisplay CanonicalField = "variant_price_display"
	FieldPriceNumeric CanonicalField = "variant_price_numeric"
	FieldImageLinks   CanonicalField = "image_links"
	FieldVideoLinks   CanonicalField = "video_links"
	FieldReviewTime   CanonicalField = "review_time"
)

// Fields lists the canonical schema in order.
var Fields = []CanonicalField{
	FieldReviewer,
	FieldReviewText,
	FieldStarRating,
	FieldVariant,
	FieldPriceDisplay,
	FieldPriceNumeric,
	FieldImageLinks,
	FieldVideoLinks,
	FieldReviewTime,
}

// RequiredFields must resolve to a source column for an upload to be analyzable.
var RequiredFields = []CanonicalField{FieldReviewer, FieldStarRating, FieldReviewTime}

// columnAliases lists acceptable source-header spellings per field, the
// export's native header first. Shopee exports ship Chinese headers; the
// English variants cover hand-edited sheets.
var columnAliases = map[CanonicalField][]string{
	FieldReviewer:     {"评论人", "reviewer", "reviewer_name", "用户", "用户名"},
	FieldReviewText:   {"评论内容", "review", "review_text", "review_content", "内容", "评价内容"},
	FieldStarRating:   {"星级", "rating", "star", "stars", "评分", "star_rating"},
	FieldVariant:      {"变体", "variant", "sku", "规格", "产品变体"},
	FieldPriceDisplay: {"变体价格", "price", "variant_price", "价格", "product_price"},
	FieldImageLinks:   {"图片链接", "image", "image_url", "图片", "image_link", "image_links"},
	FieldVideoLinks:   {"视频链接", "video", "video_url", "视频", "video_link", "video_links"},
	FieldReviewTime:   {"评论时间", "review_time", "time", "时间", "评论日期", "date"},
}

// Unmatched marks a canonical field with no source column.
const Unmatched = -1

// ColumnMapping maps each canonical field to the zero-based index of its
// source column, or Unmatched. Built once per upload, immutable afterwards.
type ColumnMapping map[CanonicalField]int

// Resolved reports whether the field was found in the source header row.
func (m ColumnMapping) Resolved(f CanonicalField) bool {
	idx, ok := m[f]
	return ok && idx != Unmatched
}

// MapColumns resolves a raw header row against the canonical schema.
// Each field runs the match passes independently over the full header list,
// so a greedy match for one field can never steal another field's exact hit.
func MapColumns(header []string) ColumnMapping {
	normalized := make([]string, len(header))
	for i, h := range header {
		normalized[i] = strings.ToLower(strings.TrimSpace(h))
	}

	m := make(ColumnMapping, len(Fields))
	for _, f := range Fields {
		if f == FieldPriceNumeric {
			continue
		}
		m[f] = findColumnIndex(normalized, columnAliases[f])
	}
	// The numeric price is derived from the display price column.
	m[FieldPriceNumeric] = m[FieldPriceDisplay]
	return m
}

// findColumnIndex runs three ordered passes over the header row and returns
// the first hit of the first pass that yields any match:
//
//  1. exact: alias == header (case-insensitive, trimmed)
//  2. substring: header contains the alias, guarded so a short alias
//     (≤2 runes) cannot capture a header more than 2 runes longer,
//     e.g. "变体" must not swallow a compound price header
//  3. reverse: the header itself is a prefix or suffix of an alias,
//     recovering headers like "价格" for the "变体价格" field
func findColumnIndex(headers []string, aliases []string) int {
	for _, alias := range aliases {
		a := strings.ToLower(strings.TrimSpace(alias))
		for idx, h := range headers {
			if h == a {
				return idx
			}
		}
	}

	for _, alias := range aliases {
		a := strings.ToLower(strings.TrimSpace(alias))
		for idx, h := range headers {
			if !strings.Contains(h, a) || h == a {
				continue
			}
			if utf8.RuneCountInString(a) <= 2 &&
				utf8.RuneCountInString(h)-utf8.RuneCountInString(a) > 2 {
				continue
			}
			return idx
		}
	}

	for _, alias := range aliases {
		a := strings.ToLower(strings.TrimSpace(alias))
		for idx, h := range headers {
			if h == "" || h == a {
				continue
			}
			if strings.HasPrefix(a, h) || strings.HasSuffix(a, h) {
				return idx
			}
		}
	}

	return Unmatched
}
