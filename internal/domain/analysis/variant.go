package analysis

import (
	"sort"
	"strings"

	"github.com/bryanwahyu/review-insight/internal/domain/reviews"
)

// VariantStats holds the per-variant metrics.
type VariantStats struct {
	Count         int      `json:"count"`
	AverageRating float64  `json:"average_rating"`
	Price         *string  `json:"price"`
	PriceNumeric  *float64 `json:"price_numeric"`
	ImageURL      *string  `json:"image_url"`
}

// VariantResult maps each distinct variant to its stats. VariantList keeps
// first-encountered order.
type VariantResult struct {
	VariantList  []string                `json:"variant_list"`
	VariantStats map[string]VariantStats `json:"variant_stats"`
}

// PriceSalesPoint relates a variant's price to its review volume, for the
// price-vs-volume bubble view. Only variants with a known numeric price
// appear.
type PriceSalesPoint struct {
	Variant string  `json:"variant"`
	Price   float64 `json:"price"`
	Sales   int     `json:"sales"`
	Rating  float64 `json:"rating"`
}

// VariantChartData is the chart-ready shape: one series sorted by review
// count descending, an independent one sorted by average rating descending.
type VariantChartData struct {
	VariantNames       []string          `json:"variant_names"`
	ReviewCounts       []int             `json:"review_counts"`
	Prices             []string          `json:"prices"`
	AvgRatings         []float64         `json:"avg_ratings"`
	AvgRatingsVariants []string          `json:"avg_ratings_variants"`
	PriceSalesData     []PriceSalesPoint `json:"price_sales_data"`
}

// Variant computes per-variant stats over rows with a non-blank variant.
func Variant(t *reviews.Table) VariantResult {
	res := VariantResult{
		VariantList:  []string{},
		VariantStats: map[string]VariantStats{},
	}

	groups := make(map[string][]*reviews.Review)
	for i := range t.Rows {
		r := &t.Rows[i]
		if isBlank(r.Variant) {
			continue
		}
		if _, seen := groups[r.Variant]; !seen {
			res.VariantList = append(res.VariantList, r.Variant)
		}
		groups[r.Variant] = append(groups[r.Variant], r)
	}

	for _, name := range res.VariantList {
		rows := groups[name]
		stats := VariantStats{Count: len(rows)}

		var sum int
		for _, r := range rows {
			sum += r.Rating
		}
		if len(rows) > 0 {
			stats.AverageRating = round1(float64(sum) / float64(len(rows)))
		}

		recent := byRecency(rows)
		if price := representativePrice(recent, name); price != "" {
			stats.Price = &price
		}
		for _, r := range recent {
			if r.PriceNumeric != nil {
				v := *r.PriceNumeric
				stats.PriceNumeric = &v
				break
			}
		}

		// Image keeps table order, no recency sort.
		for _, r := range rows {
			if r.HasImage() {
				img := reviews.FirstLink(r.ImageLinks)
				stats.ImageURL = &img
				break
			}
		}

		res.VariantStats[name] = stats
	}

	return res
}

// byRecency returns the rows sorted by review time descending, nil times
// last. Stable, so equal timestamps keep table order.
func byRecency(rows []*reviews.Review) []*reviews.Review {
	sorted := make([]*reviews.Review, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].ReviewedAt, sorted[j].ReviewedAt
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
	return sorted
}

// representativePrice picks the most recent non-empty display price. A
// price literally equal to the variant name signals a mis-mapped column
// and is rejected.
func representativePrice(recent []*reviews.Review, variant string) string {
	for _, r := range recent {
		price := strings.TrimSpace(r.PriceDisplay)
		if price == "" {
			continue
		}
		if price == variant {
			return ""
		}
		return price
	}
	return ""
}

// ChartData builds the two independently-sorted chart series and the
// price/count/rating triple list.
func (r VariantResult) ChartData() VariantChartData {
	data := VariantChartData{
		VariantNames:       []string{},
		ReviewCounts:       []int{},
		Prices:             []string{},
		AvgRatings:         []float64{},
		AvgRatingsVariants: []string{},
		PriceSalesData:     []PriceSalesPoint{},
	}

	byCount := append([]string(nil), r.VariantList...)
	sort.SliceStable(byCount, func(i, j int) bool {
		return r.VariantStats[byCount[i]].Count > r.VariantStats[byCount[j]].Count
	})

	for _, name := range byCount {
		stats := r.VariantStats[name]
		data.VariantNames = append(data.VariantNames, name)
		data.ReviewCounts = append(data.ReviewCounts, stats.Count)
		price := ""
		if stats.Price != nil {
			price = *stats.Price
		}
		data.Prices = append(data.Prices, price)

		if stats.PriceNumeric != nil {
			data.PriceSalesData = append(data.PriceSalesData, PriceSalesPoint{
				Variant: name,
				Price:   *stats.PriceNumeric,
				Sales:   stats.Count,
				Rating:  stats.AverageRating,
			})
		}
	}

	byRating := append([]string(nil), r.VariantList...)
	sort.SliceStable(byRating, func(i, j int) bool {
		return r.VariantStats[byRating[i]].AverageRating > r.VariantStats[byRating[j]].AverageRating
	})
	for _, name := range byRating {
		data.AvgRatingsVariants = append(data.AvgRatingsVariants, name)
		data.AvgRatings = append(data.AvgRatings, r.VariantStats[name].AverageRating)
	}

	return data
}
