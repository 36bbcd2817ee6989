package analysis

import (
	"sort"

	"github.com/bryanwahyu/review-insight/internal/domain/reviews"
)

// TrendResult groups review activity by calendar month ("YYYY-MM").
// Rows without a parseable review time are excluded.
type TrendResult struct {
	MonthlyReviews        map[string]int            `json:"monthly_reviews"`
	MonthlyRating         map[string]float64        `json:"monthly_rating"`
	VariantMonthlyReviews map[string]map[string]int `json:"variant_monthly_reviews"`
}

// TrendChartData is the chart-ready shape: parallel arrays re-indexed
// against the sorted union of all months, missing months zero-filled.
type TrendChartData struct {
	Months       []string         `json:"months"`
	ReviewCounts []int            `json:"review_counts"`
	AvgRatings   []float64        `json:"avg_ratings"`
	VariantData  map[string][]int `json:"variant_data"`
}

// Trend computes per-month counts, per-month average rating and the
// per-variant monthly breakdown.
func Trend(t *reviews.Table) TrendResult {
	res := TrendResult{
		MonthlyReviews:        map[string]int{},
		MonthlyRating:         map[string]float64{},
		VariantMonthlyReviews: map[string]map[string]int{},
	}

	ratingSums := make(map[string]int)
	for i := range t.Rows {
		r := &t.Rows[i]
		if r.ReviewedAt == nil {
			continue
		}
		month := r.ReviewedAt.Format("2006-01")

		res.MonthlyReviews[month]++
		ratingSums[month] += r.Rating

		if isBlank(r.Variant) {
			continue
		}
		byMonth := res.VariantMonthlyReviews[r.Variant]
		if byMonth == nil {
			byMonth = make(map[string]int)
			res.VariantMonthlyReviews[r.Variant] = byMonth
		}
		byMonth[month]++
	}

	for month, count := range res.MonthlyReviews {
		res.MonthlyRating[month] = round2(float64(ratingSums[month]) / float64(count))
	}

	return res
}

// ChartData flattens the trend breakdown into parallel arrays. Months sort
// lexicographically, which for "YYYY-MM" keys equals chronological order.
func (r TrendResult) ChartData() TrendChartData {
	monthSet := make(map[string]struct{}, len(r.MonthlyReviews))
	for m := range r.MonthlyReviews {
		monthSet[m] = struct{}{}
	}
	for m := range r.MonthlyRating {
		monthSet[m] = struct{}{}
	}

	months := make([]string, 0, len(monthSet))
	for m := range monthSet {
		months = append(months, m)
	}
	sort.Strings(months)

	data := TrendChartData{
		Months:       months,
		ReviewCounts: make([]int, len(months)),
		AvgRatings:   make([]float64, len(months)),
		VariantData:  make(map[string][]int, len(r.VariantMonthlyReviews)),
	}
	for i, m := range months {
		data.ReviewCounts[i] = r.MonthlyReviews[m]
		data.AvgRatings[i] = r.MonthlyRating[m]
	}
	for variant, byMonth := range r.VariantMonthlyReviews {
		series := make([]int, len(months))
		for i, m := range months {
			series[i] = byMonth[m]
		}
		data.VariantData[variant] = series
	}

	return data
}
