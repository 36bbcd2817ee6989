package charts

import (
	"encoding/json"

	"github.com/bryanwahyu/review-insight/internal/domain/analysis"
)

// PlotlyGenerator emits Plotly figure objects ({data, layout}) for the
// legacy plotly.js frontend.
type PlotlyGenerator struct{}

func (g *PlotlyGenerator) Generate(b *analysis.Bundle) (map[string]json.RawMessage, error) {
	trend := b.Trend.ChartData()
	variant := b.Variant.ChartData()

	starCats, starVals := starLabels(b.Rating.ValidRatingDistribution)

	specs := map[string]any{
		"valid_reviews_pie": g.figure(
			[]map[string]any{{
				"type":   "pie",
				"labels": []string{"有效评论", "无效评论"},
				"values": []int{b.Rating.ValidReviews, b.Rating.TotalReviews - b.Rating.ValidReviews},
				"hole":   0.4,
			}},
			map[string]any{},
		),
		"rating_distribution_funnel": g.figure(
			[]map[string]any{{
				"type":        "bar",
				"orientation": "h",
				"y":           starCats,
				"x":           starVals,
			}},
			map[string]any{"yaxis": map[string]any{"autorange": "reversed"}},
		),
		"monthly_reviews_bar": g.figure(
			[]map[string]any{{
				"type": "bar",
				"x":    trend.Months,
				"y":    trend.ReviewCounts,
			}},
			map[string]any{},
		),
		"rating_trend_line": g.figure(
			[]map[string]any{{
				"type": "scatter",
				"mode": "lines+markers",
				"x":    trend.Months,
				"y":    trend.AvgRatings,
				"line": map[string]any{"shape": "spline"},
			}},
			map[string]any{"yaxis": map[string]any{"range": []float64{0, 5}}},
		),
		"variant_trend_area": g.variantArea(trend),
		"variant_radar": g.figure(
			[]map[string]any{{
				"type": "bar",
				"x":    variant.VariantNames,
				"y":    variant.ReviewCounts,
			}},
			map[string]any{},
		),
		"variant_rating_bar": g.figure(
			[]map[string]any{{
				"type":        "bar",
				"orientation": "h",
				"y":           variant.AvgRatingsVariants,
				"x":           variant.AvgRatings,
			}},
			map[string]any{
				"xaxis": map[string]any{"range": []float64{3, 5.5}},
				"yaxis": map[string]any{"autorange": "reversed"},
			},
		),
		"price_sales_bubble": g.bubble(variant.PriceSalesData),
		"media_coverage_pie": g.figure(
			[]map[string]any{{
				"type":   "pie",
				"labels": []string{"带文字", "带图片", "带视频", "带媒体"},
				"values": []int{b.Media.WithText, b.Media.WithImage, b.Media.WithVideo, b.Media.WithMedia},
				"hole":   0.4,
			}},
			map[string]any{},
		),
	}

	return marshalAll(specs)
}

func (g *PlotlyGenerator) figure(data []map[string]any, layout map[string]any) map[string]any {
	layout["colorway"] = businessColors
	layout["font"] = map[string]any{"size": 12, "color": "#333"}
	return map[string]any{"data": data, "layout": layout}
}

func (g *PlotlyGenerator) variantArea(trend analysis.TrendChartData) map[string]any {
	names := make([]string, 0, len(trend.VariantData))
	for name := range trend.VariantData {
		names = append(names, name)
	}
	sortStrings(names)

	data := make([]map[string]any, 0, len(names))
	for _, name := range names {
		data = append(data, map[string]any{
			"type":       "scatter",
			"mode":       "lines",
			"stackgroup": "one",
			"name":       name,
			"x":          trend.Months,
			"y":          trend.VariantData[name],
		})
	}
	return g.figure(data, map[string]any{})
}

func (g *PlotlyGenerator) bubble(points []analysis.PriceSalesPoint) map[string]any {
	x := make([]float64, len(points))
	y := make([]int, len(points))
	text := make([]string, len(points))
	size := make([]float64, len(points))
	for i, p := range points {
		x[i] = p.Price
		y[i] = p.Sales
		text[i] = p.Variant
		size[i] = p.Rating * 8
	}
	return g.figure(
		[]map[string]any{{
			"type":   "scatter",
			"mode":   "markers",
			"x":      x,
			"y":      y,
			"text":   text,
			"marker": map[string]any{"size": size},
		}},
		map[string]any{
			"xaxis": map[string]any{"title": "价格"},
			"yaxis": map[string]any{"title": "评论数"},
		},
	)
}
