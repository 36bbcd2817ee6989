package charts

import (
	"encoding/json"

	"github.com/bryanwahyu/review-insight/internal/domain/analysis"
)

// businessColors is the palette shared by all ECharts specs.
var businessColors = []string{
	"#1890ff", "#52c41a", "#faad14", "#f5222d",
	"#722ed1", "#13c2c2", "#eb2f96", "#fa8c16",
}

// EChartsGenerator emits ECharts option objects the frontend hands to
// echarts.js unchanged.
type EChartsGenerator struct{}

func (g *EChartsGenerator) Generate(b *analysis.Bundle) (map[string]json.RawMessage, error) {
	trend := b.Trend.ChartData()
	variant := b.Variant.ChartData()

	specs := map[string]any{
		"valid_reviews_pie": g.pie(
			[]string{"有效评论", "无效评论"},
			[]int{b.Rating.ValidReviews, b.Rating.TotalReviews - b.Rating.ValidReviews},
		),
		"rating_distribution_funnel": g.horizontalBar(starLabels(b.Rating.ValidRatingDistribution)),
		"monthly_reviews_bar":        g.bar(trend.Months, trend.ReviewCounts),
		"rating_trend_line":          g.line(trend.Months, trend.AvgRatings),
		"variant_trend_area":         g.stackedArea(trend.Months, trend.VariantData),
		"variant_radar":              g.bar(variant.VariantNames, variant.ReviewCounts),
		"variant_rating_bar":         g.ratingBar(variant.AvgRatingsVariants, variant.AvgRatings),
		"price_sales_bubble":         g.bubble(variant.PriceSalesData),
		"media_coverage_pie": g.pie(
			[]string{"带文字", "带图片", "带视频", "带媒体"},
			[]int{b.Media.WithText, b.Media.WithImage, b.Media.WithVideo, b.Media.WithMedia},
		),
	}

	return marshalAll(specs)
}

// tooltip is the shared plain business-style tooltip: full values, white
// background, no extra animation.
func (g *EChartsGenerator) tooltip(trigger string) map[string]any {
	return map[string]any{
		"trigger":         trigger,
		"backgroundColor": "rgba(255, 255, 255, 0.98)",
		"borderColor":     "#d9d9d9",
		"borderWidth":     1,
		"confine":         true,
		"textStyle":       map[string]any{"color": "#333", "fontSize": 12},
	}
}

func (g *EChartsGenerator) pie(labels []string, values []int) map[string]any {
	items := make([]map[string]any, len(labels))
	for i, label := range labels {
		items[i] = map[string]any{"name": label, "value": values[i]}
	}
	return map[string]any{
		"color":     businessColors,
		"animation": false,
		"tooltip":   g.tooltip("item"),
		"legend":    map[string]any{"left": "right", "orient": "vertical"},
		"series": []map[string]any{{
			"type":   "pie",
			"radius": []string{"40%", "70%"},
			"center": []string{"50%", "50%"},
			"data":   items,
			"label":  map[string]any{"formatter": "{b}: {c}"},
		}},
	}
}

func (g *EChartsGenerator) bar(categories []string, values []int) map[string]any {
	return map[string]any{
		"color":     businessColors,
		"animation": false,
		"tooltip":   g.tooltip("axis"),
		"xAxis":     map[string]any{"type": "category", "data": categories},
		"yAxis":     map[string]any{"type": "value"},
		"series": []map[string]any{{
			"type": "bar",
			"data": values,
		}},
	}
}

// horizontalBar keeps the strict 5→1 star order on the value axis.
func (g *EChartsGenerator) horizontalBar(categories []string, values []int) map[string]any {
	return map[string]any{
		"color":     businessColors,
		"animation": false,
		"tooltip":   g.tooltip("axis"),
		"xAxis":     map[string]any{"type": "value"},
		"yAxis":     map[string]any{"type": "category", "data": categories, "inverse": true},
		"series": []map[string]any{{
			"type":  "bar",
			"data":  values,
			"label": map[string]any{"show": true, "position": "right"},
		}},
	}
}

// ratingBar fixes the value axis to 3–5.5 so variant averages stay
// comparable across uploads.
func (g *EChartsGenerator) ratingBar(categories []string, values []float64) map[string]any {
	return map[string]any{
		"color":     businessColors,
		"animation": false,
		"tooltip":   g.tooltip("axis"),
		"xAxis":     map[string]any{"type": "value", "min": 3, "max": 5.5},
		"yAxis":     map[string]any{"type": "category", "data": categories, "inverse": true},
		"series": []map[string]any{{
			"type":  "bar",
			"data":  values,
			"label": map[string]any{"show": true, "position": "right"},
		}},
	}
}

func (g *EChartsGenerator) line(categories []string, values []float64) map[string]any {
	return map[string]any{
		"color":     businessColors,
		"animation": false,
		"tooltip":   g.tooltip("axis"),
		"xAxis":     map[string]any{"type": "category", "data": categories, "boundaryGap": false},
		"yAxis":     map[string]any{"type": "value", "min": 0, "max": 5},
		"series": []map[string]any{{
			"type":   "line",
			"data":   values,
			"smooth": true,
		}},
	}
}

func (g *EChartsGenerator) stackedArea(months []string, variants map[string][]int) map[string]any {
	series := make([]map[string]any, 0, len(variants))
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	// map order is random; sort for a deterministic spec
	sortStrings(names)
	for _, name := range names {
		series = append(series, map[string]any{
			"name":      name,
			"type":      "line",
			"stack":     "总量",
			"areaStyle": map[string]any{},
			"smooth":    true,
			"data":      variants[name],
		})
	}
	return map[string]any{
		"color":     businessColors,
		"animation": false,
		"tooltip":   g.tooltip("axis"),
		"legend":    map[string]any{"data": names},
		"xAxis":     map[string]any{"type": "category", "data": months, "boundaryGap": false},
		"yAxis":     map[string]any{"type": "value"},
		"series":    series,
	}
}

func (g *EChartsGenerator) bubble(points []analysis.PriceSalesPoint) map[string]any {
	data := make([][]any, len(points))
	for i, p := range points {
		data[i] = []any{p.Price, p.Sales, p.Rating, p.Variant}
	}
	return map[string]any{
		"color":     businessColors,
		"animation": false,
		"tooltip":   g.tooltip("item"),
		"xAxis":     map[string]any{"type": "value", "name": "价格"},
		"yAxis":     map[string]any{"type": "value", "name": "评论数"},
		"series": []map[string]any{{
			"type": "scatter",
			"data": data,
		}},
	}
}
