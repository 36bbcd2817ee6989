package charts

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/bryanwahyu/review-insight/internal/domain/analysis"
)

// Supported backends. ECharts is the default; Plotly stays as the
// fallback renderer for frontends that still embed plotly.js.
const (
	BackendECharts = "echarts"
	BackendPlotly  = "plotly"
)

// New selects the chart backend once, at pipeline construction time.
func New(backend string) (analysis.ChartGenerator, error) {
	switch backend {
	case "", BackendECharts:
		return &EChartsGenerator{}, nil
	case BackendPlotly:
		return &PlotlyGenerator{}, nil
	default:
		return nil, fmt.Errorf("unknown chart backend: %q (allowed: echarts, plotly)", backend)
	}
}

// starLabels returns the fixed 5→1 star categories with their counts,
// ordered by star, never by count.
func starLabels(dist map[int]int) ([]string, []int) {
	labels := make([]string, 0, 5)
	values := make([]int, 0, 5)
	for star := 5; star >= 1; star-- {
		labels = append(labels, fmt.Sprintf("%d星", star))
		values = append(values, dist[star])
	}
	return labels, values
}

func sortStrings(s []string) { sort.Strings(s) }

func marshalAll(specs map[string]any) (map[string]json.RawMessage, error) {
	out := make(map[string]json.RawMessage, len(specs))
	for name, spec := range specs {
		raw, err := json.Marshal(spec)
		if err != nil {
			return nil, fmt.Errorf("marshal chart %s: %w", name, err)
		}
		out[name] = raw
	}
	return out, nil
}
