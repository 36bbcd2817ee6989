package report

import (
	"encoding/json"
	"fmt"
	"html/template"
	"sort"
	"strings"
	"time"

	"github.com/bryanwahyu/review-insight/internal/domain/analysis"
	"github.com/bryanwahyu/review-insight/internal/domain/reviews"
)

// HTMLRenderer renders the analysis bundle into a standalone report page.
// Implements analysis.ReportRenderer.
type HTMLRenderer struct {
	tmpl *template.Template
}

type templateData struct {
	Title       string
	Site        string
	ProductID   string
	Download    string
	GeneratedAt string
	Rating      analysis.RatingResult
	Media       analysis.MediaResult
	Variants    []variantRow
	ChartsJSON  template.JS
	ChartIDs    []string
}

type variantRow struct {
	Name     string
	Count    int
	Rating   float64
	Price    string
	ImageURL string
}

func NewHTMLRenderer() (*HTMLRenderer, error) {
	t, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse report template: %w", err)
	}
	return &HTMLRenderer{tmpl: t}, nil
}

// HTML renders the report. Chart specs are embedded as a JSON object the
// page's inline script feeds to echarts/plotly.
func (r *HTMLRenderer) HTML(b *analysis.Bundle, info reviews.FileInfo, charts map[string]json.RawMessage) (string, error) {
	chartsJSON, err := json.Marshal(charts)
	if err != nil {
		return "", fmt.Errorf("marshal charts: %w", err)
	}

	data := templateData{
		Title:       "竞品评价分析报告",
		Site:        deref(info.Site),
		ProductID:   deref(info.ProductID),
		Download:    deref(info.DownloadTime),
		GeneratedAt: time.Now().Format("2006-01-02 15:04:05"),
		Rating:      b.Rating,
		Media:       b.Media,
		ChartsJSON:  template.JS(chartsJSON),
	}
	for name := range charts {
		data.ChartIDs = append(data.ChartIDs, name)
	}
	sort.Strings(data.ChartIDs)

	for _, name := range b.Variant.VariantList {
		stats := b.Variant.VariantStats[name]
		row := variantRow{Name: name, Count: stats.Count, Rating: stats.AverageRating}
		if stats.Price != nil {
			row.Price = *stats.Price
		}
		if stats.ImageURL != nil {
			row.ImageURL = *stats.ImageURL
		}
		data.Variants = append(data.Variants, row)
	}

	var sb strings.Builder
	if err := r.tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return sb.String(), nil
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
