package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/bryanwahyu/review-insight/internal/application"
	domain "github.com/bryanwahyu/review-insight/internal/domain/analysis"
	"github.com/bryanwahyu/review-insight/internal/domain/reviews"
)

// Service implements the upload-analysis use case. One call runs the whole
// pipeline synchronously: decode → resolve/normalize → validate → the four
// aggregators → charts → report. Safe for concurrent use; nothing is
// shared between requests.
type Service struct {
	Tables   reviews.TableReader
	Charts   domain.ChartGenerator
	Reports  domain.ReportRenderer
	History  domain.HistoryRepository // optional
	Artifact domain.ArtifactStore     // optional
	Clock    application.Clock
}

// Result is the full bundle returned for one upload.
type Result struct {
	Success    bool                       `json:"success"`
	FileInfo   reviews.FileInfo           `json:"file_info"`
	Analysis   *domain.Bundle             `json:"analysis"`
	Charts     map[string]json.RawMessage `json:"charts"`
	TrendChart domain.TrendChartData      `json:"trend_chart_data"`
	VariantCh  domain.VariantChartData    `json:"variant_chart_data"`
	HTMLReport string                     `json:"html_report"`
	ReportURL  string                     `json:"report_url,omitempty"`
	Warnings   []string                   `json:"warnings"`
}

// Analyze runs the pipeline. A malformed workbook returns an error; a
// table that fails validation returns the Validation with a nil Result.
func (s *Service) Analyze(ctx context.Context, filename string, content []byte) (*Result, *reviews.Validation, error) {
	info := reviews.ParseFileName(filename)

	header, rows, err := s.Tables.Read(content)
	if err != nil {
		return nil, nil, fmt.Errorf("parse upload: %w", err)
	}

	table := reviews.Normalize(header, rows)

	validation := reviews.Validate(table)
	if !validation.IsValid {
		return nil, &validation, nil
	}

	bundle := domain.Analyze(table)

	chartSpecs, err := s.Charts.Generate(bundle)
	if err != nil {
		return nil, nil, fmt.Errorf("generate charts: %w", err)
	}

	html, err := s.Reports.HTML(bundle, info, chartSpecs)
	if err != nil {
		return nil, nil, fmt.Errorf("render report: %w", err)
	}

	res := &Result{
		Success:    true,
		FileInfo:   info,
		Analysis:   bundle,
		Charts:     chartSpecs,
		TrendChart: bundle.Trend.ChartData(),
		VariantCh:  bundle.Variant.ChartData(),
		HTMLReport: html,
		Warnings:   validation.Warnings,
	}

	id := uuid.New().String()

	if s.Artifact != nil {
		key := fmt.Sprintf("reports/%s.html", id)
		url, err := s.Artifact.Put(ctx, key, []byte(html), "text/html")
		if err != nil {
			// the report is already in the response; losing the copy is not fatal
			log.Printf("report artifact upload failed: %v", err)
		} else {
			res.ReportURL = url
		}
	}

	if s.History != nil {
		rec := &domain.Record{
			ID:            id,
			FileName:      filename,
			TotalReviews:  bundle.Rating.TotalReviews,
			ValidReviews:  bundle.Rating.ValidReviews,
			AverageRating: bundle.Rating.AverageRating,
			PositiveRate:  bundle.Rating.PositiveRate,
			ReportURL:     res.ReportURL,
			AnalyzedAt:    s.Clock.Now(),
		}
		if info.Site != nil {
			rec.Site = *info.Site
		}
		if info.ProductID != nil {
			rec.ProductID = *info.ProductID
		}
		if err := s.History.Save(ctx, rec); err != nil {
			log.Printf("history save failed: %v", err)
		}
	}

	return res, nil, nil
}

// Latest returns recent analysis records. Errors when no history backend
// is configured.
func (s *Service) Latest(ctx context.Context, limit int) ([]*domain.Record, error) {
	if s.History == nil {
		return nil, fmt.Errorf("analysis history is not configured")
	}
	return s.History.Latest(ctx, limit)
}
