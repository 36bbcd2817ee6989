package analysis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/bryanwahyu/review-insight/internal/domain/reviews"
)

// Record holds the headline metrics of one completed analysis. Only
// derived numbers are stored; uploaded rows are never persisted.
type Record struct {
	ID            string    `json:"id"`
	Site          string    `json:"site,omitempty"`
	ProductID     string    `json:"product_id,omitempty"`
	FileName      string    `json:"file_name"`
	TotalReviews  int       `json:"total_reviews"`
	ValidReviews  int       `json:"valid_reviews"`
	AverageRating float64   `json:"average_rating"`
	PositiveRate  float64   `json:"positive_rate"`
	ReportURL     string    `json:"report_url,omitempty"`
	AnalyzedAt    time.Time `json:"analyzed_at"`
}

// HistoryRepository port for the analysis history.
type HistoryRepository interface {
	Save(ctx context.Context, rec *Record) error
	Latest(ctx context.Context, limit int) ([]*Record, error)
}

// ArtifactStore port for saving generated reports. Returns the public URL
// of the stored object.
type ArtifactStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string) (string, error)
}

// ChartGenerator port: turns a bundle into named chart specs. Two
// implementations exist (ECharts and Plotly), selected by configuration
// when the pipeline is built.
type ChartGenerator interface {
	Generate(b *Bundle) (map[string]json.RawMessage, error)
}

// ReportRenderer port: renders the bundle into a standalone HTML report.
type ReportRenderer interface {
	HTML(b *Bundle, info reviews.FileInfo, charts map[string]json.RawMessage) (string, error)
}
