package postgres

import (
	"context"
	"database/sql"
	"strings"

	domain "github.com/bryanwahyu/review-insight/internal/domain/analysis"
)

// HistoryRepository is the Postgres twin of the MySQL implementation;
// selected via database.driver.
type HistoryRepository struct{ db *sql.DB }

func NewHistoryRepository(db *sql.DB) *HistoryRepository { return &HistoryRepository{db: db} }

// Save insert/update one analysis record.
func (r *HistoryRepository) Save(ctx context.Context, rec *domain.Record) error {
	const q = `
INSERT INTO analysis_history
(id, site, product_id, file_name, total_reviews, valid_reviews,
 average_rating, positive_rate, report_url, analyzed_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
ON CONFLICT (id) DO UPDATE SET
 total_reviews = EXCLUDED.total_reviews,
 valid_reviews = EXCLUDED.valid_reviews,
 average_rating = EXCLUDED.average_rating,
 positive_rate = EXCLUDED.positive_rate,
 report_url = EXCLUDED.report_url;`

	_, err := r.db.ExecContext(ctx, q,
		rec.ID, stringOrDash(rec.Site), stringOrDash(rec.ProductID), rec.FileName,
		rec.TotalReviews, rec.ValidReviews,
		rec.AverageRating, rec.PositiveRate, rec.ReportURL, rec.AnalyzedAt,
	)
	return err
}

// Latest records, most recent first.
func (r *HistoryRepository) Latest(ctx context.Context, limit int) ([]*domain.Record, error) {
	if limit <= 0 {
		limit = 20
	}
	const q = `
SELECT id, site, product_id, file_name, total_reviews, valid_reviews,
       average_rating, positive_rate, report_url, analyzed_at
FROM analysis_history
ORDER BY analyzed_at DESC LIMIT $1;`

	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Record
	for rows.Next() {
		var rec domain.Record
		if err := rows.Scan(
			&rec.ID, &rec.Site, &rec.ProductID, &rec.FileName,
			&rec.TotalReviews, &rec.ValidReviews,
			&rec.AverageRating, &rec.PositiveRate, &rec.ReportURL, &rec.AnalyzedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, &rec)
	}
	return out, rows.Err()
}

func stringOrDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
