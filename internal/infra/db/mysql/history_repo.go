package mysql

import (
	"context"
	"database/sql"
	"strings"

	domain "github.com/bryanwahyu/review-insight/internal/domain/analysis"
)

// HistoryRepository stores headline metrics of completed analyses.
//
// Table:
//
//	CREATE TABLE analysis_history (
//	  id             VARCHAR(64)  PRIMARY KEY,
//	  site           VARCHAR(128) NOT NULL,
//	  product_id     VARCHAR(64)  NOT NULL,
//	  file_name      VARCHAR(255) NOT NULL,
//	  total_reviews  INT          NOT NULL,
//	  valid_reviews  INT          NOT NULL,
//	  average_rating DOUBLE       NOT NULL,
//	  positive_rate  DOUBLE       NOT NULL,
//	  report_url     VARCHAR(512) NOT NULL,
//	  analyzed_at    DATETIME     NOT NULL,
//	  KEY idx_analyzed_at (analyzed_at)
//	);
type HistoryRepository struct {
	db *sql.DB
}

func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Save insert/update one analysis record.
func (r *HistoryRepository) Save(ctx context.Context, rec *domain.Record) error {
	const q = `
INSERT INTO analysis_history
(id, site, product_id, file_name, total_reviews, valid_reviews,
 average_rating, positive_rate, report_url, analyzed_at)
VALUES (?,?,?,?,?,?,?,?,?,?)
ON DUPLICATE KEY UPDATE
 total_reviews=VALUES(total_reviews),
 valid_reviews=VALUES(valid_reviews),
 average_rating=VALUES(average_rating),
 positive_rate=VALUES(positive_rate),
 report_url=VALUES(report_url);
`
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
ORDER BY analyzed_at DESC LIMIT ?;
`
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

// stringOrDash returns "-" when the input is empty/whitespace
func stringOrDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
