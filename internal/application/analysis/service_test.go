package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/bryanwahyu/review-insight/internal/application"
	domain "github.com/bryanwahyu/review-insight/internal/domain/analysis"
	"github.com/bryanwahyu/review-insight/internal/domain/reviews"
)

type fakeReader struct {
	header []string
	rows   [][]string
	err    error
}

func (f *fakeReader) Read([]byte) ([]string, [][]string, error) {
	return f.header, f.rows, f.err
}

type fakeCharts struct{}

func (fakeCharts) Generate(*domain.Bundle) (map[string]json.RawMessage, error) {
	return map[string]json.RawMessage{"valid_reviews_pie": json.RawMessage(`{}`)}, nil
}

type fakeReports struct{}

func (fakeReports) HTML(*domain.Bundle, reviews.FileInfo, map[string]json.RawMessage) (string, error) {
	return "<html>report</html>", nil
}

type fakeHistory struct {
	saved  []*domain.Record
	latest []*domain.Record
}

func (f *fakeHistory) Save(_ context.Context, rec *domain.Record) error {
	f.saved = append(f.saved, rec)
	return nil
}

func (f *fakeHistory) Latest(context.Context, int) ([]*domain.Record, error) {
	return f.latest, nil
}

type fakeArtifacts struct {
	keys []string
	err  error
}

func (f *fakeArtifacts) Put(_ context.Context, key string, _ []byte, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.keys = append(f.keys, key)
	return "https://cdn.example/" + key, nil
}

type fixedClock struct{ at time.Time }

func (c fixedClock) Now() time.Time { return c.at }

var _ application.Clock = fixedClock{}

func newService(reader *fakeReader) *Service {
	return &Service{
		Tables:  reader,
		Charts:  fakeCharts{},
		Reports: fakeReports{},
		Clock:   fixedClock{at: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)},
	}
}

func TestAnalyzeSuccess(t *testing.T) {
	reader := &fakeReader{
		header: []string{"评论人", "评论内容", "星级", "评论时间"},
		rows: [][]string{
			{"u1", "很好", "5", "2024-01-10 08:00:00"},
			{"u2", "", "3", "2024-02-11 08:00:00"},
		},
	}
	svc := newService(reader)

	res, validation, err := svc.Analyze(context.Background(), "shopee(产品id=42)评论下载20240315100000.xlsx", []byte("xlsx"))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if validation != nil {
		t.Fatalf("unexpected validation failure: %+v", validation)
	}

	if !res.Success {
		t.Error("success flag not set")
	}
	if res.Analysis.Rating.TotalReviews != 2 {
		t.Errorf("total = %d; want 2", res.Analysis.Rating.TotalReviews)
	}
	if res.Analysis.Rating.AverageRating != 4.0 {
		t.Errorf("average = %.2f; want 4.0", res.Analysis.Rating.AverageRating)
	}
	if res.FileInfo.Site == nil || *res.FileInfo.Site != "shopee" {
		t.Errorf("file info site = %v; want shopee", res.FileInfo.Site)
	}
	if res.HTMLReport == "" {
		t.Error("html report missing")
	}
	if len(res.Charts) == 0 {
		t.Error("charts missing")
	}
	if res.ReportURL != "" {
		t.Errorf("report url = %q; want empty without artifact store", res.ReportURL)
	}
	if res.Warnings == nil {
		t.Error("warnings must be an empty slice, not nil")
	}
}

func TestAnalyzeValidationFailure(t *testing.T) {
	reader := &fakeReader{
		header: []string{"评论内容"},
		rows:   [][]string{{"很好"}},
	}
	svc := newService(reader)

	res, validation, err := svc.Analyze(context.Background(), "reviews.xlsx", nil)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res != nil {
		t.Error("result returned for invalid table")
	}
	if validation == nil || validation.IsValid {
		t.Fatalf("validation = %+v; want failure", validation)
	}
	if len(validation.Errors) == 0 {
		t.Error("validation failure carries no errors")
	}
}

func TestAnalyzeReaderError(t *testing.T) {
	svc := newService(&fakeReader{err: errors.New("corrupt workbook")})

	_, _, err := svc.Analyze(context.Background(), "reviews.xlsx", nil)
	if err == nil {
		t.Fatal("reader error swallowed")
	}
}

func TestAnalyzeSavesHistoryAndArtifact(t *testing.T) {
	reader := &fakeReader{
		header: []string{"评论人", "星级", "评论时间"},
		rows:   [][]string{{"u1", "5", "2024-01-10 08:00:00"}},
	}
	history := &fakeHistory{}
	artifacts := &fakeArtifacts{}
	svc := newService(reader)
	svc.History = history
	svc.Artifact = artifacts

	res, _, err := svc.Analyze(context.Background(), "shopee(产品id=42)评论下载20240315100000.xlsx", nil)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if len(artifacts.keys) != 1 {
		t.Fatalf("artifact puts = %d; want 1", len(artifacts.keys))
	}
	if res.ReportURL == "" {
		t.Error("report url not set from artifact store")
	}

	if len(history.saved) != 1 {
		t.Fatalf("history saves = %d; want 1", len(history.saved))
	}
	rec := history.saved[0]
	if rec.Site != "shopee" || rec.ProductID != "42" {
		t.Errorf("record site/product = %s/%s; want shopee/42", rec.Site, rec.ProductID)
	}
	if rec.TotalReviews != 1 {
		t.Errorf("record total = %d; want 1", rec.TotalReviews)
	}
	if rec.ReportURL != res.ReportURL {
		t.Errorf("record url = %q; want %q", rec.ReportURL, res.ReportURL)
	}
	if !rec.AnalyzedAt.Equal(time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("record time = %v; want the injected clock's time", rec.AnalyzedAt)
	}
}

func TestAnalyzeArtifactFailureIsNotFatal(t *testing.T) {
	reader := &fakeReader{
		header: []string{"评论人", "星级", "评论时间"},
		rows:   [][]string{{"u1", "5", "2024-01-10 08:00:00"}},
	}
	svc := newService(reader)
	svc.Artifact = &fakeArtifacts{err: errors.New("bucket down")}

	res, _, err := svc.Analyze(context.Background(), "reviews.xlsx", nil)
	if err != nil {
		t.Fatalf("artifact failure became fatal: %v", err)
	}
	if res.ReportURL != "" {
		t.Errorf("report url = %q; want empty after failed upload", res.ReportURL)
	}
}

func TestLatestWithoutHistory(t *testing.T) {
	svc := newService(&fakeReader{})

	if _, err := svc.Latest(context.Background(), 10); err == nil {
		t.Error("Latest succeeded without a history backend")
	}
}
