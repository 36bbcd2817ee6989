package analysis

import "testing"

func TestAnalyzeBundle(t *testing.T) {
	tbl := table(fullHeader, [][]string{
		{"u1", "很好", "5", "红色", "¥99", "http://img/1.jpg", "", "2024-01-10 08:00:00"},
		{"u2", "", "3", "红色", "¥99", "", "", "2024-02-11 08:00:00"},
	})

	b := Analyze(tbl)

	if b.Rating.TotalReviews != 2 {
		t.Errorf("rating total = %d; want 2", b.Rating.TotalReviews)
	}
	if len(b.Trend.MonthlyReviews) != 2 {
		t.Errorf("trend months = %d; want 2", len(b.Trend.MonthlyReviews))
	}
	if len(b.Variant.VariantList) != 1 {
		t.Errorf("variants = %v; want one", b.Variant.VariantList)
	}
	if b.Media.WithImage != 1 {
		t.Errorf("media images = %d; want 1", b.Media.WithImage)
	}
}
