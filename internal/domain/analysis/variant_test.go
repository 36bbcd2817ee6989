package analysis

import (
	"reflect"
	"testing"

	"github.com/bryanwahyu/review-insight/internal/domain/reviews"
)

func TestVariantStats(t *testing.T) {
	tbl := table(fullHeader, [][]string{
		{"u1", "", "5", "红色", "¥99", "http://img/red1.jpg", "", "2024-01-10 08:00:00"},
		{"u2", "", "4", "红色", "¥89", "http://img/red2.jpg", "", "2024-02-10 08:00:00"},
		{"u3", "", "3", "蓝色", "¥79", "", "", "2024-01-15 08:00:00"},
	})

	res := Variant(tbl)

	if !reflect.DeepEqual(res.VariantList, []string{"红色", "蓝色"}) {
		t.Fatalf("variant list = %v; want [红色 蓝色]", res.VariantList)
	}

	red := res.VariantStats["红色"]
	if red.Count != 2 {
		t.Errorf("红色 count = %d; want 2", red.Count)
	}
	if red.AverageRating != 4.5 {
		t.Errorf("红色 avg = %.1f; want 4.5", red.AverageRating)
	}
	// most recent row wins the representative price
	if red.Price == nil || *red.Price != "¥89" {
		t.Errorf("红色 price = %v; want ¥89", red.Price)
	}
	if red.PriceNumeric == nil || *red.PriceNumeric != 89 {
		t.Errorf("红色 numeric price = %v; want 89", red.PriceNumeric)
	}
	// image keeps table order
	if red.ImageURL == nil || *red.ImageURL != "http://img/red1.jpg" {
		t.Errorf("红色 image = %v; want http://img/red1.jpg", red.ImageURL)
	}

	blue := res.VariantStats["蓝色"]
	if blue.Count != 1 || blue.AverageRating != 3.0 {
		t.Errorf("蓝色 stats = %+v; want count 1 avg 3.0", blue)
	}
	if blue.ImageURL != nil {
		t.Errorf("蓝色 image = %v; want nil", *blue.ImageURL)
	}
}

func TestVariantRecentPriceSkipsBlank(t *testing.T) {
	// the newest row has no price; the next-newest non-empty one wins
	tbl := table(fullHeader, [][]string{
		{"u1", "", "5", "红色", "$10", "", "", "2024-01-01 00:00:00"},
		{"u2", "", "5", "红色", "$12", "", "", "2024-02-01 00:00:00"},
		{"u3", "", "5", "红色", "", "", "", "2024-03-01 00:00:00"},
	})

	res := Variant(tbl)

	red := res.VariantStats["红色"]
	if red.Price == nil || *red.Price != "$12" {
		t.Errorf("price = %v; want $12", red.Price)
	}
	if red.PriceNumeric == nil || *red.PriceNumeric != 12 {
		t.Errorf("numeric price = %v; want 12", red.PriceNumeric)
	}
}

func TestVariantPriceEqualToNameRejected(t *testing.T) {
	tbl := table(fullHeader, [][]string{
		{"u1", "", "5", "红色", "红色", "", "", "2024-01-01 00:00:00"},
	})

	res := Variant(tbl)

	if price := res.VariantStats["红色"].Price; price != nil {
		t.Errorf("price = %q; want nil when it repeats the variant name", *price)
	}
}

func TestVariantNilTimesSortLast(t *testing.T) {
	tbl := table(fullHeader, [][]string{
		{"u1", "", "5", "红色", "$99", "", "", "not a date"},
		{"u2", "", "5", "红色", "$88", "", "", "2024-01-01 00:00:00"},
	})

	res := Variant(tbl)

	if price := res.VariantStats["红色"].Price; price == nil || *price != "$88" {
		t.Errorf("price = %v; want $88 (dated row beats undated)", price)
	}
}

func TestVariantSkipsBlankVariants(t *testing.T) {
	tbl := table(fullHeader, [][]string{
		{"u1", "", "5", "", "", "", "", ""},
		{"u2", "", "5", "nan", "", "", "", ""},
	})

	res := Variant(tbl)

	if len(res.VariantList) != 0 || len(res.VariantStats) != 0 {
		t.Errorf("blank variants grouped: %+v", res)
	}
}

func TestVariantChartData(t *testing.T) {
	res := VariantResult{
		VariantList: []string{"甲", "乙", "丙"},
		VariantStats: map[string]VariantStats{
			"甲": {Count: 1, AverageRating: 5.0, PriceNumeric: fp(10)},
			"乙": {Count: 3, AverageRating: 4.0, PriceNumeric: fp(20)},
			"丙": {Count: 2, AverageRating: 4.5},
		},
	}

	data := res.ChartData()

	if !reflect.DeepEqual(data.VariantNames, []string{"乙", "丙", "甲"}) {
		t.Errorf("names by count = %v; want [乙 丙 甲]", data.VariantNames)
	}
	if !reflect.DeepEqual(data.ReviewCounts, []int{3, 2, 1}) {
		t.Errorf("counts = %v; want [3 2 1]", data.ReviewCounts)
	}
	if !reflect.DeepEqual(data.AvgRatingsVariants, []string{"甲", "丙", "乙"}) {
		t.Errorf("names by rating = %v; want [甲 丙 乙]", data.AvgRatingsVariants)
	}
	if !reflect.DeepEqual(data.AvgRatings, []float64{5.0, 4.5, 4.0}) {
		t.Errorf("ratings = %v; want [5 4.5 4]", data.AvgRatings)
	}

	// only variants with a numeric price get a bubble point, in count order
	if len(data.PriceSalesData) != 2 {
		t.Fatalf("got %d price points; want 2", len(data.PriceSalesData))
	}
	first := data.PriceSalesData[0]
	if first.Variant != "乙" || first.Price != 20 || first.Sales != 3 || first.Rating != 4.0 {
		t.Errorf("first price point = %+v; want 乙/20/3/4.0", first)
	}
}

func TestVariantEmptyTable(t *testing.T) {
	res := Variant(&reviews.Table{})

	if res.VariantList == nil || res.VariantStats == nil {
		t.Error("empty table must produce empty, non-nil containers")
	}

	data := res.ChartData()
	if data.VariantNames == nil || data.PriceSalesData == nil {
		t.Error("chart data containers must be non-nil")
	}
}
