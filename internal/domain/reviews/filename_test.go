package reviews

import "testing"

func TestParseFileName(t *testing.T) {
	info := ParseFileName("shopee(产品id=123456)评论下载20240315103000.xlsx")

	if info.Site == nil || *info.Site != "shopee" {
		t.Errorf("site = %v; want shopee", info.Site)
	}
	if info.ProductID == nil || *info.ProductID != "123456" {
		t.Errorf("product id = %v; want 123456", info.ProductID)
	}
	if info.DownloadTimestamp == nil || *info.DownloadTimestamp != "20240315103000" {
		t.Errorf("timestamp = %v; want 20240315103000", info.DownloadTimestamp)
	}
	if info.DownloadTime == nil || *info.DownloadTime != "2024-03-15 10:30:00" {
		t.Errorf("download time = %v; want 2024-03-15 10:30:00", info.DownloadTime)
	}
}

func TestParseFileNameStripsPath(t *testing.T) {
	info := ParseFileName("/tmp/uploads/lazada(产品id=9)评论下载20240101000000.xlsx")

	if info.Site == nil || *info.Site != "lazada" {
		t.Errorf("site = %v; want lazada", info.Site)
	}
}

func TestParseFileNameNoMatch(t *testing.T) {
	for _, name := range []string{
		"reviews.xlsx",
		"shopee(产品id=abc)评论下载20240315103000.xlsx",
		"shopee(产品id=1)评论下载2024.xlsx",
		"",
	} {
		info := ParseFileName(name)
		if info.Site != nil || info.ProductID != nil || info.DownloadTime != nil || info.DownloadTimestamp != nil {
			t.Errorf("ParseFileName(%q) = %+v; want all nil", name, info)
		}
	}
}
