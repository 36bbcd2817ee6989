package reviews

import (
	"path/filepath"
	"regexp"
	"time"
)

// FileInfo carries the metadata embedded in an export's filename. All
// fields are nil when the name does not match the export pattern; a
// non-matching name never fails the pipeline.
type FileInfo struct {
	Site              *string `json:"site"`
	ProductID         *string `json:"product_id"`
	DownloadTime      *string `json:"download_time"`
	DownloadTimestamp *string `json:"download_timestamp"`
}

// filenamePattern matches {site}(产品id={id})评论下载{14-digit timestamp}.xlsx
var filenamePattern = regexp.MustCompile(`^(.+?)\(产品id=(\d+)\)评论下载(\d{14})\.xlsx$`)

// ParseFileName extracts site, product id and download time from an export
// filename. Any leading path is ignored.
func ParseFileName(name string) FileInfo {
	base := filepath.Base(name)

	m := filenamePattern.FindStringSubmatch(base)
	if m == nil {
		return FileInfo{}
	}

	site, productID, stamp := m[1], m[2], m[3]
	info := FileInfo{
		Site:              &site,
		ProductID:         &productID,
		DownloadTimestamp: &stamp,
	}

	if ts, err := time.Parse("20060102150405", stamp); err == nil {
		formatted := ts.Format("2006-01-02 15:04:05")
		info.DownloadTime = &formatted
	}

	return info
}
