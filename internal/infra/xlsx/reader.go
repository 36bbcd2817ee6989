package xlsx

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Reader decodes .xlsx workbooks from memory. Implements
// reviews.TableReader.
type Reader struct{}

func NewReader() *Reader { return &Reader{} }

// Read opens the workbook and returns the first sheet's header row and
// data rows. An unreadable binary is an unrecoverable failure surfaced
// with its cause.
func (*Reader) Read(content []byte) ([]string, [][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}

	return rows[0], rows[1:], nil
}
