package report

import (
	"context"
	"errors"
)

// ErrUnavailable indicates the PDF capability cannot run on this host
// (no browser binary found).
var ErrUnavailable = errors.New("pdf rendering unavailable")

// PDFRenderer port: renders an HTML document into PDF bytes. The
// capability may be absent at runtime; callers should check Available
// before offering the operation.
type PDFRenderer interface {
	Available() bool
	Render(ctx context.Context, html string) ([]byte, error)
}
