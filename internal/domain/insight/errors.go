package insight

import "errors"

// ErrQuotaExceeded indicates the AI provider returned a quota/limit error
// (HTTP 429 or similar).
var ErrQuotaExceeded = errors.New("ai quota exceeded")

// ErrUnavailable indicates no AI provider is configured.
var ErrUnavailable = errors.New("ai summary unavailable")

// ErrNoReviews indicates the request carried no non-empty review texts.
var ErrNoReviews = errors.New("no review texts to summarize")
