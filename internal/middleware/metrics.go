package middleware

import (
	"encoding/json"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"
)

// Metrics stores application counters
type Metrics struct {
	RequestsTotal      uint64
	RequestsInProgress uint64
	UploadsTotal       uint64
	AnalysesCompleted  uint64
	AnalysesRejected   uint64
	AnalysesFailed     uint64
	PDFExports         uint64
	StartTime          time.Time
}

var globalMetrics = &Metrics{
	StartTime: time.Now(),
}

// IncrementUploads counts received upload requests
func IncrementUploads() {
	atomic.AddUint64(&globalMetrics.UploadsTotal, 1)
}

// IncrementCompleted counts analyses that produced a bundle
func IncrementCompleted() {
	atomic.AddUint64(&globalMetrics.AnalysesCompleted, 1)
}

// IncrementRejected counts uploads stopped by validation
func IncrementRejected() {
	atomic.AddUint64(&globalMetrics.AnalysesRejected, 1)
}

// IncrementFailed counts analyses that errored out
func IncrementFailed() {
	atomic.AddUint64(&globalMetrics.AnalysesFailed, 1)
}

// IncrementPDFExports counts successful PDF renders
func IncrementPDFExports() {
	atomic.AddUint64(&globalMetrics.PDFExports, 1)
}

// MetricsMiddleware tracks request counters
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddUint64(&globalMetrics.RequestsTotal, 1)
		atomic.AddUint64(&globalMetrics.RequestsInProgress, 1)
		defer atomic.AddUint64(&globalMetrics.RequestsInProgress, ^uint64(0))

		next.ServeHTTP(w, r)
	})
}

// MetricsHandler exposes the counters as JSON
func MetricsHandler(w http.ResponseWriter, r *http.Request) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	snapshot := map[string]any{
		"requests_total":       atomic.LoadUint64(&globalMetrics.RequestsTotal),
		"requests_in_progress": atomic.LoadUint64(&globalMetrics.RequestsInProgress),
		"uploads_total":        atomic.LoadUint64(&globalMetrics.UploadsTotal),
		"analyses_completed":   atomic.LoadUint64(&globalMetrics.AnalysesCompleted),
		"analyses_rejected":    atomic.LoadUint64(&globalMetrics.AnalysesRejected),
		"analyses_failed":      atomic.LoadUint64(&globalMetrics.AnalysesFailed),
		"pdf_exports":          atomic.LoadUint64(&globalMetrics.PDFExports),
		"uptime_seconds":       time.Since(globalMetrics.StartTime).Seconds(),
		"goroutines":           runtime.NumGoroutine(),
		"heap_alloc_bytes":     mem.HeapAlloc,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(snapshot)
}
