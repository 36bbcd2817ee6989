package httpserver

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	appanalysis "github.com/bryanwahyu/review-insight/internal/application/analysis"
	appinsight "github.com/bryanwahyu/review-insight/internal/application/insight"
	domins "github.com/bryanwahyu/review-insight/internal/domain/insight"
	domreport "github.com/bryanwahyu/review-insight/internal/domain/report"
	"github.com/bryanwahyu/review-insight/internal/middleware"
)

type Router struct {
	analysisSvc *appanalysis.Service
	insightSvc  *appinsight.Service
	pdf         domreport.PDFRenderer
	maxUpload   int64
}

func NewRouter(analysisSvc *appanalysis.Service, insightSvc *appinsight.Service, pdf domreport.PDFRenderer, maxUpload int64, health http.HandlerFunc) http.Handler {
	r := &Router{analysisSvc: analysisSvc, insightSvc: insightSvc, pdf: pdf, maxUpload: maxUpload}
	mux := chi.NewRouter()

	mux.Get("/health", health)
	mux.Get("/metrics", middleware.MetricsHandler)

	mux.Route("/api", func(rt chi.Router) {
		rt.Post("/upload", r.wrap(r.handleUpload))
		rt.Post("/export/pdf", r.wrap(r.handleExportPDF))
		rt.Post("/ai/summary", r.wrap(r.handleAISummary))
		rt.Get("/history", r.wrap(r.handleHistory))
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := h(w, req); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				http.Error(w, "not found", http.StatusNotFound)
				return
			}
			if errors.Is(err, domins.ErrQuotaExceeded) {
				http.Error(w, "ai quota exceeded", http.StatusTooManyRequests)
				return
			}
			if errors.Is(err, domins.ErrUnavailable) || errors.Is(err, domreport.ErrUnavailable) {
				http.Error(w, err.Error(), http.StatusServiceUnavailable)
				return
			}
			var badReq *badRequestError
			if errors.As(err, &badReq) {
				writeJSONError(w, http.StatusBadRequest, badReq.msg, badReq.details)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

type badRequestError struct {
	msg     string
	details []string
}

func (e *badRequestError) Error() string { return e.msg }

func badRequest(msg string, details ...string) error {
	return &badRequestError{msg: msg, details: details}
}

func writeJSONError(w http.ResponseWriter, code int, msg string, details []string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	body := map[string]any{
		"success": false,
		"error":   msg,
	}
	if len(details) > 0 {
		body["details"] = details
	}
	json.NewEncoder(w).Encode(body)
}

// POST /api/upload
// multipart/form-data with a single "file" field holding an .xlsx workbook.
func (r *Router) handleUpload(w http.ResponseWriter, req *http.Request) error {
	middleware.IncrementUploads()

	req.Body = http.MaxBytesReader(w, req.Body, r.maxUpload)
	if err := req.ParseMultipartForm(r.maxUpload); err != nil {
		middleware.IncrementRejected()
		return badRequest("文件过大或请求格式错误")
	}

	file, header, err := req.FormFile("file")
	if err != nil {
		middleware.IncrementRejected()
		return badRequest("未找到上传文件")
	}
	defer file.Close()

	if err := middleware.ValidateUploadName(header.Filename); err != nil {
		middleware.IncrementRejected()
		return badRequest(err.Error())
	}
	if err := middleware.ValidateUploadSize(header.Size, r.maxUpload); err != nil {
		middleware.IncrementRejected()
		return badRequest(err.Error())
	}

	content, err := io.ReadAll(file)
	if err != nil {
		middleware.IncrementFailed()
		return fmt.Errorf("read upload: %w", err)
	}

	result, validation, err := r.analysisSvc.Analyze(req.Context(), header.Filename, content)
	if err != nil {
		middleware.IncrementFailed()
		return err
	}
	if validation != nil {
		middleware.IncrementRejected()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		return json.NewEncoder(w).Encode(map[string]any{
			"success":  false,
			"error":    "数据校验失败",
			"errors":   validation.Errors,
			"warnings": validation.Warnings,
		})
	}

	middleware.IncrementCompleted()
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(result)
}

// POST /api/export/pdf
// Body: {"html_content": "<html>..."}
func (r *Router) handleExportPDF(w http.ResponseWriter, req *http.Request) error {
	if r.pdf == nil || !r.pdf.Available() {
		return domreport.ErrUnavailable
	}

	var body struct {
		HTMLContent string `json:"html_content"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest("请求体不是有效的 JSON")
	}
	if body.HTMLContent == "" {
		return badRequest("html_content 不能为空")
	}

	pdf, err := r.pdf.Render(req.Context(), body.HTMLContent)
	if err != nil {
		return err
	}

	middleware.IncrementPDFExports()
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="report.pdf"`)
	_, err = w.Write(pdf)
	return err
}

// POST /api/ai/summary
// Body: {"reviews": ["...", "..."]}
func (r *Router) handleAISummary(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Reviews []string `json:"reviews"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest("请求体不是有效的 JSON")
	}

	summary, err := r.insightSvc.Summarize(req.Context(), body.Reviews)
	if err != nil {
		if errors.Is(err, domins.ErrNoReviews) {
			return badRequest("没有可供分析的评论文本")
		}
		return err
	}

	// the provider is asked for JSON; pass it through untouched when it is
	var payload any = summary
	if json.Valid([]byte(summary)) {
		payload = json.RawMessage(summary)
	}

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(map[string]any{
		"success": true,
		"summary": payload,
	})
}

// GET /api/history?limit=20
func (r *Router) handleHistory(w http.ResponseWriter, req *http.Request) error {
	limit, _ := strconv.Atoi(req.URL.Query().Get("limit"))

	list, err := r.analysisSvc.Latest(req.Context(), limit)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(list)
}
