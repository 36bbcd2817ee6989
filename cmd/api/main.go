package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/bryanwahyu/review-insight/internal/application"
	appanalysis "github.com/bryanwahyu/review-insight/internal/application/analysis"
	appinsight "github.com/bryanwahyu/review-insight/internal/application/insight"
	"github.com/bryanwahyu/review-insight/internal/config"
	domanalysis "github.com/bryanwahyu/review-insight/internal/domain/analysis"
	aiopenai "github.com/bryanwahyu/review-insight/internal/infra/ai/openai"
	"github.com/bryanwahyu/review-insight/internal/infra/charts"
	mysqlp "github.com/bryanwahyu/review-insight/internal/infra/db/mysql"
	postgresp "github.com/bryanwahyu/review-insight/internal/infra/db/postgres"
	"github.com/bryanwahyu/review-insight/internal/infra/httpserver"
	"github.com/bryanwahyu/review-insight/internal/infra/report"
	minioStore "github.com/bryanwahyu/review-insight/internal/infra/storage"
	"github.com/bryanwahyu/review-insight/internal/infra/xlsx"
	"github.com/bryanwahyu/review-insight/internal/middleware"
)

func main() {
	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	// load config
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	ctx := context.Background()

	// optional history backend
	var db *sql.DB
	var history domanalysis.HistoryRepository
	if cfg.Database.Enabled {
		switch cfg.Database.Driver {
		case "mysql":
			db, err = mysqlp.Connect(ctx, cfg.MySQLDSN())
			if err != nil {
				log.Fatalf("mysql connect error: %v", err)
			}
			history = mysqlp.NewHistoryRepository(db)
		case "postgres":
			db, err = postgresp.Connect(ctx, cfg.PostgresDSN())
			if err != nil {
				log.Fatalf("postgres connect error: %v", err)
			}
			history = postgresp.NewHistoryRepository(db)
		default:
			log.Fatalf("unknown database driver: %s", cfg.Database.Driver)
		}
		defer db.Close()
	}

	// optional report artifact store
	var artifacts domanalysis.ArtifactStore
	if cfg.Minio.Enabled {
		store, err := minioStore.New(ctx,
			cfg.Minio.Endpoint,
			cfg.Minio.Region,
			cfg.Minio.BucketName,
			cfg.Minio.AccessKey,
			cfg.Minio.SecretKey,
			cfg.Minio.UseSSL,
		)
		if err != nil {
			log.Fatalf("minio init error: %v", err)
		}
		artifacts = store
	}

	// chart backend
	generator, err := charts.New(cfg.Charts.Backend)
	if err != nil {
		log.Fatalf("charts init error: %v", err)
	}

	// report rendering
	renderer, err := report.NewHTMLRenderer()
	if err != nil {
		log.Fatalf("report template error: %v", err)
	}
	pdf := report.NewPDFRenderer(cfg.PDF.ChromePath)
	if !pdf.Available() {
		log.Println("no chrome binary found, pdf export disabled")
	}

	// init services
	analysisSvc := &appanalysis.Service{
		Tables:   xlsx.NewReader(),
		Charts:   generator,
		Reports:  renderer,
		History:  history,
		Artifact: artifacts,
		Clock:    application.SystemClock{},
	}

	var insightSvc *appinsight.Service
	if cfg.OpenAI.APIKey != "" {
		insightSvc = &appinsight.Service{
			Client:     aiopenai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model),
			MaxReviews: cfg.OpenAI.MaxReviews,
		}
	}

	// health + capability flags
	capabilities := map[string]bool{
		"pdf_available": pdf.Available(),
		"ai_available":  insightSvc.Available(),
		"db":            cfg.Database.Enabled,
		"storage":       cfg.Minio.Enabled,
	}
	checkers := map[string]middleware.HealthChecker{}
	if db != nil {
		checkers["database"] = &middleware.DatabaseHealthChecker{DB: db}
	}
	health := middleware.HealthHandler(capabilities, checkers)

	// init router
	bucket := middleware.NewTokenBucket(cfg.RateLimit.Capacity, cfg.RateLimit.RefillRate)
	mux := chi.NewRouter()
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-API-Key"},
		MaxAge:         300,
	}))
	mux.Use(middleware.LoggingMiddleware)
	mux.Use(middleware.MetricsMiddleware)
	mux.Use(middleware.APIKeyAuth(cfg.Server.APIToken))
	mux.Use(middleware.RateLimitMiddleware(bucket))
	mux.Mount("/", httpserver.NewRouter(analysisSvc, insightSvc, pdf, cfg.MaxUploadBytes(), health))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// run server
	go func() {
		log.Printf("server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down server...")

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
