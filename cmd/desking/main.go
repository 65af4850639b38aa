package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/boddenberg/desking-go/internal/compose"
	"github.com/boddenberg/desking-go/internal/config"
	"github.com/boddenberg/desking-go/internal/domain"
	"github.com/boddenberg/desking-go/internal/handler"
	"github.com/boddenberg/desking-go/internal/infra/cache"
	"github.com/boddenberg/desking-go/internal/infra/observability"
	"github.com/boddenberg/desking-go/internal/infra/resilience"
	"github.com/boddenberg/desking-go/internal/pricing"
	"github.com/boddenberg/desking-go/internal/quote"
	"github.com/boddenberg/desking-go/internal/render"
	"github.com/boddenberg/desking-go/internal/service"

	"go.uber.org/zap"
)

func main() {
	// --- Load .env file (for local development) ---
	_ = config.LoadDotEnv(".env")

	// --- Config ---
	cfg := config.Load()

	// --- Logger ---
	logger := observability.NewLogger(cfg.LogLevel, "desking-go")
	defer logger.Sync()

	logger.Info("configuration loaded",
		zap.Int("port", cfg.Port),
		zap.String("log_level", cfg.LogLevel),
		zap.String("template_dir", cfg.TemplateDir),
		zap.Duration("template_cache_ttl", cfg.TemplateCacheTTL),
		zap.Int("max_render_concurrency", cfg.MaxRenderConcurrency),
	)

	// --- Tracing ---
	shutdown, err := observability.InitTracer(cfg.OTLPEndpoint, "desking-go")
	if err != nil {
		logger.Fatal("failed to init tracer", zap.Error(err))
	}
	defer shutdown(context.Background())

	// --- Metrics ---
	metrics := observability.NewMetrics()

	// --- Templates ---
	resilienceCfg := resilience.Config{
		MaxRetries:     cfg.MaxRetries,
		InitialBackoff: cfg.InitialBackoff,
		MaxConcurrency: cfg.MaxRenderConcurrency,
	}
	templateCache := cache.New[domain.FormTemplate](cfg.TemplateCacheTTL)
	templates := render.NewTemplateStore(cfg.TemplateDir, templateCache, resilienceCfg, metrics)

	// --- Rendering ---
	filler := render.NewFiller(templates)
	sheet := render.NewQuoteSheet()
	bulkhead := resilience.NewBulkhead(cfg.MaxRenderConcurrency)

	// --- Pricing ---
	taxes := pricing.NewPolicy(pricing.DefaultRules())
	engine := pricing.NewEngine(taxes)
	builder := quote.NewBuilder(engine)

	// --- Composition ---
	dealers := compose.NewDirectory(compose.DefaultDealers())
	composer := compose.NewComposer(dealers)

	// --- Services ---
	quoteSvc := service.NewQuoteService(engine, builder, metrics, logger)
	docSvc := service.NewDocumentService(quoteSvc, composer, templates, filler, sheet, bulkhead, metrics, logger)

	// --- Router ---
	router := handler.NewRouter(quoteSvc, docSvc, dealers, templates, metrics, logger)

	// --- Server ---
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// --- Graceful shutdown ---
	go func() {
		logger.Info("server starting", zap.Int("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
