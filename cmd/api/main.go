package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"docdash/docs"
	"docdash/internal/config"
	"docdash/internal/dashboard"
	handlers "docdash/internal/http/handler"
	"docdash/internal/http/middleware"
	"docdash/internal/logger"
	"docdash/internal/metrics"
	"docdash/internal/model"
	"docdash/internal/otel"
	"docdash/internal/service"
	"docdash/internal/session"
	"docdash/internal/store"
)

const (
	sweepInterval   = time.Minute
	shutdownTimeout = 10 * time.Second
)

// @title Document Dashboard API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.Fatal("failed to initialize tracing", zap.Error(err))
	}
	defer shutdownTracing(context.Background())

	openCtx, cancel := context.WithTimeout(ctx, store.OpenTimeout)
	st, err := store.Open(openCtx, cfg, log)
	cancel()
	if err != nil {
		log.Fatal("failed to open store", zap.Error(err))
	}
	defer st.Close()

	loc := cfg.Location()
	author := model.Author{Name: cfg.CurrentUser.Name, Initials: cfg.CurrentUser.Initials, Avatar: cfg.CurrentUser.Avatar}

	docSvc := service.NewDocumentService(st.Repos.Documents, log)
	commentSvc := service.NewCommentService(st.Repos.Documents, st.Repos.Comments, author, log)
	uploadSvc := service.NewUploadService(log)

	sessions := session.NewStore(cfg.SessionTTL(), func() *dashboard.Controller {
		return dashboard.NewController(docSvc, commentSvc, uploadSvc,
			dashboard.Options{LegacyPreviewClose: cfg.Dashboard.LegacyPreviewClose}, log)
	}, log)
	go sessions.Run(ctx, sweepInterval)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		metrics.NewDashboardCollector(st.Repos, sessions.Len, log),
	)
	promMw, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatal("failed to register http metrics", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(promMw.Handler())
	app.Use(middleware.Logger(log))

	deps := handlers.Deps{
		Documents:  docSvc,
		Comments:   commentSvc,
		Activity:   service.NewActivityService(st.Repos.Activity, loc),
		Monitoring: service.NewMonitoringService(st.Repos.SystemLogs),
		Uploads:    uploadSvc,
		Sessions:   sessions,
		Location:   loc,
	}
	if st.DB != nil {
		deps.DB = st.DB
	}
	handlers.RegisterRoutes(app, deps)

	metricsHandler := otelhttp.NewHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), "metrics")
	app.Get("/metrics", adaptor.HTTPHandler(metricsHandler))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error("shutdown failed", zap.Error(err))
		}
	}()

	addr := ":" + cfg.Port
	log.Info("server_starting", zap.String("addr", addr), zap.String("store", cfg.Store.Driver))

	if err := app.Listen(addr); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal("failed to start server", zap.Error(err))
	}
	log.Info("server_stopped")
}
