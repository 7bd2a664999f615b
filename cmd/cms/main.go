package main

import (
	"context"
	"log"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"filecms/internal/config"
	"filecms/internal/credentials"
	handlers "filecms/internal/http/handler"
	"filecms/internal/http/middleware"
	"filecms/internal/logger"
	"filecms/internal/otel"
	"filecms/internal/render"
	"filecms/internal/service"
	"filecms/internal/session"
	"filecms/internal/store"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	zlog, err := logger.New()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	shutdownTracing, err := otel.Init(context.Background(), zlog)
	if err != nil {
		zlog.Fatal("failed to initialize tracing", zap.Error(err))
	}
	defer shutdownTracing(context.Background())

	docStore, err := store.NewFilesystem(cfg.DataDir)
	if err != nil {
		zlog.Fatal("failed to open data directory", zap.Error(err))
	}
	if cfg.ListingCache {
		docStore = store.NewCached(docStore)
	}

	creds := credentials.New(cfg.CredentialsFile)

	docSvc := service.NewDocumentService(docStore, cfg.UploadMaxBytes)
	authSvc := service.NewAuthService(creds)

	views, err := render.New()
	if err != nil {
		zlog.Fatal("failed to parse templates", zap.Error(err))
	}

	sessions := session.NewManager()

	registry := prometheus.NewRegistry()
	promMW, err := middleware.NewPrometheusMiddleware(registry)
	if err != nil {
		zlog.Fatal("failed to register metrics", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.NewErrorHandler(views, zlog),
		BodyLimit:    int(cfg.UploadMaxBytes) * 2,
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.WithRequestLogging(zlog))
	app.Use(otelfiber.Middleware())
	app.Use(promMW.Handler())

	handlers.RegisterRoutes(app, handlers.Deps{
		Docs:     docSvc,
		Auth:     authSvc,
		Sessions: sessions,
		Views:    views,
		Metrics:  adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})),
	})

	zlog.Info("server starting",
		zap.String("addr", cfg.Addr),
		zap.String("data_dir", cfg.DataDir),
		zap.Bool("listing_cache", cfg.ListingCache),
	)

	if err := app.Listen(cfg.Addr); err != nil {
		zlog.Fatal("server exited", zap.Error(err))
	}
}
