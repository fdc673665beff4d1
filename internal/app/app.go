package app

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/placementcell/placement-dashboard/internal/config"
	"github.com/placementcell/placement-dashboard/internal/database"
	"github.com/placementcell/placement-dashboard/internal/delivery/httpd"
	"github.com/placementcell/placement-dashboard/internal/repository"
	"github.com/placementcell/placement-dashboard/internal/service"
	"github.com/placementcell/placement-dashboard/internal/service/integration"
	"github.com/placementcell/placement-dashboard/internal/service/storage"
)

type App struct {
	server         *http.Server
	logger         zerolog.Logger
	config         *config.Config
	db             *sql.DB
	rabbitmqClient integration.RabbitMQClient
}

func New(cfg *config.Config, log zerolog.Logger, db *sql.DB) (*App, error) {
	dialect, err := database.NewDialect(cfg.Database.Driver)
	if err != nil {
		return nil, err
	}

	var rabbitmqClient integration.RabbitMQClient
	if cfg.RabbitMQ.URL != "" {
		rabbitmqClient, err = integration.NewRabbitMQClient(
			cfg.RabbitMQ.URL,
			cfg.RabbitMQ.Exchange,
			cfg.RabbitMQ.RoutingKey,
			cfg.RabbitMQ.QueueName,
			log,
		)
		if err != nil {
			log.Error().Err(err).Msg("Failed to create RabbitMQ client, catalog events are disabled")
			rabbitmqClient = nil
		}
	}

	var exportStorage storage.ObjectStorage
	if cfg.Storage.Endpoint != "" {
		minioStorage, err := storage.NewMinIOStorage(cfg.Storage, log)
		if err != nil {
			log.Error().Err(err).Msg("Failed to create MinIO client, export archiving is disabled")
		} else {
			exportStorage = minioStorage
		}
	}

	analyticsRepo := repository.NewAnalyticsRepository(db, dialect, log)
	catalogRepo := repository.NewCatalogRepository(db, dialect, log)

	dashboardService := service.NewDashboardService(analyticsRepo, log)
	reportService := service.NewReportService(analyticsRepo, log)
	catalogService := service.NewCatalogService(catalogRepo, rabbitmqClient, log)
	exportService := service.NewExportService(dashboardService, exportStorage, log)

	handler := httpd.NewHandler(
		dashboardService,
		reportService,
		catalogService,
		exportService,
		func(ctx context.Context) map[string]string { return database.Health(ctx, db) },
		log,
	)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(httpd.RequestLogger(log))
	router.Use(httpd.Recovery(log))
	router.Use(requestTimeout(cfg.Server.RequestTimeout))
	router.Use(httpd.NewCORS(cfg.CORS))

	handler.RegisterRoutes(router)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &App{
		server:         server,
		logger:         log,
		config:         cfg,
		db:             db,
		rabbitmqClient: rabbitmqClient,
	}, nil
}

// requestTimeout bounds each request when timeout is positive. With zero, requests wait
// on the connection pool for as long as it takes.
func requestTimeout(timeout time.Duration) func(http.Handler) http.Handler {
	if timeout <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return middleware.Timeout(timeout)
}

func (a *App) Handler() http.Handler {
	return a.server.Handler
}

func (a *App) Run() error {
	a.logger.Info().Msgf("Starting placement dashboard on %s", a.config.Server.Address)
	return a.server.ListenAndServe()
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info().Msg("Shutting down placement dashboard...")

	if a.rabbitmqClient != nil {
		if err := a.rabbitmqClient.Close(); err != nil {
			a.logger.Error().Err(err).Msg("Failed to close RabbitMQ connection")
		}
	}

	if err := a.server.Shutdown(ctx); err != nil {
		return err
	}

	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Error().Err(err).Msg("Failed to close database connection")
		}
	}

	return nil
}
