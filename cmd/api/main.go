package main

import (
	"context"
	"time"

	"github.com/Behyna/e24-payment-pipe/internal/api"
	v1 "github.com/Behyna/e24-payment-pipe/internal/api/v1"
	"github.com/Behyna/e24-payment-pipe/internal/api/validator"
	"github.com/Behyna/e24-payment-pipe/internal/config"
	"github.com/Behyna/e24-payment-pipe/internal/errors"
	"github.com/Behyna/e24-payment-pipe/internal/metrics"
	"github.com/Behyna/e24-payment-pipe/internal/model"
	"github.com/Behyna/e24-payment-pipe/internal/repository"
	"github.com/Behyna/e24-payment-pipe/internal/service"
	"github.com/Behyna/e24-payment-pipe/pkg/httpclient"
	"github.com/Behyna/e24-payment-pipe/pkg/mysql"
	"github.com/Behyna/e24-payment-pipe/pkg/paymentpipe"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dbStatsInterval = 15 * time.Second

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,

			NewConnectionDB,
			NewRegistry,
			NewPaymentPipe,
			NewFiberApp,

			metrics.NewMetrics,
			validator.NewValidate,
			validator.NewXValidator,

			repository.NewPaymentInitRepository,
			service.NewPaymentInitService,
			v1.NewHandler,
		),
		fx.Invoke(startDatabaseCollector, startServer),
	).Run()
}

func startServer(app *fiber.App, handler *v1.Handler, m *metrics.Metrics, registry *prometheus.Registry,
	cfg *config.Config, logger *zap.Logger, lc fx.Lifecycle,
) {
	api.SetupRoutes(app, handler, m, registry, logger)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := app.Listen(cfg.API.Port); err != nil {
					logger.Error("api server stopped", zap.Error(err))
				}
			}()

			logger.Info("api server started", zap.String("port", cfg.API.Port))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping api server")
			return app.ShutdownWithContext(ctx)
		},
	})
}

func startDatabaseCollector(db *gorm.DB, m *metrics.Metrics, logger *zap.Logger, lc fx.Lifecycle) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	collector := metrics.NewDatabaseCollector(m, logger, sqlDB)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			collector.Start(dbStatsInterval)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			collector.Stop()
			return nil
		},
	})

	return nil
}

func NewConnectionDB(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	ctx := context.Background()

	db, err := mysql.NewConnection(ctx, cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&model.PaymentInit{}); err != nil {
		return nil, err
	}

	return db, nil
}

func NewRegistry() (*prometheus.Registry, prometheus.Registerer) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return registry, registry
}

func NewPaymentPipe(cfg *config.Config) (paymentpipe.PaymentPipe, error) {
	serverURL, err := cfg.Gateway.ServerURL()
	if err != nil {
		return nil, err
	}

	return paymentpipe.NewPaymentPipe(serverURL, httpclient.NewHTTPClient(cfg.Gateway.Timeout))
}

func NewFiberApp(logger *zap.Logger) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:      "e24-payment-pipe",
		ErrorHandler: errors.ErrorHandler(logger),
	})
}
